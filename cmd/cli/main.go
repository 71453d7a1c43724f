// One-shot client for a running netcheck engine: runs a single check and
// pretty-prints the data payload.
//
//	netcheck-cli ssl example.com
//	netcheck-cli comprehensive example.com
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: netcheck-cli <check> [domain]")
		fmt.Fprintln(os.Stderr, "checks: ssl http3 dns ip my-ip web-settings hsts email-config blocklist robots-txt sitemap og-image html-proxy whois comprehensive")
		os.Exit(2)
	}
	kind := os.Args[1]

	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}

	u := api + "/checks/" + kind
	if len(os.Args) > 2 {
		switch kind {
		case "ip":
			u += "?ip=" + os.Args[2]
		case "og-image", "html-proxy":
			u += "?url=" + os.Args[2]
		default:
			u += "?domain=" + os.Args[2]
		}
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad request:", err)
		os.Exit(1)
	}
	// When talking to a release-mode engine, present the proxy contract.
	if secret := os.Getenv("API_SECRET_KEY"); secret != "" {
		req.Header.Set("X-Internal-Proxy", "true")
		req.Header.Set("X-API-Secret", secret)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error contacting API:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		fmt.Fprintf(os.Stderr, "unexpected response (%s): %s\n", resp.Status, body)
		os.Exit(1)
	}
	if !envelope.Success {
		fmt.Fprintf(os.Stderr, "check failed (%s): %s\n", resp.Status, envelope.Error)
		os.Exit(1)
	}

	var pretty map[string]any
	if err := json.Unmarshal(envelope.Data, &pretty); err != nil {
		fmt.Println(string(envelope.Data))
		return
	}
	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
}
