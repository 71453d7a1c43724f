package probe

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const ogFixture = `<html><head>
<title> Fixture Page </title>
<meta name="description" content="a plain description">
<meta property="og:title" content="OG Title">
<meta property="og:image" content="/images/preview.png">
<meta property="og:image:width" content="1200">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:image" content="https://cdn.example.com/tw.png">
</head><body></body></html>`

func TestExtractOpenGraph_PrecedenceAndMaps(t *testing.T) {
	report := OpenGraphReport{Domain: "example.com"}
	extractOpenGraph(&report, ogFixture)

	if !report.Found {
		t.Fatalf("expected image found")
	}
	// og:image wins over twitter:image
	if report.ImageURL != "/images/preview.png" {
		t.Fatalf("precedence wrong: %q", report.ImageURL)
	}
	if report.TwitterImage != "https://cdn.example.com/tw.png" {
		t.Fatalf("twitter image not captured: %q", report.TwitterImage)
	}
	if report.OGTitle != "OG Title" || report.ImageWidth != "1200" {
		t.Fatalf("og fields wrong: %+v", report)
	}
	if report.MetaTitle != "Fixture Page" {
		t.Fatalf("title should be trimmed: %q", report.MetaTitle)
	}
	if report.MetaDescription != "a plain description" {
		t.Fatalf("description wrong: %q", report.MetaDescription)
	}
	if report.AllMetaTags["og:image:width"] != "1200" {
		t.Fatalf("all_meta_tags missing entries: %v", report.AllMetaTags)
	}
	if report.AllTwitterTags["twitter:card"] != "summary_large_image" {
		t.Fatalf("all_twitter_tags missing entries: %v", report.AllTwitterTags)
	}
}

func TestExtractOpenGraph_TwitterFallback(t *testing.T) {
	report := OpenGraphReport{}
	extractOpenGraph(&report, `<meta name="twitter:image" content="https://cdn.example.com/only.png">`)
	if !report.Found || report.ImageURL != "https://cdn.example.com/only.png" {
		t.Fatalf("twitter image should fill in when og:image is absent: %+v", report)
	}
}

func TestExtractOpenGraph_ImageSrcFallback(t *testing.T) {
	report := OpenGraphReport{}
	extractOpenGraph(&report, `<link rel="image_src" href="https://example.com/legacy.png">`)
	if !report.Found || report.ImageURL != "https://example.com/legacy.png" {
		t.Fatalf("rel=image_src fallback broken: %+v", report)
	}
}

func TestResolveImageURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"//cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"/a.png", "https://example.com/a.png"},
		{"https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"a.png", "https://example.com/page/a.png"},
	}
	for _, c := range cases {
		got := resolveImageURL(c.in, "example.com", "https://example.com/page")
		if got != c.want {
			t.Fatalf("%q: want %q, got %q", c.in, c.want, got)
		}
	}
}

func TestCheckOpenGraph_ImageAccessibility(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<meta property="og:image" content="/img.png">`))
	})
	mux.HandleFunc("/img.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("pngbytes"))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	p := New()
	report := p.CheckOpenGraph(ts.URL)
	if report.Error != "" {
		t.Fatalf("unexpected error: %s", report.Error)
	}
	if !report.Found {
		t.Fatalf("og:image should be found")
	}
	if !report.Accessible || report.Status != 200 || report.ContentType != "image/png" {
		t.Fatalf("image probe failed: %+v", report)
	}
}
