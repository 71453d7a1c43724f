package probe

import "time"

type compEntry struct {
	name string
	data any
	ms   int64
}

// compTask runs one check and emits its entry (or entries) on out.
type compTask func(out chan<- compEntry)

// CheckComprehensive fans out six concurrent checks and merges their
// results under stable keys. The combined certificate+settings task emits
// two entries over one connection, so the join waits for seven entries,
// not six task returns.
func (p *Prober) CheckComprehensive(domain string) AggregateReport {
	start := time.Now()

	tasks := []compTask{
		func(out chan<- compEntry) {
			t0 := time.Now()
			combined := p.CheckCertificateAndSettings(domain)
			ms := time.Since(t0).Milliseconds()
			out <- compEntry{name: "ssl", data: combined.SSL, ms: ms}
			out <- compEntry{name: "web_settings", data: combined.WebSettings, ms: ms}
		},
		timed("http3", func() any { return p.CheckHTTP3(domain) }),
		timed("dns", func() any { return p.CheckDNS(domain) }),
		timed("email_config", func() any { return p.CheckEmailAuth(domain) }),
		timed("robots_txt", func() any { return p.CheckRobots(domain) }),
		timed("sitemap", func() any { return p.CheckSitemap(domain) }),
	}

	return gather(domain, start, tasks, 7)
}

func timed(name string, run func() any) compTask {
	return func(out chan<- compEntry) {
		t0 := time.Now()
		data := run()
		out <- compEntry{name: name, data: data, ms: time.Since(t0).Milliseconds()}
	}
}

// gather launches the tasks, blocks until exactly entries results have
// arrived, and attaches the _meta timing block. Merge order is channel
// consumption order; the map keys make ordering irrelevant to consumers.
func gather(domain string, start time.Time, tasks []compTask, entries int) AggregateReport {
	out := make(chan compEntry, entries)
	for _, task := range tasks {
		go task(out)
	}

	report := make(AggregateReport, entries+1)
	timings := make(map[string]int64, entries+1)
	for i := 0; i < entries; i++ {
		e := <-out
		report[e.name] = e.data
		timings[e.name] = e.ms
	}

	total := time.Since(start).Milliseconds()
	timings["total"] = total
	report["_meta"] = map[string]any{
		"timings":  timings,
		"domain":   domain,
		"total_ms": total,
	}
	return report
}
