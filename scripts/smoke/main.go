// Command smoke issues a configurable list of requests against a running
// gateway and reports unexpected statuses. Used for post-deploy checks.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

type target struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	WantStatus int    `json:"want_status"`
	Critical   bool   `json:"critical"`
}

type config struct {
	Targets []target `json:"targets"`
}

func defaultTargets() []target {
	return []target{
		{Method: http.MethodGet, Path: "/health", WantStatus: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/ready", WantStatus: http.StatusOK, Critical: true},
		{Method: http.MethodGet, Path: "/metrics", WantStatus: http.StatusOK},
		{Method: http.MethodGet, Path: "/api/v1/distributions", WantStatus: http.StatusUnauthorized},
	}
}

func main() {
	baseURL := flag.String("base", "http://localhost:8080", "gateway base URL")
	configPath := flag.String("config", "", "optional JSON target list")
	timeout := flag.Duration("timeout", 5*time.Second, "per-request timeout")
	flag.Parse()

	targets := defaultTargets()
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read config: %v\n", err)
			os.Exit(1)
		}
		var cfg config
		if err := json.Unmarshal(raw, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "parse config: %v\n", err)
			os.Exit(1)
		}
		targets = cfg.Targets
	}

	client := &http.Client{Timeout: *timeout}
	base := strings.TrimRight(*baseURL, "/")

	criticalFailures := 0
	for _, tgt := range targets {
		req, err := http.NewRequest(tgt.Method, base+tgt.Path, nil)
		if err != nil {
			fmt.Printf("FAIL %s %s: %v\n", tgt.Method, tgt.Path, err)
			if tgt.Critical {
				criticalFailures++
			}
			continue
		}

		start := time.Now()
		resp, err := client.Do(req)
		if err != nil {
			fmt.Printf("FAIL %s %s: %v\n", tgt.Method, tgt.Path, err)
			if tgt.Critical {
				criticalFailures++
			}
			continue
		}
		resp.Body.Close()

		want := tgt.WantStatus
		if want == 0 {
			want = http.StatusOK
		}
		if resp.StatusCode != want {
			fmt.Printf("FAIL %s %s: got %d want %d (%s)\n", tgt.Method, tgt.Path, resp.StatusCode, want, time.Since(start).Round(time.Millisecond))
			if tgt.Critical {
				criticalFailures++
			}
			continue
		}
		fmt.Printf("OK   %s %s: %d (%s)\n", tgt.Method, tgt.Path, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	}

	if criticalFailures > 0 {
		fmt.Fprintf(os.Stderr, "%d critical check(s) failed\n", criticalFailures)
		os.Exit(1)
	}
}
