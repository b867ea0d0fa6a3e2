package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// Нагрузка только на чтение: мутации консоли меняют данные бэкенда.
var searches = []string{"a", "admin", "example.com", "test"}

type options struct {
	target   string
	rate     int
	duration time.Duration
	timeout  time.Duration
}

func parseOptions() options {
	var o options
	flag.StringVar(&o.target, "target", "http://localhost:8080", "console base URL")
	flag.IntVar(&o.rate, "rate", 5, "requests per second")
	flag.DurationVar(&o.duration, "duration", time.Minute, "attack duration")
	flag.DurationVar(&o.timeout, "timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	o.target = strings.TrimRight(o.target, "/")
	return o
}

// Targeter
func makeTargeter(target string) vegeta.Targeter {
	header := http.Header{"Accept": {"text/html"}}

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.Body = nil
		t.Header = header

		r := rand.Float64()
		switch {
		// 30% dashboard
		case r < 0.30:
			t.URL = target + "/"
		// 30% users
		case r < 0.60:
			t.URL = target + "/users"
		// 20% search
		case r < 0.80:
			t.URL = target + "/users?q=" + searches[rand.Intn(len(searches))]
		// 15% approvals
		case r < 0.95:
			t.URL = target + "/approvals"
		default:
			t.URL = target + "/health"
			t.Header = http.Header{"Accept": {"application/json"}}
		}
		return nil
	}
}

// Attack
func runAttack(o options) vegeta.Metrics {
	rate := vegeta.Rate{Freq: o.rate, Per: time.Second}
	attacker := vegeta.NewAttacker(vegeta.Timeout(o.timeout))

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s at %d rps for %s", o.target, o.rate, o.duration)
	for res := range attacker.Attack(makeTargeter(o.target), rate, o.duration, "adizon-admin") {
		metrics.Add(res)
	}
	metrics.Close()
	return metrics
}

func main() {
	o := parseOptions()
	if o.rate <= 0 || o.duration <= 0 {
		log.Fatalf("rate and duration must be positive")
	}

	metrics := runAttack(o)

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	for code, n := range metrics.StatusCodes {
		fmt.Printf("Status %s: %d\n", code, n)
	}
	if len(metrics.Errors) > 0 {
		fmt.Printf("Errors: %s\n", strings.Join(metrics.Errors, "; "))
	}
}
