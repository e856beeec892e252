package observability_test

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"seapay_hotel/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveHTTP("/check-availability", "GET", 200, 12*time.Millisecond)
	observability.ObserveTool("check_availability", nil)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "seapay_http_requests_total") {
		t.Fatalf("expected seapay_http_requests_total in output")
	}
	if !strings.Contains(out, "seapay_tool_calls_total") {
		t.Fatalf("expected seapay_tool_calls_total in output")
	}
}

// The sidecar listener must serve the same registry as the in-process
// /metrics mount, so seapay collectors show up on it.
func TestServe_SidecarUsesRegistry(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	t.Setenv("METRICS_ADDR", addr)

	reg := observability.InitRegistry()
	observability.ObserveCache("redis", "hit")
	observability.Serve(reg)

	var out string
	deadline := time.Now().Add(2 * time.Second)
	for {
		res, gerr := http.Get("http://" + addr + "/metrics")
		if gerr == nil {
			b, _ := io.ReadAll(res.Body)
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				out = string(b)
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("metrics sidecar not reachable: %v", gerr)
		}
		time.Sleep(20 * time.Millisecond)
	}
	if !strings.Contains(out, "seapay_cache_events_total") {
		t.Fatalf("sidecar does not expose seapay collectors:\n%s", out)
	}
}
