package api

import "testing"

func TestMetricsPathCollapsesStopIDs(t *testing.T) {
	cases := map[string]string{
		"/stops/abc-123": "/stops/{id}",
		"/stops/7":       "/stops/{id}",
		"/stops":         "/stops",
		"/stops/":        "/stops/",
		"/routes":        "/routes",
		"/plans":         "/plans",
		"/health":        "/health",
	}
	for in, want := range cases {
		if got := metricsPath(in); got != want {
			t.Fatalf("metricsPath(%q) = %q, want %q", in, got, want)
		}
	}
}
