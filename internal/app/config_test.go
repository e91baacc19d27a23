package app

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HTTPAddr == "" {
		t.Error("HTTPAddr should not be empty")
	}
	if cfg.MetricsAddr == "" {
		t.Error("MetricsAddr should not be empty")
	}
	if cfg.HTTPAddr == cfg.MetricsAddr {
		t.Error("API and metrics must listen on different addresses")
	}
}
