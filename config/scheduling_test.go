package config

import (
	"testing"
	"time"
)

func TestSchedulingConfigDefaults(t *testing.T) {
	var cfg SchedulingConfig

	if got := cfg.GracePeriod(); got != time.Hour {
		t.Errorf("GracePeriod() = %v, want 1h", got)
	}
	if got := cfg.Buffer(); got != 0 {
		t.Errorf("Buffer() = %v, want 0", got)
	}
	if got := cfg.DefaultDuration(); got != 30*time.Minute {
		t.Errorf("DefaultDuration() = %v, want 30m", got)
	}
	if got := cfg.LockTTL(); got != 10*time.Second {
		t.Errorf("LockTTL() = %v, want 10s", got)
	}
}

func TestSchedulingConfigExplicitValues(t *testing.T) {
	cfg := SchedulingConfig{
		GracePeriodMinutes:     15,
		BufferMinutes:          30,
		DefaultDurationMinutes: 45,
		LockTTLSeconds:         5,
	}

	if got := cfg.GracePeriod(); got != 15*time.Minute {
		t.Errorf("GracePeriod() = %v, want 15m", got)
	}
	if got := cfg.Buffer(); got != 30*time.Minute {
		t.Errorf("Buffer() = %v, want 30m", got)
	}
	if got := cfg.DefaultDuration(); got != 45*time.Minute {
		t.Errorf("DefaultDuration() = %v, want 45m", got)
	}
	if got := cfg.LockTTL(); got != 5*time.Second {
		t.Errorf("LockTTL() = %v, want 5s", got)
	}
}
