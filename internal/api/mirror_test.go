package api

import (
	"context"
	"testing"
	"time"
)

func TestMirrorHost(t *testing.T) {
	tests := []struct {
		attempt  int
		expected string
	}{
		{0, "smsc.ru"},
		{1, "smsc.ru"},
		{2, "www2.smsc.ru"},
		{3, "www3.smsc.ru"},
		{4, "www4.smsc.ru"},
		{5, "www5.smsc.ru"},
	}

	for _, tt := range tests {
		if got := MirrorHost("smsc.ru", tt.attempt); got != tt.expected {
			t.Errorf("MirrorHost(%d) = %s, want %s", tt.attempt, got, tt.expected)
		}
	}
}

func TestMirrorURL(t *testing.T) {
	base := "https://smsc.ru/sys/send.php"

	if got := mirrorURL(base, 1); got != base {
		t.Errorf("mirrorURL(1) = %s, want %s", got, base)
	}
	if got := mirrorURL(base, 4); got != "https://www4.smsc.ru/sys/send.php" {
		t.Errorf("mirrorURL(4) = %s", got)
	}
	if got := mirrorURL("http://smsc.ru:8080/sys/get.php", 2); got != "http://www2.smsc.ru:8080/sys/get.php" {
		t.Errorf("mirrorURL with port = %s", got)
	}
}

func TestConnectTimeout(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 3 * time.Second},
		{1, 3 * time.Second},
		{2, 4 * time.Second},
		{3, 5 * time.Second},
		{4, 6 * time.Second},
		{5, 7 * time.Second},
	}

	for _, tt := range tests {
		if got := ConnectTimeout(tt.attempt); got != tt.expected {
			t.Errorf("ConnectTimeout(%d) = %v, want %v", tt.attempt, got, tt.expected)
		}
	}

	for attempt := 2; attempt <= MaxAttempts; attempt++ {
		if ConnectTimeout(attempt) <= ConnectTimeout(attempt-1) {
			t.Errorf("ConnectTimeout(%d) is not longer than attempt %d", attempt, attempt-1)
		}
	}
}

func TestConnectTimeoutContext(t *testing.T) {
	ctx := context.Background()
	if got := connectTimeoutFrom(ctx); got != ConnectTimeout(1) {
		t.Errorf("default connect timeout = %v, want %v", got, ConnectTimeout(1))
	}

	ctx = withConnectTimeout(ctx, ConnectTimeout(4))
	if got := connectTimeoutFrom(ctx); got != 6*time.Second {
		t.Errorf("connect timeout = %v, want 6s", got)
	}
}

func TestNewTransport(t *testing.T) {
	transport := newTransport()
	if transport.DialContext == nil {
		t.Fatal("DialContext is nil")
	}
	if transport == newTransport() {
		t.Error("newTransport should return a fresh transport")
	}
}
