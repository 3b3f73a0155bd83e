package smsc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func statusBody(status int) string {
	return fmt.Sprintf(`{"status":%d,"last_date":"01.01.2024 10:00:00","last_timestamp":1704103200}`, status)
}

func TestWaitForStatus_ReachesFinal(t *testing.T) {
	gw := &gateway{body: func(call int) string {
		if call < 3 {
			return statusBody(StatusSentToOperator)
		}
		return statusBody(StatusDelivered)
	}}
	client := newGatewayClient(t, gw)

	status, err := client.WaitForStatus(context.Background(), "12", "79991234567",
		WithPollInterval(5*time.Millisecond),
		WithMaxPollInterval(10*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("WaitForStatus() error = %v", err)
	}
	if status.Status != StatusDelivered || !status.Delivered() {
		t.Errorf("status = %+v, want delivered", status)
	}
	if gw.calls() != 3 {
		t.Errorf("calls = %d, want 3", gw.calls())
	}
	if got := gw.last(t).Get("all"); got != "0" {
		t.Errorf("all = %q, want 0", got)
	}
}

func TestWaitForStatus_Timeout(t *testing.T) {
	client, _ := newTestClient(t, statusBody(StatusPending))

	status, err := client.WaitForStatus(context.Background(), "12", "79991234567",
		WithWaitTimeout(50*time.Millisecond),
		WithPollInterval(5*time.Millisecond),
	)
	if !errors.Is(err, ErrStatusTimeout) {
		t.Fatalf("WaitForStatus() error = %v, want ErrStatusTimeout", err)
	}

	var timeoutErr *StatusTimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("error should be *StatusTimeoutError, got %T", err)
	}
	if timeoutErr.Last == nil || timeoutErr.Last.Status != StatusPending {
		t.Errorf("Last = %+v, want pending status", timeoutErr.Last)
	}
	if status == nil || status.Status != StatusPending {
		t.Errorf("returned status = %+v, want last pending status", status)
	}
}

func TestWaitForStatus_CallerCancel(t *testing.T) {
	client, _ := newTestClient(t, statusBody(StatusPending))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := client.WaitForStatus(ctx, "12", "79991234567", WithPollInterval(5*time.Millisecond))
	if errors.Is(err, ErrStatusTimeout) {
		t.Fatal("caller deadline should not be reported as a status timeout")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitForStatus() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestWaitForStatus_VendorErrorStops(t *testing.T) {
	client, gw := newTestClient(t, `{"error":"invalid phone","error_code":7}`)

	_, err := client.WaitForStatus(context.Background(), "12", "bad", WithPollInterval(5*time.Millisecond))
	if !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("WaitForStatus() error = %v, want ErrInvalidPhone", err)
	}
	// One status call, retried across every mirror.
	if gw.calls() != 5 {
		t.Errorf("calls = %d, want 5", gw.calls())
	}
}

func TestWaitForStatus_NonPositiveTimeoutUsesDefault(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		gw := &gateway{body: func(call int) string {
			if call < 2 {
				return statusBody(StatusSentToOperator)
			}
			return statusBody(StatusDelivered)
		}}
		client := newGatewayClient(t, gw)

		status, err := client.WaitForStatus(context.Background(), "12", "79991234567",
			WithWaitTimeout(timeout),
			WithPollInterval(5*time.Millisecond),
		)
		if err != nil {
			t.Fatalf("WaitForStatus(timeout %v) error = %v", timeout, err)
		}
		if status.Status != StatusDelivered {
			t.Errorf("WaitForStatus(timeout %v) status = %d, want delivered", timeout, status.Status)
		}
	}
}

func TestWaitForStatus_Predicate(t *testing.T) {
	client, gw := newTestClient(t, statusBody(StatusSentToOperator))

	status, err := client.WaitForStatus(context.Background(), "12", "79991234567",
		WithStatusPredicate(func(s *StatusResult) bool { return s.Status >= StatusSentToOperator }),
	)
	if err != nil {
		t.Fatalf("WaitForStatus() error = %v", err)
	}
	if status.Status != StatusSentToOperator {
		t.Errorf("status = %d, want 0", status.Status)
	}
	if gw.calls() != 1 {
		t.Errorf("calls = %d, want 1", gw.calls())
	}
}

func TestStatusResult_Final(t *testing.T) {
	final := []int{StatusNotFound, StatusDelivered, StatusRead, StatusExpired, StatusLinkClicked,
		StatusUndeliverable, StatusWrongNumber, StatusProhibited, StatusNoFunds, StatusUnavailable}
	for _, code := range final {
		if !(&StatusResult{Status: code}).Final() {
			t.Errorf("status %d should be final", code)
		}
	}

	pending := []int{StatusStopped, StatusPending, StatusSentToOperator}
	for _, code := range pending {
		if (&StatusResult{Status: code}).Final() {
			t.Errorf("status %d should not be final", code)
		}
	}
}
