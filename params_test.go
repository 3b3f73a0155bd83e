package smsc

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)); got != "05.03.2024" {
		t.Errorf("FormatDate() = %q, want 05.03.2024", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
}

func TestBuildSendParams_FixedFieldsWin(t *testing.T) {
	cfg := newSendConfig([]SendOption{
		WithFormat(FormatViber),
		WithQuery(url.Values{"cost": {"0"}, "phones": {"1"}, "tz": {"3"}}),
	})

	params, err := buildSendParams("79991234567", "Hi", cfg)
	if err != nil {
		t.Fatalf("buildSendParams() error = %v", err)
	}

	want := url.Values{
		"cost":     {"3"},
		"phones":   {"79991234567"},
		"mes":      {"Hi"},
		"translit": {"0"},
		"id":       {"0"},
		"viber":    {"1"},
		"tz":       {"3"},
	}
	if diff := cmp.Diff(want, params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSendParams_DoesNotMutateQuery(t *testing.T) {
	extra := url.Values{"valid": {"01:00"}}
	cfg := newSendConfig([]SendOption{WithQuery(extra), WithSender("Shop")})

	if _, err := buildSendParams("79991234567", "Hi", cfg); err != nil {
		t.Fatalf("buildSendParams() error = %v", err)
	}
	if len(extra) != 1 {
		t.Errorf("caller query was modified: %v", extra)
	}
}

func TestBuildCostParams(t *testing.T) {
	cfg := newSendConfig([]SendOption{WithTranslit(2), WithMessageID(5), WithSendTime("+1")})

	params, err := buildCostParams("79991234567", "Hi", cfg)
	if err != nil {
		t.Fatalf("buildCostParams() error = %v", err)
	}

	want := url.Values{
		"cost":     {"1"},
		"phones":   {"79991234567"},
		"mes":      {"Hi"},
		"translit": {"2"},
	}
	if diff := cmp.Diff(want, params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildStatusParams(t *testing.T) {
	params, err := buildStatusParams("42", "79991234567", 2)
	if err != nil {
		t.Fatalf("buildStatusParams() error = %v", err)
	}
	want := url.Values{"id": {"42"}, "phone": {"79991234567"}, "all": {"2"}}
	if diff := cmp.Diff(want, params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHistoryParams(t *testing.T) {
	tests := []struct {
		name string
		q    HistoryQuery
		want url.Values
	}{
		{
			name: "defaults",
			q:    HistoryQuery{Start: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			want: url.Values{
				"get_messages": {"1"},
				"start":        {"02.01.2024"},
				"format":       {"0"},
				"cnt":          {"1000"},
			},
		},
		{
			name: "all fields",
			q: HistoryQuery{
				Start:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
				End:    time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
				Phone:  "79991234567",
				Format: FormatSMS,
				Limit:  50,
				PrevID: 900,
			},
			want: url.Values{
				"get_messages": {"1"},
				"start":        {"02.01.2024"},
				"end":          {"03.02.2024"},
				"phone":        {"79991234567"},
				"format":       {"0"},
				"cnt":          {"50"},
				"prev_id":      {"900"},
			},
		},
		{
			name: "limit clamped",
			q:    HistoryQuery{Start: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Limit: 5000},
			want: url.Values{
				"get_messages": {"1"},
				"start":        {"02.01.2024"},
				"format":       {"0"},
				"cnt":          {"1000"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := buildHistoryParams(tt.q)
			if err != nil {
				t.Fatalf("buildHistoryParams() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, params); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildStatisticsParams_OpenEnd(t *testing.T) {
	params, err := buildStatisticsParams(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), time.Time{})
	if err != nil {
		t.Fatalf("buildStatisticsParams() error = %v", err)
	}
	want := url.Values{"get_stat": {"1"}, "start": {"02.01.2024"}}
	if diff := cmp.Diff(want, params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}
