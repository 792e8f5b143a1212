package util

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{999999, "1000.0K"},
		{2500000, "2.5M"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDurationMs(t *testing.T) {
	tests := []struct {
		name       string
		ms         float64
		precision  int
		abbreviate bool
		want       string
	}{
		{name: "millis", ms: 250, precision: 0, abbreviate: true, want: "250ms"},
		{name: "seconds", ms: 1500, precision: 2, abbreviate: true, want: "1.50s"},
		{name: "minutes", ms: 90000, precision: 1, abbreviate: true, want: "1.5min"},
		{name: "hours", ms: 7200000, precision: 0, abbreviate: true, want: "2hr"},
		{name: "days", ms: 172800000, precision: 0, abbreviate: true, want: "2d"},
		{name: "weeks", ms: 604800000, precision: 0, abbreviate: true, want: "1wk"},
		{name: "full_singular", ms: 1000, precision: 0, abbreviate: false, want: "1 second"},
		{name: "full_plural", ms: 3000, precision: 0, abbreviate: false, want: "3 seconds"},
		{name: "sub_millisecond", ms: 0.5, precision: 1, abbreviate: true, want: "0.5ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDurationMs(tt.ms, tt.precision, tt.abbreviate)
			if got != tt.want {
				t.Errorf("FormatDurationMs(%v, %d, %v) = %q, want %q",
					tt.ms, tt.precision, tt.abbreviate, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 errors"},
		{1, "1 error"},
		{2, "2 errors"},
	}

	for _, tt := range tests {
		if got := Pluralize(tt.n, "error", "errors"); got != tt.want {
			t.Errorf("Pluralize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "short", width: 10, want: "short"},
		{name: "truncated", text: "a very long transaction name", width: 10, want: "a very lo…"},
		{name: "exact", text: "exact", width: 5, want: "exact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
