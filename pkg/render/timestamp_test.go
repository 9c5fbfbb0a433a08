package render

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{name: "epoch", ms: 0, want: "1970-01-01 00:00:00.000"},
		{name: "millisecond padding", ms: 7, want: "1970-01-01 00:00:00.007"},
		{name: "two digit millis", ms: 42, want: "1970-01-01 00:00:00.042"},
		{name: "full timestamp", ms: 1710495731043, want: "2024-03-15 09:42:11.043"},
		{name: "round second", ms: 1710495731000, want: "2024-03-15 09:42:11.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.ms); got != tt.want {
				t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}
