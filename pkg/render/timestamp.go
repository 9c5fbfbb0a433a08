package render

import "time"

// TimestampLayout is the fixed rendering of record timestamps: 24-hour
// clock, zero-padded, exactly three millisecond digits.
const TimestampLayout = "2006-01-02 15:04:05.000"

// FormatTimestamp renders a millisecond Unix epoch in UTC.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(TimestampLayout)
}
