package common

import "time"

// InstantMs is a point in time as reported by the node, with millisecond
// precision.
type InstantMs struct {
	// UnixTimestampMs is the number of milliseconds since the Unix epoch.
	UnixTimestampMs int64 `json:"unix_timestamp_ms"`
	// DateTime is the same instant as an RFC 3339 string, for display.
	DateTime string `json:"date_time"`
}

// Time returns the instant as a [time.Time] in UTC.
func (i InstantMs) Time() time.Time {
	return time.UnixMilli(i.UnixTimestampMs).UTC()
}

// NewInstantMs returns the InstantMs corresponding to t.
func NewInstantMs(t time.Time) InstantMs {
	t = t.UTC()
	return InstantMs{
		UnixTimestampMs: t.UnixMilli(),
		DateTime:        t.Format("2006-01-02T15:04:05.000Z"),
	}
}
