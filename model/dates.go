package model

import (
	"strconv"
	"time"
)

// Timestamp is millis since epoch, which is the time format used by the exchange
type Timestamp int64

// MakeTimestamp creates a new Timestamp
func MakeTimestamp(ts int64) *Timestamp {
	timestamp := Timestamp(ts)
	return &timestamp
}

// MakeTimestampFromTime creates a new Timestamp from a time.Time
func MakeTimestampFromTime(t time.Time) *Timestamp {
	return MakeTimestamp(t.UnixNano() / int64(time.Millisecond))
}

// AsInt64 returns the underlying millis value
func (t *Timestamp) AsInt64() int64 {
	return int64(*t)
}

// AsTime converts the timestamp to a time.Time in UTC
func (t *Timestamp) AsTime() time.Time {
	return time.Unix(0, int64(*t)*int64(time.Millisecond)).UTC()
}

// String is the stringer function
func (t *Timestamp) String() string {
	return strconv.FormatInt(int64(*t), 10)
}
