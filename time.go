package cachekit

import "time"

// wallClockNow gives MQ and TLRU a monotonic wall-clock timestamp in the
// same units as an access-tick counter would use, so the two time
// sources can share the same signed-int64 deadline arithmetic.
func wallClockNow() int64 {
	return time.Now().UnixNano()
}
