package timex

import "time"

// Reconcile converts a persisted epoch-seconds timestamp into a time anchored
// to now, computed as now - (now_wallclock - stored). Because the result is
// derived from now via Add, it keeps now's monotonic reading and is safe for
// expiry arithmetic within the current call. Monotonic values must never be
// persisted or carried across calls; the stored representation stays absolute.
//
// Non-positive values and values in the future relative to the wall clock
// cannot be represented as an elapsed interval; Reconcile then falls back to
// now and reports degraded=true so the caller can surface the fallback
// instead of silently trusting bad data.
func Reconcile(storedEpoch int64, now time.Time) (t time.Time, degraded bool) {
	if storedEpoch <= 0 {
		return now, true
	}
	elapsed := time.Duration(now.Unix()-storedEpoch) * time.Second
	if elapsed < 0 {
		return now, true
	}
	return now.Add(-elapsed), false
}
