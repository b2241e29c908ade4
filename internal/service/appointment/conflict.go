package appointment

import "time"

// overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect once widened by buffer on each side. With a zero
// buffer, back-to-back appointments (one ending exactly when the next
// starts) do not overlap. The test is symmetric in its two intervals.
func overlaps(aStart, aEnd, bStart, bEnd time.Time, buffer time.Duration) bool {
	return aStart.Before(bEnd.Add(buffer)) && aEnd.Add(buffer).After(bStart)
}

// inPast reports whether start precedes now by more than grace. The grace
// period lets callers book an appointment that technically started a few
// minutes ago, e.g. a walk-in being entered while the visit is underway.
func inPast(start, now time.Time, grace time.Duration) bool {
	return start.Before(now.Add(-grace))
}
