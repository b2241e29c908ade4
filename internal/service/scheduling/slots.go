package scheduling

import "time"

// windowSpec is one weekly availability window, day 0=Monday … 6=Sunday.
type windowSpec struct {
	DayOfWeek   int8
	StartHour   int8
	StartMinute int8
	EndHour     int8
	EndMinute   int8
}

// candidateSlot is a concrete [Start, End) block derived from a window.
type candidateSlot struct {
	Start time.Time
	End   time.Time
}

// mondayIndexed maps Go's Sunday-first weekday to Monday=0 … Sunday=6.
func mondayIndexed(d time.Weekday) int8 {
	return int8((int(d) + 6) % 7)
}

// expandWindows walks each day in [from, to) and cuts every matching weekly
// window into slotLength pieces. A trailing remainder shorter than slotLength
// is dropped. Slots starting before from are skipped.
func expandWindows(windows []windowSpec, from, to time.Time, slotLength time.Duration) []candidateSlot {
	var out []candidateSlot

	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for ; day.Before(to); day = day.AddDate(0, 0, 1) {
		dow := mondayIndexed(day.Weekday())
		for _, w := range windows {
			if w.DayOfWeek != dow {
				continue
			}

			start := time.Date(day.Year(), day.Month(), day.Day(),
				int(w.StartHour), int(w.StartMinute), 0, 0, day.Location())
			end := time.Date(day.Year(), day.Month(), day.Day(),
				int(w.EndHour), int(w.EndMinute), 0, 0, day.Location())

			for cur := start; !cur.Add(slotLength).After(end); cur = cur.Add(slotLength) {
				slotEnd := cur.Add(slotLength)
				if cur.Before(from) || slotEnd.After(to) {
					continue
				}
				out = append(out, candidateSlot{Start: cur, End: slotEnd})
			}
		}
	}
	return out
}
