package appointment

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		buffer time.Duration
		want   bool
	}{
		{
			name:   "partial overlap",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 15), bEnd: at(10, 45),
			want: true,
		},
		{
			name:   "back to back does not overlap",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 30), bEnd: at(11, 0),
			want: false,
		},
		{
			name:   "identical intervals",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 0), bEnd: at(10, 30),
			want: true,
		},
		{
			name:   "one contains the other",
			aStart: at(9, 0), aEnd: at(12, 0),
			bStart: at(10, 0), bEnd: at(10, 30),
			want: true,
		},
		{
			name:   "disjoint",
			aStart: at(9, 0), aEnd: at(9, 30),
			bStart: at(10, 0), bEnd: at(10, 30),
			want: false,
		},
		{
			name:   "back to back with buffer overlaps",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 30), bEnd: at(11, 0),
			buffer: 10 * time.Minute,
			want:   true,
		},
		{
			name:   "gap wider than buffer",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 45), bEnd: at(11, 15),
			buffer: 10 * time.Minute,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, tt.buffer)
			if got != tt.want {
				t.Errorf("overlaps(%v-%v, %v-%v, buf=%v) = %v, want %v",
					tt.aStart.Format("15:04"), tt.aEnd.Format("15:04"),
					tt.bStart.Format("15:04"), tt.bEnd.Format("15:04"),
					tt.buffer, got, tt.want)
			}

			// the check must not depend on argument order
			swapped := overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd, tt.buffer)
			if swapped != got {
				t.Errorf("overlaps is not symmetric: %v vs %v", got, swapped)
			}
		})
	}
}

func TestInPast(t *testing.T) {
	now := at(12, 0)
	grace := time.Hour

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"future time passes", at(14, 0), false},
		{"30 minutes ago is within grace", at(11, 30), false},
		{"exactly at grace boundary passes", at(11, 0), false},
		{"two hours ago is rejected", at(10, 0), true},
		{"just past grace is rejected", now.Add(-grace - time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inPast(tt.start, now, grace); got != tt.want {
				t.Errorf("inPast(%v, now=%v, grace=%v) = %v, want %v",
					tt.start.Format("15:04"), now.Format("15:04"), grace, got, tt.want)
			}
		})
	}
}
