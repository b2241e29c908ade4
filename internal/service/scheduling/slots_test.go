package scheduling

import (
	"testing"
	"time"
)

func TestMondayIndexed(t *testing.T) {
	tests := []struct {
		day  time.Weekday
		want int8
	}{
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Friday, 4},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}
	for _, tt := range tests {
		if got := mondayIndexed(tt.day); got != tt.want {
			t.Errorf("mondayIndexed(%s) = %d, want %d", tt.day, got, tt.want)
		}
	}
}

func TestExpandWindows(t *testing.T) {
	// 2026-03-09 is a Monday
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("single window cut into slots", func(t *testing.T) {
		windows := []windowSpec{
			{DayOfWeek: 0, StartHour: 9, StartMinute: 0, EndHour: 10, EndMinute: 30},
		}
		got := expandWindows(windows, monday, monday.AddDate(0, 0, 1), 30*time.Minute)

		if len(got) != 3 {
			t.Fatalf("got %d slots, want 3: %v", len(got), got)
		}
		wantFirst := monday.Add(9 * time.Hour)
		if !got[0].Start.Equal(wantFirst) {
			t.Errorf("first slot starts %v, want %v", got[0].Start, wantFirst)
		}
		wantLastEnd := monday.Add(10*time.Hour + 30*time.Minute)
		if !got[2].End.Equal(wantLastEnd) {
			t.Errorf("last slot ends %v, want %v", got[2].End, wantLastEnd)
		}
	})

	t.Run("remainder shorter than slot length is dropped", func(t *testing.T) {
		windows := []windowSpec{
			{DayOfWeek: 0, StartHour: 9, StartMinute: 0, EndHour: 9, EndMinute: 50},
		}
		got := expandWindows(windows, monday, monday.AddDate(0, 0, 1), 30*time.Minute)
		if len(got) != 1 {
			t.Fatalf("got %d slots, want 1", len(got))
		}
	})

	t.Run("window does not leak onto other weekdays", func(t *testing.T) {
		windows := []windowSpec{
			{DayOfWeek: 2, StartHour: 14, StartMinute: 0, EndHour: 15, EndMinute: 0},
		}
		// full week starting Monday: only Wednesday should produce slots
		got := expandWindows(windows, monday, monday.AddDate(0, 0, 7), time.Hour)
		if len(got) != 1 {
			t.Fatalf("got %d slots, want 1", len(got))
		}
		wednesday := monday.AddDate(0, 0, 2)
		if got[0].Start.Day() != wednesday.Day() {
			t.Errorf("slot on day %d, want %d", got[0].Start.Day(), wednesday.Day())
		}
	})

	t.Run("slots before range start are skipped", func(t *testing.T) {
		windows := []windowSpec{
			{DayOfWeek: 0, StartHour: 9, StartMinute: 0, EndHour: 11, EndMinute: 0},
		}
		from := monday.Add(10 * time.Hour)
		got := expandWindows(windows, from, monday.AddDate(0, 0, 1), time.Hour)
		if len(got) != 1 {
			t.Fatalf("got %d slots, want 1: %v", len(got), got)
		}
		if got[0].Start.Before(from) {
			t.Errorf("slot %v starts before range start %v", got[0].Start, from)
		}
	})

	t.Run("no windows yields no slots", func(t *testing.T) {
		got := expandWindows(nil, monday, monday.AddDate(0, 0, 7), time.Hour)
		if len(got) != 0 {
			t.Errorf("got %d slots, want 0", len(got))
		}
	})
}
