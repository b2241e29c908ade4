package appointment

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to completed skips confirmation", StatusScheduled, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to scheduled", StatusConfirmed, StatusScheduled, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
		{"cancelled cannot be completed", StatusCancelled, StatusCompleted, false},
		{"no self transition", StatusScheduled, StatusScheduled, false},
		{"unknown status", Status("no_show"), StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	for _, s := range []Status{StatusScheduled, StatusConfirmed} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	if Status("bogus").IsTerminal() {
		t.Error("unknown status should not report terminal")
	}
}

func TestStatusIsActive(t *testing.T) {
	active := map[Status]bool{
		StatusScheduled: true,
		StatusConfirmed: true,
		StatusCompleted: false,
		StatusCancelled: false,
	}
	for s, want := range active {
		if got := s.IsActive(); got != want {
			t.Errorf("%s.IsActive() = %v, want %v", s, got, want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("pending").Valid() {
		t.Error("pending should not be a valid status")
	}
}
