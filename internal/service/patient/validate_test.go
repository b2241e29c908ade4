package patient

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"empty is allowed", "", "", false},
		{"whitespace only is allowed", "   ", "", false},
		{"national format", "(212) 555-0123", "+12125550123", false},
		{"already e164", "+12125550123", "+12125550123", false},
		{"international with country code", "+442071838750", "+442071838750", false},
		{"garbage rejected", "not-a-phone", "", true},
		{"too short rejected", "+1 2", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhone(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Fatalf("normalizePhone(%q) err = %v, want ErrInvalidPhone", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizePhone(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("normalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
