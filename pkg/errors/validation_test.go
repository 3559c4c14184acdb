package errors

import (
	"testing"
)

func TestValidateFixed(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"one", 1, false},
		{"typical", 40, false},
		{"max", MaxDimension, false},

		{"zero", 0, true},
		{"negative", -3, true},
		{"too large", MaxDimension + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFixed("width", tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFixed(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPolicy) {
				t.Errorf("ValidateFixed(%d) code = %v, want %v", tt.n, GetCode(err), ErrCodeInvalidPolicy)
			}
		})
	}
}

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantErr    bool
	}{
		{"classic", 80, 24, false},
		{"tiny", 1, 1, false},

		{"zero cols", 0, 24, true},
		{"zero rows", 80, 0, true},
		{"negative", -1, 24, true},
		{"huge", MaxDimension + 1, 24, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.cols, tt.rows)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize(%d, %d) error = %v, wantErr %v", tt.cols, tt.rows, err, tt.wantErr)
			}
		})
	}
}
