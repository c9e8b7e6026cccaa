package errors

import (
	"math"
	"testing"
	"time"
)

func TestValidateFormats(t *testing.T) {
	valid := []string{"svg", "json", "dot", "png"}
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"single", []string{"svg"}, false},
		{"several", []string{"svg", "json", "png"}, false},
		{"empty", nil, true},
		{"unknown", []string{"svg", "gif"}, true},
		{"case sensitive", []string{"SVG"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.input, valid...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 120.5, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMarkerCount(t *testing.T) {
	tests := []struct {
		input   int
		wantErr bool
	}{
		{0, false},
		{11, false},
		{MaxMarkerCount, false},
		{MaxMarkerCount + 1, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidateMarkerCount(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateMarkerCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateDuration(t *testing.T) {
	if err := ValidateDuration("stagger", 40*time.Millisecond); err != nil {
		t.Errorf("ValidateDuration(40ms) error = %v", err)
	}
	err := ValidateDuration("stagger", -time.Millisecond)
	if !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("ValidateDuration(-1ms) error = %v, want %v", err, ErrCodeInvalidConfig)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out/starfield", false},
		{"absolute", "/tmp/starfield", false},
		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "out\x00.svg", true},
		{"newline", "out\n.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
