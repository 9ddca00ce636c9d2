package timerange

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart float64
		wantEnd   float64
		wantErr   bool
	}{
		{"morning range", "9:00 AM - 11:00 AM", 9, 11, false},
		{"afternoon range", "2:00 PM - 4:30 PM", 14, 16.5, false},
		{"bare hours with meridiem", "9am - 11am", 9, 11, false},
		{"24-hour clock", "14:00 - 16:00", 14, 16, false},
		{"mixed notation", "14:00 - 4:30 PM", 14, 16.5, false},
		{"reversed order", "11:00 AM - 9:00 AM", 9, 11, false},
		{"single token", "3:00 PM", 15, 15, false},
		{"noon", "12:00 PM - 1:00 PM", 12, 13, false},
		{"midnight", "12:00 AM - 1:00 AM", 0, 1, false},
		{"no tokens", "whenever works", 0, 0, true},
		{"bare numbers only", "9 - 11", 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrBadFormat) {
					t.Fatalf("expected ErrBadFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Errorf("got range %v-%v, want %v-%v", r.Start, r.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPolicy bool
		wantFormat bool
	}{
		{"within hours", "9:00 AM - 11:00 AM", false, false},
		{"opens exactly at seven", "7:00 AM - 9:00 AM", false, false},
		{"closes exactly at nine pm", "7:00 PM - 9:00 PM", false, false},
		{"starts before opening", "6:00 AM - 8:00 AM", true, false},
		{"ends after closing", "8:00 PM - 10:00 PM", true, false},
		{"barely too early", "6:59 AM - 8:00 AM", true, false},
		{"barely too late", "8:00 PM - 9:01 PM", true, false},
		{"unparseable", "sometime in the evening", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)

			if tt.wantFormat {
				if !errors.Is(err, ErrBadFormat) {
					t.Fatalf("expected ErrBadFormat, got %v", err)
				}
				return
			}

			var policyErr *PolicyError
			if tt.wantPolicy {
				if !errors.As(err, &policyErr) {
					t.Fatalf("expected *PolicyError, got %v", err)
				}
				if policyErr.Reason == "" {
					t.Error("policy error must carry a reason")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_PolicyReasons(t *testing.T) {
	err := Validate("6:00 AM - 8:00 AM")
	var policyErr *PolicyError
	if !errors.As(err, &policyErr) {
		t.Fatalf("expected *PolicyError, got %v", err)
	}
	if policyErr.Reason != "booking starts before opening time (07:00)" {
		t.Errorf("unexpected reason: %q", policyErr.Reason)
	}

	err = Validate("8:00 PM - 10:00 PM")
	if !errors.As(err, &policyErr) {
		t.Fatalf("expected *PolicyError, got %v", err)
	}
	if policyErr.Reason != "booking ends after closing time (21:00)" {
		t.Errorf("unexpected reason: %q", policyErr.Reason)
	}
}
