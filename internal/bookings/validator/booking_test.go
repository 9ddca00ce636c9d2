package validator

import (
	"testing"

	"studiobook/pkg/logger"
	"studiobook/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	return NewBookingValidator(log)
}

func validRequest() *model.HoldRequest {
	return &model.HoldRequest{
		Date:     "2026-10-01",
		TimeSlot: "Morning Session",
		Customer: model.Customer{
			Name:  "Ada Obi",
			Email: "ada@example.com",
		},
	}
}

func TestValidateHold_Valid(t *testing.T) {
	v := newTestValidator()

	if err := v.ValidateHold(validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateHold_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.HoldRequest)
	}{
		{"missing date", func(r *model.HoldRequest) { r.Date = "" }},
		{"bad date format", func(r *model.HoldRequest) { r.Date = "01/10/2026" }},
		{"missing customer name", func(r *model.HoldRequest) { r.Customer.Name = "" }},
		{"name too short", func(r *model.HoldRequest) { r.Customer.Name = "A" }},
		{"missing email", func(r *model.HoldRequest) { r.Customer.Email = "" }},
		{"bad email", func(r *model.HoldRequest) { r.Customer.Email = "not-an-email" }},
		{"bad phone format", func(r *model.HoldRequest) { r.Customer.Phone = "0803 123" }},
		{"negative amount", func(r *model.HoldRequest) { r.Amount = -100 }},
	}

	v := newTestValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := v.ValidateHold(req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if _, ok := err.(ValidationErrors); !ok {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}
		})
	}
}

func TestValidateHold_TimeFields(t *testing.T) {
	tests := []struct {
		name       string
		timeSlot   string
		customTime string
		wantErr    bool
	}{
		{"slot only", "Morning Session", "", false},
		{"custom only", "", "9:00 AM - 11:00 AM", false},
		{"both", "Morning Session", "9:00 AM - 11:00 AM", true},
		{"neither", "", "", true},
	}

	v := newTestValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.TimeSlot = tt.timeSlot
			req.CustomTime = tt.customTime

			err := v.ValidateHold(req)
			if tt.wantErr && err == nil {
				t.Fatal("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_Booking(t *testing.T) {
	v := newTestValidator()

	booking := &model.Booking{
		Date:     "2026-10-01",
		TimeSlot: "Morning Session",
		TimeKey:  "morning session",
		Amount:   5000,
		Status:   model.StatusHeld,
		Customer: model.Customer{
			Name:  "Ada Obi",
			Email: "ada@example.com",
			Phone: "+2348031234567",
		},
	}

	if err := v.Validate(booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	booking.Status = "cancelled"
	if err := v.Validate(booking); err == nil {
		t.Fatal("expected an error for an unknown status")
	}
}

func TestValidationErrors_Message(t *testing.T) {
	errs := ValidationErrors{
		{Field: "Date", Message: "Date is required"},
		{Field: "Email", Message: "Email must be a valid email address"},
	}

	msg := errs.Error()
	if msg == "" {
		t.Fatal("expected a non-empty message")
	}
	if want := "validation failed: 2 error(s): [Date: Date is required; Email: Email must be a valid email address]"; msg != want {
		t.Errorf("Error() = %q, want %q", msg, want)
	}
}
