// Package events defines the domain events the booking service publishes.
package events

import "studiobook/pkg/model"

const (
	// TypeBookingConfirmed is emitted exactly once per successful payment
	// confirmation. The notification worker fans it out to customer and
	// admin email.
	TypeBookingConfirmed = "booking.confirmed"
)

type BookingConfirmed struct {
	BookingID   string         `json:"booking_id"`
	Date        string         `json:"date"`
	BookingType string         `json:"booking_type,omitempty"`
	TimeSlot    string         `json:"time_slot,omitempty"`
	CustomTime  string         `json:"custom_time,omitempty"`
	Amount      int64          `json:"amount"`
	Currency    string         `json:"currency"`
	Reference   string         `json:"reference"`
	Customer    model.Customer `json:"customer"`
}
