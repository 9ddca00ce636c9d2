package model

import (
	"time"
)

const (
	StatusHeld      = "held"
	StatusConfirmed = "confirmed"
)

// DateLayout is the wire and storage format for booking dates (date-only).
const DateLayout = "2006-01-02"

type Customer struct {
	Name  string `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" bson:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,e164"`
}

// Booking is the sole persisted entity: one reservation attempt, held until
// paid or reaped, confirmed forever after. Amount is in minor currency units
// and frozen at hold time; Reference is set exactly once, on confirmation.
type Booking struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Date        string    `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	BookingType string    `json:"booking_type,omitempty" bson:"booking_type,omitempty" validate:"omitempty,max=100"`
	TimeSlot    string    `json:"time_slot,omitempty" bson:"time_slot,omitempty" validate:"omitempty,max=50"`
	CustomTime  string    `json:"custom_time,omitempty" bson:"custom_time,omitempty" validate:"omitempty,max=50"`
	TimeKey     string    `json:"-" bson:"time_key"`
	Amount      int64     `json:"amount" bson:"amount" validate:"required,min=1"`
	Customer    Customer  `json:"customer" bson:"customer"`
	Status      string    `json:"status" bson:"status" validate:"required,oneof=held confirmed"`
	ExpiresAt   time.Time `json:"expires_at,omitempty" bson:"expires_at"`
	Reference   string    `json:"reference,omitempty" bson:"reference,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// Time returns the booking's time as a tagged union.
func (b *Booking) Time() (TimeSpec, error) {
	return NewTimeSpec(b.TimeSlot, b.CustomTime)
}

// HoldRequest is the wire payload for creating a time-limited hold.
type HoldRequest struct {
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	BookingType string   `json:"booking_type" validate:"omitempty,max=100"`
	TimeSlot    string   `json:"time_slot" validate:"omitempty,max=50"`
	CustomTime  string   `json:"custom_time" validate:"omitempty,max=50"`
	Amount      int64    `json:"amount" validate:"omitempty,min=0"`
	Customer    Customer `json:"customer"`
}

// ConfirmRequest carries the payment-provider transaction reference submitted
// after the customer paid out-of-band.
type ConfirmRequest struct {
	Reference string `json:"reference"`
}

// TakenSlot is the public view of an occupied (date, time) pair.
type TakenSlot struct {
	TimeSlot   string `json:"time_slot,omitempty"`
	CustomTime string `json:"custom_time,omitempty"`
	Status     string `json:"status"`
}
