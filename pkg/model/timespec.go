package model

import (
	"errors"
	"strings"
)

// TimeKind discriminates the two ways a booking expresses its time: a fixed,
// enumerable slot label or a free-text custom range.
type TimeKind int

const (
	TimeKindSlot TimeKind = iota + 1
	TimeKindCustom
)

var ErrAmbiguousTime = errors.New("exactly one of time_slot or custom_time must be set")

// TimeSpec is the tagged union driving conflict detection. Exactly one variant
// is populated; construction through NewTimeSpec enforces that.
type TimeSpec struct {
	kind  TimeKind
	value string
}

func SlotTime(label string) TimeSpec {
	return TimeSpec{kind: TimeKindSlot, value: label}
}

func CustomRange(text string) TimeSpec {
	return TimeSpec{kind: TimeKindCustom, value: text}
}

// NewTimeSpec builds a TimeSpec from the wire representation, where a booking
// carries two optional fields and exactly one must be present.
func NewTimeSpec(slot, custom string) (TimeSpec, error) {
	slot = strings.TrimSpace(slot)
	custom = strings.TrimSpace(custom)

	switch {
	case slot != "" && custom != "":
		return TimeSpec{}, ErrAmbiguousTime
	case slot != "":
		return SlotTime(slot), nil
	case custom != "":
		return CustomRange(custom), nil
	}
	return TimeSpec{}, ErrAmbiguousTime
}

func (ts TimeSpec) Kind() TimeKind {
	return ts.kind
}

func (ts TimeSpec) Value() string {
	return ts.value
}

func (ts TimeSpec) IsZero() bool {
	return ts.kind == 0
}

// Key returns the uniqueness key for the (date, time) conflict invariant.
// Slot labels and custom ranges share one keyspace so a custom range can never
// silently coexist with an identical slot label.
func (ts TimeSpec) Key() string {
	return strings.ToLower(strings.Join(strings.Fields(ts.value), " "))
}

func (ts TimeSpec) String() string {
	return ts.value
}
