package model

import "time"

// HoldLock is an advisory lock serializing concurrent hold attempts for one
// (date, time) slot while the conflict check and insert run.
type HoldLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
