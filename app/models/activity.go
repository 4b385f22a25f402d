package models

import "gorm.io/gorm"

// Activity is one append-only audit-log row: who did what. ActorID is nil
// for guest actions that are still worth tracing.
type Activity struct {
	gorm.Model
	ActorID  *uint  `gorm:"index" json:"actorId"`
	Action   string `gorm:"size:100;not null;index" json:"action"`
	Message  string `gorm:"size:500" json:"message"`
	Metadata string `gorm:"type:text" json:"metadata"` // JSON blob
}
