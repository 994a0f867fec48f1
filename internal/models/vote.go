package models

import (
	"time"
)

type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeamID    uint      `gorm:"uniqueIndex;not null" json:"team_id"`
	OptionID  uint      `gorm:"not null;index" json:"option_id"`
	CreatedAt time.Time `json:"created_at"`
}

// The unique index on team_id is what settles concurrent casts for the same
// team: the second insert fails at the store and is reported as AlreadyVoted.
