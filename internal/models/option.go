package models

// Option is a candidate a team can vote for. MediaURL optionally links a
// video; StartSec/EndSec trim its playback window and are either both set
// (0 <= start < end) or both null.
type Option struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	TeamID   uint    `gorm:"not null;index" json:"team_id"` // owning team; that team cannot vote for it
	MediaURL *string `json:"media_url"`
	StartSec *int    `json:"start_sec"`
	EndSec   *int    `json:"end_sec"`
}
