package models

type Team struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	HasVoted bool   `gorm:"not null;default:false" json:"has_voted"` // mirrors the team's Vote row, kept in sync transactionally
}
