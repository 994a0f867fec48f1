package models

// Voter is the login whitelist: one row per allowed email, pointing at the
// team the email belongs to. Rows are seeded out of band and read-only here.
type Voter struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"` // stored lowercase
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	TeamID    uint   `gorm:"not null;index" json:"team_id"`
}
