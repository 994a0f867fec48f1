package services

import (
	"errors"
	"teamvote/internal/db"
	"teamvote/internal/models"

	"gorm.io/gorm"
)

// Cast records a team's single vote. The checks run in order and the first
// failure wins; the whole thing is one transaction, so the vote row and the
// has_voted flag can never diverge.
//
// A team that lost the race against its own concurrent request hits the
// unique index on votes.team_id; that duplicate-key failure is reported as
// ErrAlreadyVoted, not as a store error.
func Cast(teamID, optionID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}
		if team.HasVoted {
			return ErrAlreadyVoted
		}

		var option models.Option
		if err := tx.First(&option, optionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOptionNotFound
			}
			return err
		}
		if option.TeamID == teamID {
			return ErrSelfVote
		}

		if err := tx.Create(&models.Vote{TeamID: teamID, OptionID: optionID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyVoted
			}
			return err
		}

		return tx.Model(&models.Team{}).
			Where("id = ?", teamID).
			Update("has_voted", true).Error
	})
}

// ResetTeam returns a team to the can-vote state: its vote row is deleted and
// the flag cleared, atomically.
func ResetTeam(teamID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Team{}).
			Where("id = ?", teamID).
			Update("has_voted", false).Error
	})
}
