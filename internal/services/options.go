package services

import (
	"errors"
	"strings"
	"teamvote/internal/db"
	"teamvote/internal/models"

	"gorm.io/gorm"
)

// OptionInput carries a create request after JSON decoding.
type OptionInput struct {
	Name     string
	TeamID   uint
	MediaURL *string
	StartSec *int
	EndSec   *int
}

// OptionPatch carries a partial update; nil means "leave as is". An empty
// media_url string clears the stored URL.
type OptionPatch struct {
	Name     *string
	TeamID   *uint
	MediaURL *string
	StartSec *int
	EndSec   *int
}

// CreateOption validates and inserts a new option. No write happens on a
// validation failure.
func CreateOption(in OptionInput) (*models.Option, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationErrorf("name required")
	}
	if in.TeamID == 0 {
		return nil, validationErrorf("team_id required")
	}
	if err := teamMustExist(db.DB, in.TeamID); err != nil {
		return nil, err
	}
	if err := validateClipBounds(in.StartSec, in.EndSec); err != nil {
		return nil, err
	}

	option := models.Option{
		Name:     name,
		TeamID:   in.TeamID,
		MediaURL: trimMediaURL(in.MediaURL),
		StartSec: in.StartSec,
		EndSec:   in.EndSec,
	}
	if err := db.DB.Create(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

// PatchOption applies a partial update. The merged record must still satisfy
// every option invariant, including the clip-bounds rule across old and new
// values.
func PatchOption(id uint, patch OptionPatch) (*models.Option, error) {
	if patch.Name == nil && patch.TeamID == nil && patch.MediaURL == nil &&
		patch.StartSec == nil && patch.EndSec == nil {
		return nil, validationErrorf("no fields to update")
	}

	var option models.Option
	if err := db.DB.First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, validationErrorf("name must not be empty")
		}
		option.Name = name
	}
	if patch.TeamID != nil {
		if *patch.TeamID == 0 {
			return nil, validationErrorf("team_id required")
		}
		if err := teamMustExist(db.DB, *patch.TeamID); err != nil {
			return nil, err
		}
		option.TeamID = *patch.TeamID
	}
	if patch.MediaURL != nil {
		option.MediaURL = trimMediaURL(patch.MediaURL)
	}
	if patch.StartSec != nil {
		option.StartSec = patch.StartSec
	}
	if patch.EndSec != nil {
		option.EndSec = patch.EndSec
	}
	if err := validateClipBounds(option.StartSec, option.EndSec); err != nil {
		return nil, err
	}

	if err := db.DB.Save(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

// DeleteOption removes an option and its dependent vote rows, votes first so
// referential integrity holds without a cascading delete.
func DeleteOption(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var option models.Option
		if err := tx.First(&option, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOptionNotFound
			}
			return err
		}
		if err := tx.Where("option_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Option{}, id).Error
	})
}

// DeleteAll wipes the ballot: all votes, then all options, then every team
// back to can-vote. Dependency order matters, votes reference options and
// teams.
func DeleteAll() error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id > 0").Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id > 0").Delete(&models.Option{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Team{}).
			Where("id > 0").
			Update("has_voted", false).Error
	})
}

// ListTeams returns all teams in ascending id order.
func ListTeams() ([]models.Team, error) {
	var teams []models.Team
	if err := db.DB.Order("id asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// ListOptions returns all options, newest first.
func ListOptions() ([]models.Option, error) {
	var options []models.Option
	if err := db.DB.Order("id desc").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func teamMustExist(g *gorm.DB, teamID uint) error {
	var team models.Team
	if err := g.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationErrorf("team_id must reference an existing team")
		}
		return err
	}
	return nil
}

// validateClipBounds enforces the both-or-neither rule with 0 <= start < end.
func validateClipBounds(start, end *int) error {
	if start == nil && end == nil {
		return nil
	}
	if start == nil || end == nil {
		return validationErrorf("start_sec and end_sec must be set together")
	}
	if *start < 0 {
		return validationErrorf("start_sec must not be negative")
	}
	if *end <= *start {
		return validationErrorf("end_sec must be greater than start_sec")
	}
	return nil
}

func trimMediaURL(u *string) *string {
	if u == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*u)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
