package services

import (
	"teamvote/internal/db"
	"teamvote/internal/models"
)

type ResultRow struct {
	OptionID     uint    `json:"option_id"`
	OptionName   string  `json:"option_name"`
	OptionTeamID uint    `json:"option_team_id"`
	MediaURL     *string `json:"media_url"`
	StartSec     *int    `json:"start_sec"`
	EndSec       *int    `json:"end_sec"`
	Votes        int     `json:"votes"`
}

// ComputeResults tallies votes per option. Options come back in ascending id
// order and an option nobody voted for reports zero; the returned total is
// the sum of the per-option counts, which equals the vote row count at this
// snapshot.
func ComputeResults() ([]ResultRow, int, error) {
	var options []models.Option
	if err := db.DB.Order("id asc").Find(&options).Error; err != nil {
		return nil, 0, err
	}
	var votes []models.Vote
	if err := db.DB.Find(&votes).Error; err != nil {
		return nil, 0, err
	}

	counts := make(map[uint]int, len(options))
	for _, v := range votes {
		counts[v.OptionID]++
	}

	rows := make([]ResultRow, 0, len(options))
	total := 0
	for _, o := range options {
		n := counts[o.ID]
		total += n
		rows = append(rows, ResultRow{
			OptionID:     o.ID,
			OptionName:   o.Name,
			OptionTeamID: o.TeamID,
			MediaURL:     o.MediaURL,
			StartSec:     o.StartSec,
			EndSec:       o.EndSec,
			Votes:        n,
		})
	}
	return rows, total, nil
}
