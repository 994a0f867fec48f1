package handlers

import (
	"net/http"
	"teamvote/internal/db"
	"teamvote/internal/models"
	"teamvote/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type OptionsHandler struct{}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

type optionView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	MediaURL *string `json:"media_url"`
	StartSec *int    `json:"start_sec"`
	EndSec   *int    `json:"end_sec"`
	TeamID   uint    `json:"team_id"`
	TeamName string  `json:"team_name"`
}

// List returns every option with its owning team's name, newest first. The
// voting page uses team_id to grey out the caller's own entries.
func (h *OptionsHandler) List(c *gin.Context) {
	options, err := services.ListOptions()
	if err != nil {
		log.Error().Err(err).Msg("options: list failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}

	var teams []models.Team
	if err := db.DB.Find(&teams).Error; err != nil {
		log.Error().Err(err).Msg("options: team lookup failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}
	names := make(map[uint]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	views := make([]optionView, 0, len(options))
	for _, o := range options {
		views = append(views, optionView{
			ID:       o.ID,
			Name:     o.Name,
			MediaURL: o.MediaURL,
			StartSec: o.StartSec,
			EndSec:   o.EndSec,
			TeamID:   o.TeamID,
			TeamName: names[o.TeamID],
		})
	}
	OK(c, gin.H{"options": views})
}
