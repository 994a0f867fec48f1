package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"teamvote/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AdminHandler serves the management surface. The router wraps every route
// here in middleware.AdminRequired.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Teams lists all teams with their voting state.
func (h *AdminHandler) Teams(c *gin.Context) {
	teams, err := services.ListTeams()
	if err != nil {
		log.Error().Err(err).Msg("admin: team list failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}
	OK(c, gin.H{"teams": teams})
}

// ListOptions returns every option, newest first.
func (h *AdminHandler) ListOptions(c *gin.Context) {
	options, err := services.ListOptions()
	if err != nil {
		log.Error().Err(err).Msg("admin: option list failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}
	OK(c, gin.H{"options": options})
}

type optionCreateRequest struct {
	Name     string  `json:"name"`
	TeamID   uint    `json:"team_id"`
	MediaURL *string `json:"media_url"`
	StartSec *int    `json:"start_sec"`
	EndSec   *int    `json:"end_sec"`
}

func (h *AdminHandler) CreateOption(c *gin.Context) {
	var req optionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	option, err := services.CreateOption(services.OptionInput{
		Name:     req.Name,
		TeamID:   req.TeamID,
		MediaURL: req.MediaURL,
		StartSec: req.StartSec,
		EndSec:   req.EndSec,
	})
	if err != nil {
		if services.IsValidation(err) {
			Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Msg("admin: option create failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}
	OK(c, gin.H{"option": option})
}

type optionPatchRequest struct {
	Name     *string `json:"name"`
	TeamID   *uint   `json:"team_id"`
	MediaURL *string `json:"media_url"` // "" clears the stored URL
	StartSec *int    `json:"start_sec"`
	EndSec   *int    `json:"end_sec"`
}

func (h *AdminHandler) PatchOption(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req optionPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	option, err := services.PatchOption(id, services.OptionPatch{
		Name:     req.Name,
		TeamID:   req.TeamID,
		MediaURL: req.MediaURL,
		StartSec: req.StartSec,
		EndSec:   req.EndSec,
	})
	if err != nil {
		switch {
		case services.IsValidation(err):
			Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrOptionNotFound):
			Fail(c, http.StatusNotFound, "option not found")
		default:
			log.Error().Err(err).Uint("option_id", id).Msg("admin: option patch failed")
			Fail(c, http.StatusInternalServerError, "database error")
		}
		return
	}
	OK(c, gin.H{"option": option})
}

func (h *AdminHandler) DeleteOption(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := services.DeleteOption(id); err != nil {
		if errors.Is(err, services.ErrOptionNotFound) {
			Fail(c, http.StatusNotFound, "option not found")
			return
		}
		log.Error().Err(err).Uint("option_id", id).Msg("admin: option delete failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}
	OK(c, nil)
}

// DeleteAll wipes votes, options and every team's has_voted flag.
func (h *AdminHandler) DeleteAll(c *gin.Context) {
	if err := services.DeleteAll(); err != nil {
		log.Error().Err(err).Msg("admin: delete-all failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}
	OK(c, nil)
}

type resetTeamRequest struct {
	TeamID uint `json:"team_id"`
}

// ResetTeam lets a team vote again: its vote row is removed and the flag
// cleared.
func (h *AdminHandler) ResetTeam(c *gin.Context) {
	var req resetTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TeamID == 0 {
		Fail(c, http.StatusBadRequest, "team_id required")
		return
	}

	if err := services.ResetTeam(req.TeamID); err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			Fail(c, http.StatusNotFound, "team not found")
			return
		}
		log.Error().Err(err).Uint("team_id", req.TeamID).Msg("admin: reset team failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}
	OK(c, gin.H{"reset_team_id": req.TeamID})
}

// Results returns the per-option tally.
func (h *AdminHandler) Results(c *gin.Context) {
	rows, total, err := services.ComputeResults()
	if err != nil {
		log.Error().Err(err).Msg("admin: results failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}
	OK(c, gin.H{"total_votes": total, "results": rows})
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		Fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
