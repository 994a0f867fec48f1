package handlers

import (
	"errors"
	"net/http"
	"teamvote/internal/middleware"
	"teamvote/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

type voteRequest struct {
	OptionID uint `json:"option_id"`
}

// Cast submits the team's single vote for an option.
func (h *VoteHandler) Cast(c *gin.Context) {
	p, _ := middleware.Session(c)

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == 0 {
		Fail(c, http.StatusBadRequest, "option_id required")
		return
	}

	switch err := services.Cast(p.TeamID, req.OptionID); {
	case err == nil:
		OK(c, nil)
	case errors.Is(err, services.ErrAlreadyVoted):
		Fail(c, http.StatusBadRequest, "you have already voted")
	case errors.Is(err, services.ErrSelfVote):
		Fail(c, http.StatusBadRequest, "you cannot vote for an option of your own team")
	case errors.Is(err, services.ErrOptionNotFound):
		Fail(c, http.StatusNotFound, "option not found")
	case errors.Is(err, services.ErrTeamNotFound):
		Fail(c, http.StatusBadRequest, "team not found")
	default:
		log.Error().Err(err).Uint("team_id", p.TeamID).Uint("option_id", req.OptionID).Msg("vote: cast failed")
		Fail(c, http.StatusInternalServerError, "database error")
	}
}
