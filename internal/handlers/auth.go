package handlers

import (
	"errors"
	"net/http"
	"strings"
	"teamvote/internal/config"
	"teamvote/internal/db"
	"teamvote/internal/middleware"
	"teamvote/internal/models"
	"teamvote/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AuthHandler struct {
	cfg   *config.Config
	codec *session.Codec
}

func NewAuthHandler(cfg *config.Config, codec *session.Codec) *AuthHandler {
	return &AuthHandler{cfg: cfg, codec: codec}
}

type loginRequest struct {
	Email string `json:"email"`
}

// Login checks the email against the voter whitelist and, on a hit, sets the
// signed session cookie. There is no password: the whitelist is the
// credential.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		Fail(c, http.StatusBadRequest, "invalid email")
		return
	}

	var voter models.Voter
	if err := db.DB.Where("email = ?", email).First(&voter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Fail(c, http.StatusUnauthorized, "email not on the voter list")
			return
		}
		log.Error().Err(err).Msg("login: voter lookup failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}

	var team models.Team
	if err := db.DB.First(&team, voter.TeamID).Error; err != nil {
		log.Error().Err(err).Uint("team_id", voter.TeamID).Msg("login: team lookup failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}

	token, err := h.codec.Sign(session.Payload{Email: voter.Email, TeamID: voter.TeamID})
	if err != nil {
		log.Error().Err(err).Msg("login: session signing failed")
		Fail(c, http.StatusInternalServerError, "session error")
		return
	}
	h.setSessionCookie(c, token, 0)

	OK(c, gin.H{"team": team.Name, "has_voted": team.HasVoted})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	OK(c, nil)
}

// Me describes the logged-in voter and their team's voting state.
func (h *AuthHandler) Me(c *gin.Context) {
	p, _ := middleware.Session(c)

	var team models.Team
	if err := db.DB.First(&team, p.TeamID).Error; err != nil {
		log.Error().Err(err).Uint("team_id", p.TeamID).Msg("me: team lookup failed")
		Fail(c, http.StatusInternalServerError, "database error")
		return
	}

	// Names are optional; a missing voter row just leaves them empty.
	var voter models.Voter
	db.DB.Where("email = ?", p.Email).First(&voter)

	OK(c, gin.H{
		"email":      p.Email,
		"team_id":    p.TeamID,
		"team":       team.Name,
		"has_voted":  team.HasVoted,
		"first_name": voter.FirstName,
		"last_name":  voter.LastName,
	})
}

// IsAdmin reports whether the session's team is whitelisted. Always 200, the
// answer is a field, not a status code.
func (h *AuthHandler) IsAdmin(c *gin.Context) {
	p, ok := middleware.Session(c)
	if !ok {
		OK(c, gin.H{"is_admin": false, "team": nil})
		return
	}

	var voter models.Voter
	if err := db.DB.Where("email = ?", p.Email).First(&voter).Error; err != nil {
		OK(c, gin.H{"is_admin": false, "team": nil})
		return
	}
	var team models.Team
	if err := db.DB.First(&team, voter.TeamID).Error; err != nil {
		OK(c, gin.H{"is_admin": false, "team": nil})
		return
	}

	OK(c, gin.H{"is_admin": h.cfg.IsAdminTeam(team.Name), "team": team.Name})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.cfg.CookieSecure, true)
}
