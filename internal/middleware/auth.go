package middleware

import (
	"net/http"
	"teamvote/internal/config"
	"teamvote/internal/db"
	"teamvote/internal/models"
	"teamvote/internal/session"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"
const SessionKey = "session_payload"

// LoadSession verifies the session cookie and stashes the payload in the
// request context. An absent or invalid cookie just leaves it unset.
func LoadSession(codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err == nil && raw != "" {
			if p, err := codec.Verify(raw); err == nil {
				c.Set(SessionKey, p)
			}
		}
		c.Next()
	}
}

// Session returns the payload LoadSession stored, if any.
func Session(c *gin.Context) (session.Payload, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return session.Payload{}, false
	}
	return v.(session.Payload), true
}

// AuthRequired rejects requests without a valid session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Session(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Not logged in"})
			return
		}
		c.Next()
	}
}

// AdminRequired authorizes either by the shared admin password or by the
// caller's team appearing in the whitelist. Password goes first: it needs no
// session and no database round trip.
func AdminRequired(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdminRequest(c, cfg) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func isAdminRequest(c *gin.Context, cfg *config.Config) bool {
	if pw := c.Query("admin_password"); pw != "" && cfg.AdminPassword != "" && pw == cfg.AdminPassword {
		return true
	}

	p, ok := Session(c)
	if !ok {
		return false
	}
	var voter models.Voter
	if err := db.DB.Where("email = ?", p.Email).First(&voter).Error; err != nil {
		return false
	}
	var team models.Team
	if err := db.DB.First(&team, voter.TeamID).Error; err != nil {
		return false
	}
	return cfg.IsAdminTeam(team.Name)
}
