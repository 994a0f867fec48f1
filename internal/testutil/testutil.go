package testutil

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"teamvote/internal/config"
	"teamvote/internal/db"
	"teamvote/internal/middleware"
	"teamvote/internal/models"
	"teamvote/internal/router"
	"teamvote/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// SetupTestDB points the global db handle at a fresh in-memory sqlite
// database. One connection only: each gorm.Open(":memory:") is its own
// database, and serializing writes is what the single-node deployment gives
// us anyway.
func SetupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb
}

// TestConfig returns the config every handler test runs under.
func TestConfig() *config.Config {
	return &config.Config{
		SessionSecret: "test-secret",
		AdminPassword: "admin-pw",
		AdminTeams:    "Staff, Jury",
	}
}

// NewServer builds a full router over a fresh test database.
func NewServer(t *testing.T) (*gin.Engine, *config.Config, *session.Codec) {
	t.Helper()

	SetupTestDB(t)
	cfg := TestConfig()
	codec := session.NewCodec(cfg.SessionSecret)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	router.RegisterRoutes(r, cfg, codec)
	return r, cfg, codec
}

func CreateTeam(t *testing.T, name string) models.Team {
	t.Helper()
	team := models.Team{Name: name}
	if err := db.DB.Create(&team).Error; err != nil {
		t.Fatalf("failed to create team %q: %v", name, err)
	}
	return team
}

func CreateVoter(t *testing.T, email string, teamID uint) models.Voter {
	t.Helper()
	voter := models.Voter{Email: email, TeamID: teamID}
	if err := db.DB.Create(&voter).Error; err != nil {
		t.Fatalf("failed to create voter %q: %v", email, err)
	}
	return voter
}

func CreateOption(t *testing.T, name string, teamID uint) models.Option {
	t.Helper()
	option := models.Option{Name: name, TeamID: teamID}
	if err := db.DB.Create(&option).Error; err != nil {
		t.Fatalf("failed to create option %q: %v", name, err)
	}
	return option
}

// SessionCookie signs a session for the given voter, as /login would.
func SessionCookie(t *testing.T, codec *session.Codec, email string, teamID uint) *http.Cookie {
	t.Helper()
	token, err := codec.Sign(session.Payload{Email: email, TeamID: teamID})
	if err != nil {
		t.Fatalf("failed to sign session: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

// DoJSON runs one request through the router and returns the recorder.
func DoJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a JSON response body into a map.
func Decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
