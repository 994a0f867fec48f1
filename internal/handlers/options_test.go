package handlers_test

import (
	"net/http"
	"testing"

	"teamvote/internal/db"
	"teamvote/internal/models"
	"teamvote/internal/testutil"
)

func TestListOptionsRequiresSession(t *testing.T) {
	r, _, _ := testutil.NewServer(t)

	if w := testutil.DoJSON(t, r, "GET", "/options", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestListOptions(t *testing.T) {
	r, _, codec := testutil.NewServer(t)
	red := testutil.CreateTeam(t, "Red")
	blue := testutil.CreateTeam(t, "Blue")
	testutil.CreateVoter(t, "red@x.com", red.ID)

	older := testutil.CreateOption(t, "Older", red.ID)
	url := "https://youtu.be/abc"
	start, end := 5, 30
	newer := models.Option{Name: "Newer", TeamID: blue.ID, MediaURL: &url, StartSec: &start, EndSec: &end}
	if err := db.DB.Create(&newer).Error; err != nil {
		t.Fatal(err)
	}

	ck := testutil.SessionCookie(t, codec, "red@x.com", red.ID)
	w := testutil.DoJSON(t, r, "GET", "/options", nil, ck)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := testutil.Decode(t, w)
	options := body["options"].([]any)
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}

	// Newest first, with the owning team's name joined in.
	top := options[0].(map[string]any)
	if top["id"] != float64(newer.ID) || top["team_name"] != "Blue" {
		t.Errorf("unexpected first option: %v", top)
	}
	if top["media_url"] != url || top["start_sec"] != float64(start) || top["end_sec"] != float64(end) {
		t.Errorf("media fields missing: %v", top)
	}

	bottom := options[1].(map[string]any)
	if bottom["id"] != float64(older.ID) || bottom["team_name"] != "Red" {
		t.Errorf("unexpected second option: %v", bottom)
	}
	if bottom["media_url"] != nil || bottom["start_sec"] != nil {
		t.Errorf("optional fields should be null: %v", bottom)
	}
}
