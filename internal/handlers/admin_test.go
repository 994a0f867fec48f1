package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"teamvote/internal/db"
	"teamvote/internal/models"
	"teamvote/internal/testutil"

	"github.com/gin-gonic/gin"
)

func TestCreateOptionValidation(t *testing.T) {
	r, cfg, _ := testutil.NewServer(t)
	red := testutil.CreateTeam(t, "Red")
	auth := "?admin_password=" + cfg.AdminPassword

	cases := []struct {
		name string
		body gin.H
	}{
		{"empty name", gin.H{"name": "   ", "team_id": red.ID}},
		{"missing team", gin.H{"name": "Clip"}},
		{"unknown team", gin.H{"name": "Clip", "team_id": 9999}},
		{"end before start", gin.H{"name": "Clip", "team_id": red.ID, "start_sec": 10, "end_sec": 5}},
		{"end equals start", gin.H{"name": "Clip", "team_id": red.ID, "start_sec": 10, "end_sec": 10}},
		{"start without end", gin.H{"name": "Clip", "team_id": red.ID, "start_sec": 10}},
		{"end without start", gin.H{"name": "Clip", "team_id": red.ID, "end_sec": 20}},
		{"negative start", gin.H{"name": "Clip", "team_id": red.ID, "start_sec": -1, "end_sec": 5}},
	}
	for _, tc := range cases {
		w := testutil.DoJSON(t, r, "POST", "/admin/options"+auth, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d: %s", tc.name, w.Code, w.Body.String())
		}
	}

	var count int64
	db.DB.Model(&models.Option{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected creates must not write, found %d options", count)
	}

	// And a valid one goes through, clip bounds included.
	w := testutil.DoJSON(t, r, "POST", "/admin/options"+auth, gin.H{
		"name": "  Clip  ", "team_id": red.ID,
		"media_url": " https://youtu.be/abc ", "start_sec": 5, "end_sec": 42,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("valid create: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var option models.Option
	if err := db.DB.First(&option).Error; err != nil {
		t.Fatal(err)
	}
	if option.Name != "Clip" {
		t.Errorf("name not trimmed: %q", option.Name)
	}
	if option.MediaURL == nil || *option.MediaURL != "https://youtu.be/abc" {
		t.Errorf("media_url not trimmed: %v", option.MediaURL)
	}
	if option.StartSec == nil || *option.StartSec != 5 || option.EndSec == nil || *option.EndSec != 42 {
		t.Errorf("clip bounds not stored: %v %v", option.StartSec, option.EndSec)
	}
}

func TestPatchOption(t *testing.T) {
	r, cfg, _ := testutil.NewServer(t)
	red := testutil.CreateTeam(t, "Red")
	blue := testutil.CreateTeam(t, "Blue")
	option := testutil.CreateOption(t, "Clip", red.ID)
	auth := "?admin_password=" + cfg.AdminPassword
	path := fmt.Sprintf("/admin/options/%d%s", option.ID, auth)

	// Empty patch.
	if w := testutil.DoJSON(t, r, "PATCH", path, gin.H{}); w.Code != http.StatusBadRequest {
		t.Errorf("empty patch: expected 400, got %d", w.Code)
	}

	// Partial rename + move.
	w := testutil.DoJSON(t, r, "PATCH", path, gin.H{"name": " Renamed ", "team_id": blue.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got models.Option
	db.DB.First(&got, option.ID)
	if got.Name != "Renamed" || got.TeamID != blue.ID {
		t.Errorf("patch not applied: %+v", got)
	}

	// Patching one clip bound alone must fail the both-or-neither rule.
	if w := testutil.DoJSON(t, r, "PATCH", path, gin.H{"start_sec": 10}); w.Code != http.StatusBadRequest {
		t.Errorf("lone start_sec: expected 400, got %d", w.Code)
	}
	if w := testutil.DoJSON(t, r, "PATCH", path, gin.H{"start_sec": 10, "end_sec": 20}); w.Code != http.StatusOK {
		t.Errorf("both bounds: expected 200, got %d", w.Code)
	}
	// With bounds in place, moving just the end keeps the invariant checked
	// against the stored start.
	if w := testutil.DoJSON(t, r, "PATCH", path, gin.H{"end_sec": 8}); w.Code != http.StatusBadRequest {
		t.Errorf("end below stored start: expected 400, got %d", w.Code)
	}

	// Unknown option.
	w = testutil.DoJSON(t, r, "PATCH", "/admin/options/9999"+auth, gin.H{"name": "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown option: expected 404, got %d", w.Code)
	}
}

func TestDeleteOptionRemovesItsVotes(t *testing.T) {
	r, cfg, _ := testutil.NewServer(t)
	red := testutil.CreateTeam(t, "Red")
	blue := testutil.CreateTeam(t, "Blue")
	option := testutil.CreateOption(t, "Clip", blue.ID)
	if err := db.DB.Create(&models.Vote{TeamID: red.ID, OptionID: option.ID}).Error; err != nil {
		t.Fatal(err)
	}

	path := fmt.Sprintf("/admin/options/%d?admin_password=%s", option.ID, cfg.AdminPassword)
	if w := testutil.DoJSON(t, r, "DELETE", path, nil); w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	var votes, options int64
	db.DB.Model(&models.Vote{}).Where("option_id = ?", option.ID).Count(&votes)
	db.DB.Model(&models.Option{}).Count(&options)
	if votes != 0 || options != 0 {
		t.Errorf("expected option and its votes gone, found %d votes, %d options", votes, options)
	}
}

func TestDeleteAll(t *testing.T) {
	r, cfg, _ := testutil.NewServer(t)
	red := testutil.CreateTeam(t, "Red")
	blue := testutil.CreateTeam(t, "Blue")
	for i := 0; i < 5; i++ {
		testutil.CreateOption(t, fmt.Sprintf("Clip %d", i), blue.ID)
	}
	var anyOption models.Option
	db.DB.First(&anyOption)
	db.DB.Create(&models.Vote{TeamID: red.ID, OptionID: anyOption.ID})
	db.DB.Model(&models.Team{}).Where("id = ?", red.ID).Update("has_voted", true)

	w := testutil.DoJSON(t, r, "POST", "/admin/options/delete-all?admin_password="+cfg.AdminPassword, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete-all: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var votes, options, votedTeams int64
	db.DB.Model(&models.Vote{}).Count(&votes)
	db.DB.Model(&models.Option{}).Count(&options)
	db.DB.Model(&models.Team{}).Where("has_voted = ?", true).Count(&votedTeams)
	if votes != 0 || options != 0 || votedTeams != 0 {
		t.Errorf("delete-all left %d votes, %d options, %d voted teams", votes, options, votedTeams)
	}

	// Results over the empty board are empty, not an error.
	w = testutil.DoJSON(t, r, "GET", "/results?admin_password="+cfg.AdminPassword, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("results: expected 200, got %d", w.Code)
	}
	if body := testutil.Decode(t, w); body["total_votes"] != float64(0) {
		t.Errorf("expected zero total after wipe, got %v", body["total_votes"])
	}
}

func TestResults(t *testing.T) {
	r, cfg, _ := testutil.NewServer(t)
	red := testutil.CreateTeam(t, "Red")
	blue := testutil.CreateTeam(t, "Blue")
	green := testutil.CreateTeam(t, "Green")
	a := testutil.CreateOption(t, "A", red.ID)
	b := testutil.CreateOption(t, "B", blue.ID)
	c := testutil.CreateOption(t, "C", green.ID)

	// Two votes: blue and green both pick A; C stays at zero.
	db.DB.Create(&models.Vote{TeamID: blue.ID, OptionID: a.ID})
	db.DB.Create(&models.Vote{TeamID: green.ID, OptionID: a.ID})

	w := testutil.DoJSON(t, r, "GET", "/results?admin_password="+cfg.AdminPassword, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := testutil.Decode(t, w)
	if body["total_votes"] != float64(2) {
		t.Errorf("expected total_votes 2, got %v", body["total_votes"])
	}

	rows, ok := body["results"].([]any)
	if !ok || len(rows) != 3 {
		t.Fatalf("expected 3 result rows, got %v", body["results"])
	}
	// Ascending option id order, zero-filled counts.
	wantVotes := []float64{2, 0, 0}
	wantIDs := []float64{float64(a.ID), float64(b.ID), float64(c.ID)}
	for i, raw := range rows {
		row := raw.(map[string]any)
		if row["option_id"] != wantIDs[i] {
			t.Errorf("row %d: option_id %v, want %v", i, row["option_id"], wantIDs[i])
		}
		if row["votes"] != wantVotes[i] {
			t.Errorf("row %d: votes %v, want %v", i, row["votes"], wantVotes[i])
		}
	}
}

func TestResetTeamUnknown(t *testing.T) {
	r, cfg, _ := testutil.NewServer(t)

	w := testutil.DoJSON(t, r, "POST", "/admin/reset-team?admin_password="+cfg.AdminPassword, gin.H{"team_id": 42})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	w = testutil.DoJSON(t, r, "POST", "/admin/reset-team?admin_password="+cfg.AdminPassword, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing team_id: expected 400, got %d", w.Code)
	}
}

func TestListTeamsAndOptionsOrdering(t *testing.T) {
	r, cfg, _ := testutil.NewServer(t)
	red := testutil.CreateTeam(t, "Red")
	blue := testutil.CreateTeam(t, "Blue")
	first := testutil.CreateOption(t, "First", red.ID)
	second := testutil.CreateOption(t, "Second", blue.ID)
	auth := "?admin_password=" + cfg.AdminPassword

	w := testutil.DoJSON(t, r, "GET", "/admin/teams"+auth, nil)
	body := testutil.Decode(t, w)
	teams := body["teams"].([]any)
	if len(teams) != 2 || teams[0].(map[string]any)["id"] != float64(red.ID) {
		t.Errorf("teams not in ascending id order: %v", teams)
	}

	// Admin options come back newest first.
	w = testutil.DoJSON(t, r, "GET", "/admin/options"+auth, nil)
	body = testutil.Decode(t, w)
	options := body["options"].([]any)
	if len(options) != 2 ||
		options[0].(map[string]any)["id"] != float64(second.ID) ||
		options[1].(map[string]any)["id"] != float64(first.ID) {
		t.Errorf("options not newest-first: %v", options)
	}
}
