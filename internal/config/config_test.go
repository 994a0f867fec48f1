package config

import (
	"testing"
)

func TestAdminTeamList(t *testing.T) {
	cfg := &Config{AdminTeams: " Staff , Jury ,, "}

	list := cfg.AdminTeamList()
	if len(list) != 2 || list[0] != "staff" || list[1] != "jury" {
		t.Errorf("unexpected whitelist: %v", list)
	}
}

func TestIsAdminTeam(t *testing.T) {
	cfg := &Config{AdminTeams: "Staff,Jury"}

	cases := []struct {
		name string
		want bool
	}{
		{"Staff", true},
		{"staff", true},
		{"  STAFF  ", true},
		{"jury", true},
		{"Red", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := cfg.IsAdminTeam(tc.name); got != tc.want {
			t.Errorf("IsAdminTeam(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsAdminTeamEmptyWhitelist(t *testing.T) {
	cfg := &Config{}
	if cfg.IsAdminTeam("Staff") {
		t.Error("empty whitelist must not authorize anyone")
	}
}
