package config

import (
	"errors"
	"log"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string `env:"PORT" env-default:"8080"`
	DatabaseURL   string `env:"DATABASE_URL" env-default:"host=localhost user=postgres password=postgres dbname=teamvote port=5432 sslmode=disable"`
	SessionSecret string `env:"SESSION_SECRET"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminTeams    string `env:"ADMIN_TEAMS"` // comma-separated team names whose members may administer
	LogLevel      string `env:"LOG_LEVEL" env-default:"info"`
	CookieSecure  bool   `env:"COOKIE_SECURE" env-default:"false"`
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}
	return &cfg, nil
}

// AdminTeamList parses ADMIN_TEAMS into trimmed, lowercased names.
func (c *Config) AdminTeamList() []string {
	var list []string
	for _, name := range strings.Split(c.AdminTeams, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			list = append(list, name)
		}
	}
	return list
}

// IsAdminTeam reports whether a team name is whitelisted. Comparison is
// case-insensitive and ignores surrounding whitespace.
func (c *Config) IsAdminTeam(teamName string) bool {
	teamName = strings.ToLower(strings.TrimSpace(teamName))
	if teamName == "" {
		return false
	}
	for _, name := range c.AdminTeamList() {
		if name == teamName {
			return true
		}
	}
	return false
}
