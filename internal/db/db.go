package db

import (
	"teamvote/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init connects to postgres and migrates the schema. TranslateError is on so
// a duplicate-key insert surfaces as gorm.ErrDuplicatedKey regardless of
// driver.
func Init(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	log.Info().Msg("database connection established")

	return Migrate(DB)
}

// Migrate creates/updates the four tables. Split out so the test harness can
// run it against its own database.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.Team{},
		&models.Voter{},
		&models.Option{},
		&models.Vote{},
	)
}
