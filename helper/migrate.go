package helper

//nolint:revive
import (
	"errors"
	"fmt"

	"rentacar/config"
	"rentacar/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	migrationSource       = "file://migrations/postgres"
	defaultMigrationTable = "schema_migrations"

	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action, use up, down, drop or step-up")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// DatabaseURL is the write database DSN with the migrations table appended.
func DatabaseURL(config *config.Config) string {
	write := config.DB.Postgres.Write

	table := config.DB.Postgres.MigrationTable
	if table == "" {
		table = defaultMigrationTable
	}

	dsn := postgres.DSN(write.Username, write.Password, write.Host, write.Port, getDBName(config, write.Name), write.SSLMode)

	return dsn + "&x-migrations-table=" + table
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, DatabaseURL(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	var run func(mig *migrate.Migrate) error

	switch action {
	case ActionUp:
		run = func(mig *migrate.Migrate) error { return mig.Up() }
	case ActionDown:
		run = func(mig *migrate.Migrate) error { return mig.Steps(-1) }
	case ActionStepUp:
		run = func(mig *migrate.Migrate) error { return mig.Steps(1) }
	case ActionDrop:
		run = func(mig *migrate.Migrate) error { return mig.Down() }
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration completed")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
