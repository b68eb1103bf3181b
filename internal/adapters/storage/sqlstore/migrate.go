package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*/*.sql
var migrations embed.FS

// goose guarda dialecto y FS en estado global
var gooseMu sync.Mutex

// gooseLogger adapta zerolog a goose.Logger.
type gooseLogger struct {
	log zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Fatal().Msgf(format, v...)
}

func setupGoose(db *DB, log zerolog.Logger) (string, error) {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect(db.dialect.gooseDialect()); err != nil {
		return "", fmt.Errorf("failed to set dialect: %w", err)
	}
	return "migrations/" + string(db.dialect), nil
}

// Migrate crea o actualiza las relaciones adopters y dogs.
func Migrate(ctx context.Context, db *DB, log zerolog.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	dir, err := setupGoose(db, log)
	if err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Rollback deshace la última migración aplicada.
func Rollback(ctx context.Context, db *DB, log zerolog.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	dir, err := setupGoose(db, log)
	if err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db.DB, dir); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// Status imprime el estado de cada migración vía el logger.
func Status(ctx context.Context, db *DB, log zerolog.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	dir, err := setupGoose(db, log)
	if err != nil {
		return err
	}
	return goose.StatusContext(ctx, db.DB, dir)
}

func Version(ctx context.Context, db *DB) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if _, err := setupGoose(db, zerolog.Nop()); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db.DB)
}
