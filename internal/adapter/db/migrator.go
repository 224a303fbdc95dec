package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// MigrationSource is one embedded migration file.
type MigrationSource struct {
	Version int64
	Name    string
}

// MigrationState reports whether a migration has been applied.
type MigrationState struct {
	MigrationSource
	Applied bool
}

// Migrator runs goose SQL migrations against MySQL. Applied versions are
// recorded in goose_db_version.
type Migrator struct {
	provider *goose.Provider
}

func NewMigrator(db *sqlx.DB, files fs.FS) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectMySQL, db.DB, files)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	return &Migrator{provider: provider}, nil
}

// Up applies every pending migration in version order and returns how many
// ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		var partial *goose.PartialError
		if errors.As(err, &partial) {
			for _, result := range partial.Applied {
				logResult(result)
			}
			logResult(partial.Failed)
			return len(partial.Applied), fmt.Errorf("migrate up: %w", err)
		}
		return 0, fmt.Errorf("migrate up: %w", err)
	}
	for _, result := range results {
		logResult(result)
	}
	return len(results), nil
}

// Down rolls back the latest steps applied migrations. It stops early once
// nothing is left to revert.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	count := 0
	for count < steps {
		result, err := m.provider.Down(ctx)
		if errors.Is(err, goose.ErrNoNextVersion) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("migrate down: %w", err)
		}
		logResult(result)
		count++
	}
	return count, nil
}

func (m *Migrator) Status(ctx context.Context) ([]MigrationState, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration status: %w", err)
	}

	states := make([]MigrationState, 0, len(statuses))
	for _, status := range statuses {
		states = append(states, MigrationState{
			MigrationSource: sourceOf(status.Source.Version, status.Source.Path),
			Applied:         status.State == goose.StateApplied,
		})
	}
	return states, nil
}

// ListMigrations reads the migration files without touching a database.
func ListMigrations(files fs.FS) ([]MigrationSource, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, err
	}

	sources := make([]MigrationSource, 0, len(names))
	for _, name := range names {
		version, err := goose.NumericComponent(name)
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", name, err)
		}
		sources = append(sources, sourceOf(version, name))
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Version < sources[j].Version })
	return sources, nil
}

func sourceOf(version int64, file string) MigrationSource {
	base := strings.TrimSuffix(path.Base(file), ".sql")
	_, name, _ := strings.Cut(base, "_")
	return MigrationSource{Version: version, Name: name}
}

func logResult(result *goose.MigrationResult) {
	if result == nil || result.Source == nil {
		return
	}
	fields := []zap.Field{
		zap.Int64("version", result.Source.Version),
		zap.String("direction", result.Direction),
		zap.Duration("duration", result.Duration),
	}
	if result.Error != nil {
		zap.L().Error("migration failed", append(fields, zap.Error(result.Error))...)
		return
	}
	zap.L().Info("migration done", fields...)
}
