package db

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	embeddedmigrations "github.com/terraincognita07/babybloom/migrations"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrMigrationChanged = errors.New("applied migration was modified")

// migration is one NNNN_name.sql file.
type migration struct {
	Version  int
	Name     string
	Body     string
	Checksum string
}

type appliedMigration struct {
	Version  int    `gorm:"column:version"`
	Name     string `gorm:"column:name"`
	Checksum string `gorm:"column:checksum"`
}

type migrator struct {
	database *gorm.DB
	logger   *zap.Logger
}

func applyEmbeddedMigrations(database *gorm.DB, logger *zap.Logger) error {
	pending, err := parseMigrations(embeddedmigrations.Files)
	if err != nil {
		return err
	}
	return migrator{database: database, logger: logger}.run(pending)
}

func (m migrator) run(migrations []migration) error {
	if err := m.database.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  checksum TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	applied, err := m.applied()
	if err != nil {
		return err
	}

	for _, next := range migrations {
		if previous, ok := applied[next.Version]; ok {
			if previous.Checksum != next.Checksum {
				return fmt.Errorf("%w: %s", ErrMigrationChanged, next.Name)
			}
			continue
		}
		if err := m.apply(next); err != nil {
			return err
		}
		m.logger.Info("applied migration", zap.String("name", next.Name), zap.Int("version", next.Version))
	}
	return nil
}

func (m migrator) applied() (map[int]appliedMigration, error) {
	rows := make([]appliedMigration, 0)
	if err := m.database.Raw(`SELECT version, name, checksum FROM schema_migrations`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}

	byVersion := make(map[int]appliedMigration, len(rows))
	for _, row := range rows {
		byVersion[row.Version] = row
	}
	return byVersion, nil
}

func (m migrator) apply(next migration) error {
	statements := splitSQLStatements(next.Body)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s has no SQL statements", next.Name)
	}

	return m.database.Transaction(func(tx *gorm.DB) error {
		for index, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s statement %d: %w", next.Name, index+1, err)
			}
		}
		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name, checksum) VALUES (?, ?, ?)`,
			next.Version, next.Name, next.Checksum,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", next.Name, err)
		}
		return nil
	})
}

// parseMigrations reads every NNNN_name.sql file at the root of files,
// ordered by numeric version. Other files are ignored.
func parseMigrations(files fs.FS) ([]migration, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list embedded migrations: %w", err)
	}

	migrations := make([]migration, 0, len(names))
	owners := make(map[int]string, len(names))
	for _, name := range names {
		version, ok := migrationVersion(name)
		if !ok {
			continue
		}
		if owner, taken := owners[version]; taken {
			return nil, fmt.Errorf("migration version %d used by both %s and %s", version, owner, name)
		}
		owners[version] = name

		body, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		sum := sha256.Sum256(body)
		migrations = append(migrations, migration{
			Version:  version,
			Name:     name,
			Body:     string(body),
			Checksum: hex.EncodeToString(sum[:]),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func migrationVersion(name string) (int, bool) {
	prefix, rest, found := strings.Cut(strings.TrimSuffix(path.Base(name), ".sql"), "_")
	if !found || prefix == "" || rest == "" {
		return 0, false
	}
	version, err := strconv.Atoi(prefix)
	if err != nil || version <= 0 {
		return 0, false
	}
	return version, true
}

// splitSQLStatements drops "--" comment lines and splits on semicolons.
// Migrations must not contain semicolons inside string literals.
func splitSQLStatements(body string) []string {
	var cleaned strings.Builder
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		cleaned.WriteString(line)
		cleaned.WriteByte('\n')
	}

	statements := make([]string, 0)
	for _, part := range strings.Split(cleaned.String(), ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
