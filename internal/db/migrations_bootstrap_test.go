package db

import (
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	embeddedmigrations "github.com/terraincognita07/babybloom/migrations"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTestSQLite(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func TestOpenSQLiteCreatesContentSchema(t *testing.T) {
	database := openTestSQLite(t, filepath.Join(t.TempDir(), "babybloom-clean.db"))

	for _, table := range []string{"pregnancy_weeks", "symptoms", "symptom_week_mappings", "content_imports"} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}
	assertEmbeddedMigrationsRecorded(t, database)
}

func TestOpenSQLiteReopenDoesNotReapply(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "babybloom-reopen.db")

	first, err := OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	firstSQL, err := first.DB()
	if err != nil {
		t.Fatalf("first sql db: %v", err)
	}
	_ = firstSQL.Close()

	database := openTestSQLite(t, databasePath)
	assertEmbeddedMigrationsRecorded(t, database)
}

func TestMigratorRejectsEditedMigration(t *testing.T) {
	database := openTestSQLite(t, filepath.Join(t.TempDir(), "babybloom-edited.db"))

	edited, err := parseMigrations(fstest.MapFS{
		"0001_content_tables.sql": {Data: []byte("CREATE TABLE IF NOT EXISTS extra (id INTEGER);")},
	})
	if err != nil {
		t.Fatalf("parse migrations: %v", err)
	}

	err = migrator{database: database, logger: zap.NewNop()}.run(edited)
	if !errors.Is(err, ErrMigrationChanged) {
		t.Fatalf("expected ErrMigrationChanged, got %v", err)
	}
}

func TestParseMigrationsOrdersByNumericVersion(t *testing.T) {
	files := fstest.MapFS{
		"0010_late.sql": {Data: []byte("SELECT 1;")},
		"2_early.sql":   {Data: []byte("SELECT 1;")},
		"README.md":     {Data: []byte("ignored")},
		"draft.sql":     {Data: []byte("ignored")},
		"0000_zero.sql": {Data: []byte("ignored")},
	}

	migrations, err := parseMigrations(files)
	if err != nil {
		t.Fatalf("parse migrations: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 2 || migrations[1].Version != 10 {
		t.Fatalf("unexpected migration order: %d, %d", migrations[0].Version, migrations[1].Version)
	}
	if migrations[0].Checksum == "" {
		t.Fatal("expected migration checksum")
	}
}

func TestParseMigrationsRejectsDuplicateVersions(t *testing.T) {
	files := fstest.MapFS{
		"0001_a.sql": {Data: []byte("SELECT 1;")},
		"1_b.sql":    {Data: []byte("SELECT 1;")},
	}

	if _, err := parseMigrations(files); err == nil {
		t.Fatal("expected duplicate migration version to fail")
	}
}

func TestSplitSQLStatementsSkipsCommentsAndBlanks(t *testing.T) {
	statements := splitSQLStatements("-- content tables\nCREATE TABLE a (id INTEGER);\n\n ;CREATE INDEX i ON a(id);  ")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(statements), statements)
	}
	if statements[0] != "CREATE TABLE a (id INTEGER)" {
		t.Fatalf("unexpected first statement %q", statements[0])
	}
}

func assertEmbeddedMigrationsRecorded(t *testing.T, database *gorm.DB) {
	t.Helper()

	expected, err := parseMigrations(embeddedmigrations.Files)
	if err != nil {
		t.Fatalf("parse embedded migrations: %v", err)
	}

	var applied int64
	if err := database.Table("schema_migrations").Count(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied != int64(len(expected)) {
		t.Fatalf("expected %d applied migrations, got %d", len(expected), applied)
	}
}
