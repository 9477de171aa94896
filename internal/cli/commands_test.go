package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/terraincognita07/babybloom/internal/security"
	"github.com/terraincognita07/babybloom/internal/services"
)

func shippedDataDir(t *testing.T) string {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	return filepath.Join(filepath.Dir(testFile), "..", "..", "data")
}

func TestRunValidateCommandReportsCounts(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := RunValidateCommand(shippedDataDir(t), &out); err != nil {
		t.Fatalf("RunValidateCommand returned error: %v", err)
	}
	for _, fragment := range []string{"Weeks: 40", "Symptom weeks: 215"} {
		if !strings.Contains(out.String(), fragment) {
			t.Fatalf("expected output to contain %q, got %q", fragment, out.String())
		}
	}
}

func TestRunValidateCommandFailsOnMissingDirectory(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := RunValidateCommand(filepath.Join(t.TempDir(), "missing"), &out); err == nil {
		t.Fatal("expected error for missing content directory")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", out.String())
	}
}

func TestRunImportCommandSkipsUnchangedContent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "babybloom.db")
	dataDir := shippedDataDir(t)

	var first bytes.Buffer
	if err := RunImportCommand(dbPath, dataDir, nil, &first); err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	if !strings.Contains(first.String(), "Content imported") || !strings.Contains(first.String(), "Weeks: 40") {
		t.Fatalf("unexpected first import output %q", first.String())
	}

	var second bytes.Buffer
	if err := RunImportCommand(dbPath, dataDir, nil, &second); err != nil {
		t.Fatalf("second import failed: %v", err)
	}
	if !strings.Contains(second.String(), "nothing imported") {
		t.Fatalf("expected unchanged content to be skipped, got %q", second.String())
	}
}

func TestRunSitemapCommandWritesFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "babybloom.db")
	if err := RunImportCommand(dbPath, shippedDataDir(t), nil, &bytes.Buffer{}); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	outPath := filepath.Join(tempDir, "public", "sitemap.xml")
	var out bytes.Buffer
	if err := RunSitemapCommand(dbPath, "https://babybloom.test/", outPath, nil, &out); err != nil {
		t.Fatalf("RunSitemapCommand returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Wrote 260 URLs") {
		t.Fatalf("unexpected output %q", out.String())
	}

	document, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read sitemap: %v", err)
	}
	if count := strings.Count(string(document), "<url>"); count != 260 {
		t.Fatalf("expected 260 url entries, got %d", count)
	}
	if !strings.Contains(string(document), "<loc>https://babybloom.test/pregnancy/40-weeks-pregnant</loc>") {
		t.Fatal("expected week 40 entry with trimmed site URL")
	}
}

func TestRunSitemapCommandWritesToStdoutWriter(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "babybloom.db")
	if err := RunImportCommand(dbPath, shippedDataDir(t), nil, &bytes.Buffer{}); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	var out bytes.Buffer
	if err := RunSitemapCommand(dbPath, "https://babybloom.test", "-", nil, &out); err != nil {
		t.Fatalf("RunSitemapCommand returned error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "<?xml") {
		t.Fatalf("expected xml document, got %q", out.String())
	}
}

func TestRunSitemapCommandRequiresImportedContent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "empty.db")
	err := RunSitemapCommand(dbPath, "https://babybloom.test", "-", nil, &bytes.Buffer{})
	if !errors.Is(err, services.ErrContentNotImported) {
		t.Fatalf("expected ErrContentNotImported, got %v", err)
	}
}

func TestRunGenerateSecretCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := RunGenerateSecretCommand(0, &out); err != nil {
		t.Fatalf("RunGenerateSecretCommand returned error: %v", err)
	}
	line := strings.TrimSpace(out.String())
	secret, ok := strings.CutPrefix(line, "SECRET_KEY=")
	if !ok {
		t.Fatalf("expected SECRET_KEY= prefix, got %q", line)
	}
	if len(secret) != security.DefaultSecretKeyLength {
		t.Fatalf("expected default length %d, got %d", security.DefaultSecretKeyLength, len(secret))
	}

	if err := RunGenerateSecretCommand(16, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for a short secret length")
	}
}
