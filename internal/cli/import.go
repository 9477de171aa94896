package cli

import (
	"fmt"
	"io"

	"github.com/terraincognita07/babybloom/internal/content"
	"go.uber.org/zap"
)

func RunImportCommand(dbPath string, dataDir string, logger *zap.Logger, out io.Writer) error {
	tables, err := content.LoadDir(dataDir)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	service, closeStore, err := openContentService(dbPath, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := service.Import(tables)
	if err != nil {
		return fmt.Errorf("import content: %w", err)
	}

	if result.Skipped {
		fmt.Fprintf(out, "Content unchanged (checksum %s), nothing imported\n", shortChecksum(result.Record.Checksum))
		return nil
	}
	fmt.Fprintln(out, "✅ Content imported")
	fmt.Fprintf(out, "Weeks: %d\nSymptoms: %d\nSymptom weeks: %d\n", result.Record.Weeks, result.Record.Symptoms, result.Record.Mappings)
	fmt.Fprintf(out, "Import ID: %s\n", result.Record.ID)
	return nil
}

func RunValidateCommand(dataDir string, out io.Writer) error {
	tables, err := content.LoadDir(dataDir)
	if err != nil {
		return fmt.Errorf("validate content: %w", err)
	}

	fmt.Fprintln(out, "✅ Content is valid")
	fmt.Fprintf(out, "Weeks: %d\nSymptoms: %d\nSymptom weeks: %d\nChecksum: %s\n",
		len(tables.Weeks), len(tables.Symptoms), len(tables.Mappings), shortChecksum(tables.Checksum))
	return nil
}

func shortChecksum(checksum string) string {
	if len(checksum) > 12 {
		return checksum[:12]
	}
	return checksum
}
