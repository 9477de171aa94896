package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/terraincognita07/babybloom/internal/services"
	"go.uber.org/zap"
)

// RunSitemapCommand renders the XML sitemap from the imported content. An
// empty outPath or "-" writes to out.
func RunSitemapCommand(dbPath string, siteURL string, outPath string, logger *zap.Logger, out io.Writer) error {
	service, closeStore, err := openContentService(dbPath, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	catalog, contentImport, err := service.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	routes, err := services.BuildRouteTable(catalog)
	if err != nil {
		return fmt.Errorf("build route table: %w", err)
	}

	entries := services.BuildSitemap(routes, strings.TrimRight(strings.TrimSpace(siteURL), "/"), contentImport.ImportedAt)
	document, err := services.RenderSitemapXML(entries)
	if err != nil {
		return fmt.Errorf("render sitemap: %w", err)
	}

	outPath = strings.TrimSpace(outPath)
	if outPath == "" || outPath == "-" {
		_, err := out.Write(document)
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create sitemap directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, document, 0o644); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	fmt.Fprintf(out, "✅ Wrote %d URLs to %s\n", len(entries), outPath)
	return nil
}
