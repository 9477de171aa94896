package api

import (
	"fmt"
	"html/template"
	"path/filepath"
)

var layoutTemplateFiles = []string{"base.html", "partials.html"}

// parsePageTemplates parses the shared layout once and clones it for each
// page, so every page gets its own "content" definition.
func parsePageTemplates(templateDir string, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	layoutPaths := make([]string, 0, len(layoutTemplateFiles))
	for _, name := range layoutTemplateFiles {
		layoutPaths = append(layoutPaths, filepath.Join(templateDir, name))
	}
	layout, err := template.New("base").Funcs(funcMap).ParseFiles(layoutPaths...)
	if err != nil {
		return nil, fmt.Errorf("parse layout templates: %w", err)
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", page, err)
		}
		if _, err := clone.ParseFiles(filepath.Join(templateDir, page+".html")); err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		templates[page] = clone
	}
	return templates, nil
}
