package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

const (
	LangEN = "en"
	LangRU = "ru"
)

var requiredLanguages = []string{LangEN, LangRU}

// Manager holds UI messages per language. Lookups in a language fall back
// to the default language key by key.
type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
}

func NewManager(defaultLanguage string, localesDir string) (*Manager, error) {
	info, err := os.Stat(localesDir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("locales path %s is not a directory", localesDir)
	}
	return NewManagerFS(defaultLanguage, os.DirFS(localesDir))
}

func NewManagerFS(defaultLanguage string, files fs.FS) (*Manager, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	manager := &Manager{locales: map[string]map[string]string{}}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		language := strings.ToLower(strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
		raw, err := fs.ReadFile(files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", language, err)
		}

		messages := map[string]string{}
		if err := json.Unmarshal(raw, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", language, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", language)
		}

		manager.locales[language] = messages
		manager.supported = append(manager.supported, language)
	}

	for _, language := range requiredLanguages {
		if _, ok := manager.locales[language]; !ok {
			return nil, fmt.Errorf("required locale %q missing", language)
		}
	}

	sort.Strings(manager.supported)
	manager.defaultLanguage = manager.resolveDefaultLanguage(defaultLanguage)
	return manager, nil
}

// resolveDefaultLanguage returns LangEN when raw is not a loaded locale.
func (manager *Manager) resolveDefaultLanguage(raw string) string {
	if language := baseLanguage(raw); manager.isSupported(language) {
		return language
	}
	return LangEN
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	return append([]string(nil), manager.supported...)
}

func (manager *Manager) NormalizeLanguage(raw string) string {
	language := baseLanguage(raw)
	if manager.isSupported(language) {
		return language
	}
	return manager.defaultLanguage
}

// DetectFromAcceptLanguage picks the first supported language in header
// order. Quality weights are ignored.
func (manager *Manager) DetectFromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if language := baseLanguage(tag); manager.isSupported(language) {
			return language
		}
	}
	return manager.defaultLanguage
}

func (manager *Manager) Messages(language string) map[string]string {
	fallback := manager.locales[manager.defaultLanguage]
	target := manager.locales[manager.NormalizeLanguage(language)]

	result := make(map[string]string, len(fallback))
	for key, value := range fallback {
		result[key] = value
	}
	for key, value := range target {
		if strings.TrimSpace(value) != "" {
			result[key] = value
		}
	}
	return result
}

func (manager *Manager) Translate(language string, key string) string {
	if value, ok := manager.Messages(language)[key]; ok {
		return value
	}
	return key
}

func (manager *Manager) Translatef(language string, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(language, key), args...)
}

func (manager *Manager) isSupported(language string) bool {
	_, ok := manager.locales[language]
	return language != "" && ok
}

func baseLanguage(raw string) string {
	language := strings.ToLower(strings.TrimSpace(raw))
	language = strings.ReplaceAll(language, "_", "-")
	language, _, _ = strings.Cut(language, "-")
	return language
}
