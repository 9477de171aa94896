package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/babybloom/internal/services"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatTemplateDate(value time.Time, layout string) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(layout)
}

// templateSymptomTitle renders a stored symptom key ("back pain") as a heading.
// A Caser keeps state between calls, so each call gets its own.
func templateSymptomTitle(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

func templateWeekPath(week int) string {
	return services.WeekPath(week)
}

func templateSymptomWeekPath(week int, symptom string) string {
	return services.SymptomWeekPath(week, symptom)
}

func isActiveTemplateRoute(currentPath string, route string) bool {
	path := strings.TrimSpace(currentPath)
	if path == "" {
		return route == "/"
	}
	if route == "/" {
		return path == "/" || strings.HasPrefix(path, "/?")
	}
	return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
}

func templateDict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict requires key-value pairs")
	}
	result := make(map[string]any, len(values)/2)
	for index := 0; index < len(values); index += 2 {
		key, ok := values[index].(string)
		if !ok {
			return nil, fmt.Errorf("dict key at index %d is not a string", index)
		}
		result[key] = values[index+1]
	}
	return result, nil
}
