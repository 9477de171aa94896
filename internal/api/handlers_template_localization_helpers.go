package api

import (
	"fmt"

	"github.com/terraincognita07/babybloom/internal/models"
)

func templateTranslate(messages map[string]string, key string) string {
	return translateMessage(messages, key)
}

func templateTranslatef(messages map[string]string, key string, args ...any) string {
	return fmt.Sprintf(translateMessage(messages, key), args...)
}

func templateTrimesterLabel(messages map[string]string, trimester models.Trimester) string {
	return translateMessage(messages, trimesterTranslationKey(trimester))
}

func templateSeverityLabel(messages map[string]string, severity models.Severity) string {
	return translateMessage(messages, severityTranslationKey(severity))
}

func templateSeverityDescription(messages map[string]string, severity models.Severity) string {
	key := severityTranslationKey(severity)
	if key == "" {
		return ""
	}
	return translateMessage(messages, key+".description")
}
