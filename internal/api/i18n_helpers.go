package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/babybloom/internal/models"
	"github.com/terraincognita07/babybloom/internal/services"
)

func translateMessage(messages map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return key
}

func trimesterTranslationKey(trimester models.Trimester) string {
	switch trimester {
	case models.TrimesterFirst:
		return "trimester.first"
	case models.TrimesterSecond:
		return "trimester.second"
	case models.TrimesterThird:
		return "trimester.third"
	default:
		return ""
	}
}

func severityTranslationKey(severity models.Severity) string {
	switch severity {
	case models.SeverityLow:
		return "severity.low"
	case models.SeverityModerate:
		return "severity.moderate"
	case models.SeverityHigh:
		return "severity.high"
	default:
		return ""
	}
}

func calculatorErrorTranslationKey(err error) string {
	switch {
	case errors.Is(err, services.ErrLMPInFuture):
		return "calculator.error.lmp_in_future"
	case err != nil:
		return "calculator.error.invalid_lmp"
	default:
		return ""
	}
}

func currentLanguage(c *fiber.Ctx) string {
	language, ok := c.Locals(contextLanguageKey).(string)
	if !ok || strings.TrimSpace(language) == "" {
		return ""
	}
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, ok := c.Locals(contextMessagesKey).(map[string]string)
	if !ok || messages == nil {
		return map[string]string{}
	}
	return messages
}

func (handler *Handler) currentLanguageOrDefault(c *fiber.Ctx) string {
	if language := currentLanguage(c); language != "" {
		return language
	}
	return handler.i18n.DefaultLanguage()
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	if _, ok := data["Messages"]; !ok {
		data["Messages"] = currentMessages(c)
	}
	if _, ok := data["Lang"]; !ok {
		data["Lang"] = handler.currentLanguageOrDefault(c)
	}
	if _, ok := data["Languages"]; !ok {
		data["Languages"] = handler.i18n.SupportedLanguages()
	}
	if _, ok := data["CurrentPath"]; !ok {
		data["CurrentPath"] = currentPathWithQuery(c)
	}
	if _, ok := data["CanonicalURL"]; !ok {
		data["CanonicalURL"] = handler.siteURL + c.Path()
	}
	if _, ok := data["CSRFToken"]; !ok {
		data["CSRFToken"] = csrfToken(c)
	}
	return data
}

func currentPathWithQuery(c *fiber.Ctx) string {
	path := string(c.Request().URI().RequestURI())
	if path == "" {
		return c.Path()
	}
	return path
}
