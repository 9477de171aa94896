package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const languageCookieMaxAge = 365 * 24 * time.Hour

// LanguageMiddleware resolves the UI language from the language cookie,
// then Accept-Language, and persists the result so the choice is sticky.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := handler.requestLanguage(c)
	if c.Cookies(languageCookieName) != language {
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	c.Set(fiber.HeaderContentLanguage, language)
	c.Vary(fiber.HeaderAcceptLanguage)
	return c.Next()
}

func (handler *Handler) requestLanguage(c *fiber.Ctx) string {
	if stored := strings.TrimSpace(c.Cookies(languageCookieName)); stored != "" {
		return handler.i18n.NormalizeLanguage(stored)
	}
	return handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(languageCookieMaxAge),
	})
}
