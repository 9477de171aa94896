package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/babybloom/internal/services"
)

const (
	flashCookieTTL       = 5 * time.Minute
	maxFlashCookieLength = 512
)

var errFlashEmpty = errors.New("empty flash payload")

// encodeFlash serializes a one-shot message for the next GET. Empty payloads
// are not worth a cookie.
func encodeFlash(payload FlashPayload) (string, error) {
	payload = normalizeFlashPayload(payload)
	if payload == (FlashPayload{}) {
		return "", errFlashEmpty
	}
	serialized, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(serialized), nil
}

func decodeFlash(raw string) (FlashPayload, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxFlashCookieLength {
		return FlashPayload{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}, false
	}
	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}, false
	}
	return normalizeFlashPayload(payload), true
}

// normalizeFlashPayload keeps only known calculator error keys and values
// that fit a YYYY-MM-DD input, since the cookie is client controlled.
func normalizeFlashPayload(payload FlashPayload) FlashPayload {
	payload.CalculatorError = strings.TrimSpace(payload.CalculatorError)
	if !strings.HasPrefix(payload.CalculatorError, "calculator.error.") {
		payload.CalculatorError = ""
	}
	payload.LMPInput = strings.TrimSpace(payload.LMPInput)
	if len(payload.LMPInput) > len("2006-01-02") {
		payload.LMPInput = ""
	}
	return payload
}

func (handler *Handler) setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	value, err := encodeFlash(payload)
	if err != nil {
		handler.clearFlashCookie(c)
		return
	}
	handler.writeFlashCookie(c, value, time.Now().Add(flashCookieTTL))
}

func (handler *Handler) popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := c.Cookies(flashCookieName)
	if raw == "" {
		return FlashPayload{}
	}
	handler.clearFlashCookie(c)

	payload, _ := decodeFlash(raw)
	return payload
}

func (handler *Handler) clearFlashCookie(c *fiber.Ctx) {
	handler.writeFlashCookie(c, "", time.Now().Add(-time.Hour))
}

func (handler *Handler) writeFlashCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     services.CalculatorPath,
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  expires,
	})
}
