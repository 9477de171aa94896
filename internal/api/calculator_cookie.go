package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/babybloom/internal/services"
)

const calculatorTokenPurpose = "due_date_lmp"

func (handler *Handler) setCalculatorCookie(c *fiber.Ctx, lmp time.Time) error {
	token, err := handler.buildCalculatorToken(lmp, calculatorTokenTTL)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     calculatorCookieName,
		Value:    token,
		Path:     services.CalculatorPath,
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(calculatorTokenTTL),
	})
	return nil
}

func (handler *Handler) clearCalculatorCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     calculatorCookieName,
		Value:    "",
		Path:     services.CalculatorPath,
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) buildCalculatorToken(lmp time.Time, ttl time.Duration) (string, error) {
	now := handler.now()
	claims := calculatorClaims{
		LMP: lmp.Format("2006-01-02"),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   calculatorTokenPurpose,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

// calculatorLMPFromCookie returns the stored LMP, or ok=false when the cookie
// is missing, expired or not signed by this server.
func (handler *Handler) calculatorLMPFromCookie(c *fiber.Ctx) (time.Time, bool) {
	raw := c.Cookies(calculatorCookieName)
	if raw == "" {
		return time.Time{}, false
	}

	lmp, err := handler.parseCalculatorToken(raw)
	if err != nil {
		handler.clearCalculatorCookie(c)
		return time.Time{}, false
	}
	return lmp, true
}

func (handler *Handler) parseCalculatorToken(raw string) (time.Time, error) {
	claims := &calculatorClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return handler.secretKey, nil
	}, jwt.WithTimeFunc(handler.now))
	if err != nil {
		return time.Time{}, err
	}
	if !token.Valid || claims.Subject != calculatorTokenPurpose {
		return time.Time{}, errors.New("invalid calculator token")
	}
	return services.ParseLMP(claims.LMP, handler.location)
}
