package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/babybloom/internal/services"
	"go.uber.org/zap"
)

type calculatorInput struct {
	LMP string `json:"lmp" form:"lmp" query:"lmp"`
}

func (handler *Handler) ShowCalculator(c *fiber.Ctx) error {
	messages := currentMessages(c)
	language := handler.currentLanguageOrDefault(c)
	data := fiber.Map{
		"Title":       localizedPageTitle(messages, "meta.title.calculator", "Pregnancy Due Date Calculator | BabyBloom"),
		"Description": translateMessage(messages, "meta.description.calculator"),
		"Today":       services.DateAtLocation(handler.now(), handler.location),
		"LMPInput":    "",
		"ErrorKey":    "",
	}

	flash := handler.popFlashCookie(c)
	if flash.CalculatorError != "" {
		data["ErrorKey"] = flash.CalculatorError
		data["LMPInput"] = flash.LMPInput
		return handler.render(c, "calculator", data)
	}

	lmp, ok, err := handler.requestedLMP(c)
	if err != nil {
		data["ErrorKey"] = calculatorErrorTranslationKey(err)
		data["LMPInput"] = strings.TrimSpace(c.Query("lmp"))
		return handler.render(c, "calculator", data)
	}
	if !ok {
		return handler.render(c, "calculator", data)
	}

	data["LMPInput"] = lmp.Format("2006-01-02")
	result, err := services.CalculateDueDate(lmp, handler.now(), handler.location)
	if err != nil {
		data["ErrorKey"] = calculatorErrorTranslationKey(err)
		return handler.render(c, "calculator", data)
	}
	data["Result"] = buildCalculatorResultView(language, result)
	return handler.render(c, "calculator", data)
}

// requestedLMP prefers an explicit ?lmp= query over the stored cookie.
func (handler *Handler) requestedLMP(c *fiber.Ctx) (time.Time, bool, error) {
	if raw := c.Query("lmp"); raw != "" {
		lmp, err := services.ParseLMP(raw, handler.location)
		if err != nil {
			return time.Time{}, false, err
		}
		return lmp, true, nil
	}
	lmp, ok := handler.calculatorLMPFromCookie(c)
	return lmp, ok, nil
}

func (handler *Handler) SubmitCalculator(c *fiber.Ctx) error {
	input := calculatorInput{}
	if err := c.BodyParser(&input); err != nil {
		input.LMP = ""
	}
	input.LMP = strings.TrimSpace(input.LMP)

	result, err := handler.calculate(input.LMP)
	if acceptsJSON(c) {
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(buildDueDateResponse(handler.currentLanguageOrDefault(c), result))
	}

	if err != nil {
		handler.setFlashCookie(c, FlashPayload{
			CalculatorError: calculatorErrorTranslationKey(err),
			LMPInput:        input.LMP,
		})
		return c.Redirect(services.CalculatorPath, fiber.StatusSeeOther)
	}

	if err := handler.setCalculatorCookie(c, result.LMP); err != nil {
		handler.logger.Error("sign calculator cookie", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("failed to store calculation")
	}
	return c.Redirect(services.CalculatorPath, fiber.StatusSeeOther)
}

func (handler *Handler) ResetCalculator(c *fiber.Ctx) error {
	handler.clearCalculatorCookie(c)
	return c.Redirect(services.CalculatorPath, fiber.StatusSeeOther)
}

func (handler *Handler) DueDateAPI(c *fiber.Ctx) error {
	result, err := handler.calculate(c.Query("lmp"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(buildDueDateResponse(handler.currentLanguageOrDefault(c), result))
}

func (handler *Handler) calculate(raw string) (services.DueDateResult, error) {
	lmp, err := services.ParseLMP(raw, handler.location)
	if err != nil {
		return services.DueDateResult{}, err
	}
	return services.CalculateDueDate(lmp, handler.now(), handler.location)
}
