package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"aryavats2/interview-coach/internal/services"
)

// completionFailed reports an upstream completion failure as a 500.
func completionFailed(c *fiber.Ctx, err error) error {
	event := log.Error().Err(err).Str("path", c.Path())

	var cerr *services.CompletionError
	if errors.As(err, &cerr) {
		event = event.Str("reason", string(cerr.Reason)).Int("status", cerr.StatusCode)
	}
	event.Msg("❌ Completion request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "API request failed: " + err.Error(),
	})
}

// ErrorHandler renders errors that escape handlers, such as unknown routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
