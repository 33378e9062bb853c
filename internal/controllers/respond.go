package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/maulharun/ukm-terbaru123/internal/services"
)

// serviceErrorLog records a non-fatal failure that should not fail the
// request (e.g. orphaned asset cleanup).
func serviceErrorLog(err error, msg string) {
	log.WithError(err).Warn(msg)
}

// serviceError maps the service-layer taxonomy onto HTTP. Validation and
// not-found/conflict errors carry user-correctable messages as-is;
// anything else is logged and hidden behind a generic message.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	default:
		log.WithError(err).Error(fallback)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": fallback,
		})
	}
}
