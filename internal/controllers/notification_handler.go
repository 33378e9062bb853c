package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/dto"
	"github.com/maulharun/ukm-terbaru123/internal/repository"
	"github.com/maulharun/ukm-terbaru123/internal/services"
)

type NotificationController struct {
	svc    *services.NotificationService
	notifs *repository.NotificationRepository
}

func NewNotificationController(svc *services.NotificationService, notifs *repository.NotificationRepository) *NotificationController {
	return &NotificationController{svc: svc, notifs: notifs}
}

// ListUserNotifications godoc
// @Summary      List notifications for a user
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        userId query string true "User ID"
// @Success      200  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Router       /notifications/users [get]
func (ctl *NotificationController) ListUserNotifications(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "User ID is required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notifs, err := ctl.notifs.ListByUser(ctx, userID)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil notifikasi")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"notifications": notifs,
	})
}

// ListUKMNotifications godoc
// @Summary      List notifications for a ukm's pengurus
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        ukm query string true "UKM name"
// @Success      200  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Router       /notifications/ukm [get]
func (ctl *NotificationController) ListUKMNotifications(c *fiber.Ctx) error {
	ukmName := c.Query("ukm")
	if ukmName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "UKM parameter required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notifs, err := ctl.notifs.ListByUKM(ctx, ukmName)
	if err != nil {
		return serviceError(c, err, "Gagal mengambil notifikasi")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"notifications": notifs,
	})
}

// MarkUserRead godoc
// @Summary      Mark a user notification as read
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.MarkReadRequest true "Notification ID"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /notifications/users [put]
func (ctl *NotificationController) MarkUserRead(c *fiber.Ctx) error {
	return ctl.markRead(c, ctl.svc.MarkUserNotificationRead)
}

// MarkUKMRead godoc
// @Summary      Mark a ukm notification as read
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.MarkReadRequest true "Notification ID"
// @Success      200  {object} map[string]interface{}
// @Failure      404  {object} map[string]string
// @Router       /notifications/ukm [put]
func (ctl *NotificationController) MarkUKMRead(c *fiber.Ctx) error {
	return ctl.markRead(c, ctl.svc.MarkUKMNotificationRead)
}

func (ctl *NotificationController) markRead(c *fiber.Ctx, mark func(context.Context, string) error) error {
	var in dto.MarkReadRequest
	if err := c.BodyParser(&in); err != nil || in.NotificationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Notification ID is required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := mark(ctx, in.NotificationID); err != nil {
		return serviceError(c, err, "Gagal memperbarui notifikasi")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notification marked as read",
	})
}
