package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/storage"
)

type UploadController struct {
	assets storage.AssetStore
}

func NewUploadController(assets storage.AssetStore) *UploadController {
	return &UploadController{assets: assets}
}

// Profile godoc
// @Summary      Upload a profile photo
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Router       /upload/profile [post]
func (ctl *UploadController) Profile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No file uploaded",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	up, err := ctl.assets.Upload(ctx, file, "profiles")
	if err != nil {
		return serviceError(c, err, "Failed to upload image")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"url":       up.URL,
		"public_id": up.PublicID,
	})
}
