package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/controllers"
)

func SetupUpload(app *fiber.App, ctl *controllers.UploadController) {
	up := app.Group("/api/upload")
	up.Post("/profile", ctl.Profile)
}
