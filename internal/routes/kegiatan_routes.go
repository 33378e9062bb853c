package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/controllers"
	"github.com/maulharun/ukm-terbaru123/internal/middleware"
	"github.com/maulharun/ukm-terbaru123/internal/models"
)

func SetupKegiatan(app *fiber.App, ctl *controllers.KegiatanController) {
	kegiatan := app.Group("/api/kegiatan")
	kegiatan.Get("/", ctl.List)
	kegiatan.Post("/", middleware.RequireRole(models.RolePengurus), ctl.Create)
	kegiatan.Put("/", middleware.RequireRole(models.RolePengurus), ctl.Update)
	kegiatan.Delete("/", middleware.RequireRole(models.RolePengurus), ctl.Delete)
}
