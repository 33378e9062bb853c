package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/controllers"
	"github.com/maulharun/ukm-terbaru123/internal/middleware"
	"github.com/maulharun/ukm-terbaru123/internal/models"
)

func SetupDokumentasi(app *fiber.App, ctl *controllers.DokumentasiController) {
	docs := app.Group("/api/dokumentasi")
	docs.Get("/", ctl.List)
	docs.Post("/", middleware.RequireRole(models.RolePengurus), ctl.Create)
	docs.Put("/", middleware.RequireRole(models.RolePengurus), ctl.Update)
	docs.Delete("/", middleware.RequireRole(models.RolePengurus), ctl.Delete)
}
