package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/controllers"
	"github.com/maulharun/ukm-terbaru123/internal/middleware"
	"github.com/maulharun/ukm-terbaru123/internal/models"
)

func SetupDashboard(app *fiber.App, ctl *controllers.DashboardController) {
	dash := app.Group("/api/dashboard", middleware.RequireRole(models.RoleAdmin))
	dash.Get("/pendaftar", ctl.Pendaftar)
	dash.Get("/ukm", ctl.UKM)
	dash.Get("/users", ctl.Users)
	dash.Get("/kegiatan", ctl.Kegiatan)
}
