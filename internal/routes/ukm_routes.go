package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/controllers"
	"github.com/maulharun/ukm-terbaru123/internal/middleware"
	"github.com/maulharun/ukm-terbaru123/internal/models"
)

func SetupUKM(app *fiber.App, ctl *controllers.UKMController) {
	ukm := app.Group("/api/ukm")
	ukm.Get("/", ctl.List)
	ukm.Get("/members", middleware.RequireRole(models.RolePengurus, models.RoleAdmin), ctl.Members)
	ukm.Post("/", middleware.RequireRole(models.RoleAdmin), ctl.Create)
	ukm.Put("/", middleware.RequireRole(models.RoleAdmin), ctl.Update)
	ukm.Delete("/", middleware.RequireRole(models.RoleAdmin), ctl.Delete)
}
