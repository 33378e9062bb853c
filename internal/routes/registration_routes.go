package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/controllers"
	"github.com/maulharun/ukm-terbaru123/internal/middleware"
	"github.com/maulharun/ukm-terbaru123/internal/models"
)

func SetupRegistrations(app *fiber.App, ctl *controllers.RegistrationController) {
	regs := app.Group("/api/registrations")
	regs.Post("/", middleware.RequireRole(models.RoleMahasiswa), ctl.Submit)
	regs.Get("/", middleware.RequireRole(models.RoleAdmin), ctl.List)
	regs.Put("/", middleware.RequireRole(models.RoleAdmin), ctl.Decide)
}
