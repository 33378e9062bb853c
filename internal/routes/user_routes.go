package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/controllers"
	"github.com/maulharun/ukm-terbaru123/internal/middleware"
	"github.com/maulharun/ukm-terbaru123/internal/models"
)

func SetupUsers(app *fiber.App, ctl *controllers.UserController) {
	users := app.Group("/api/users")
	users.Get("/", middleware.RequireRole(models.RoleAdmin), ctl.List)
	users.Get("/jadwal", ctl.Jadwal)
	users.Get("/:id", ctl.Get)
	users.Put("/:id", ctl.Update)
	users.Delete("/:id", middleware.RequireRole(models.RoleAdmin), ctl.Delete)
}
