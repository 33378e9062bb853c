package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/controllers"
	"github.com/maulharun/ukm-terbaru123/internal/middleware"
	"github.com/maulharun/ukm-terbaru123/internal/models"
)

func SetupNotifications(app *fiber.App, ctl *controllers.NotificationController) {
	notif := app.Group("/api/notifications")
	notif.Get("/users", ctl.ListUserNotifications)
	notif.Put("/users", ctl.MarkUserRead)
	notif.Get("/ukm", middleware.RequireRole(models.RolePengurus, models.RoleAdmin), ctl.ListUKMNotifications)
	notif.Put("/ukm", middleware.RequireRole(models.RolePengurus, models.RoleAdmin), ctl.MarkUKMRead)
}
