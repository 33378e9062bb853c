package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maulharun/ukm-terbaru123/internal/controllers"
)

func SetupAuth(app *fiber.App, ctl *controllers.AuthController) {
	auth := app.Group("/api/auth")
	auth.Post("/register", ctl.Register)
	auth.Post("/login", ctl.Login)
	auth.Post("/logout", ctl.Logout)
}
