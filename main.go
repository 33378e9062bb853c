// @title UKM Portal API
// @version 1.0
// @description Backend for the university student-organization (UKM) membership portal.
// @host localhost:8000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	_ "github.com/maulharun/ukm-terbaru123/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/maulharun/ukm-terbaru123/bootstrap"
	"github.com/maulharun/ukm-terbaru123/config"
	"github.com/maulharun/ukm-terbaru123/database"
	"github.com/maulharun/ukm-terbaru123/internal/controllers"
	"github.com/maulharun/ukm-terbaru123/internal/middleware"
	"github.com/maulharun/ukm-terbaru123/internal/repository"
	"github.com/maulharun/ukm-terbaru123/internal/routes"
	"github.com/maulharun/ukm-terbaru123/internal/services"
	"github.com/maulharun/ukm-terbaru123/internal/storage"
)

func main() {
	cfg := config.LoadConfig()

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(context.Background())

	db := database.DB

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	assets, err := storage.NewMinioStore(storage.MinioOptions{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
		PublicURL: cfg.MinioPublicURL,
	})
	if err != nil {
		log.Fatalf("minio: %v", err)
	}

	// Repositories
	users := repository.NewUserRepository(db)
	ukms := repository.NewUKMRepository(db)
	regs := repository.NewRegistrationRepository(db)
	notifs := repository.NewNotificationRepository(db)
	kegiatan := repository.NewKegiatanRepository(db)
	dokumentasi := repository.NewDokumentasiRepository(db)

	// Services
	regService := services.NewRegistrationService(regs, ukms, users, notifs, assets, services.NewMongoAtomic(client))
	notifService := services.NewNotificationService(notifs)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Get JWT with login
	routes.SetupAuth(app, controllers.NewAuthController(users, cfg.JWTSecret))

	app.Use(middleware.JWTAuth(cfg.JWTSecret))

	// Routes
	routes.SetupRegistrations(app, controllers.NewRegistrationController(regService, regs))
	routes.SetupNotifications(app, controllers.NewNotificationController(notifService, notifs))
	routes.SetupUKM(app, controllers.NewUKMController(ukms))
	routes.SetupUsers(app, controllers.NewUserController(users, kegiatan, assets))
	routes.SetupKegiatan(app, controllers.NewKegiatanController(kegiatan, assets))
	routes.SetupDokumentasi(app, controllers.NewDokumentasiController(dokumentasi, assets))
	routes.SetupUpload(app, controllers.NewUploadController(assets))
	routes.SetupDashboard(app, controllers.NewDashboardController(regs, ukms, users, kegiatan))

	// RUN SERVER
	log.Fatal(app.Listen(":" + cfg.Port))
}
