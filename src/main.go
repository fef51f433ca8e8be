package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	_ "Backend-FormReview/docs"
	"Backend-FormReview/src/config"
	"Backend-FormReview/src/database"
	"Backend-FormReview/src/jobs"
	"Backend-FormReview/src/routes"
	"Backend-FormReview/src/seeder"
	"Backend-FormReview/src/services/forms"
	"Backend-FormReview/src/services/notifications"
	"Backend-FormReview/src/services/submission"
	"Backend-FormReview/src/utils"
)

// @title          Form Review API
// @version        1.0
// @description    Submission scoring, review workflow and activity log.
// @BasePath       /api
// @securityDefinitions.apikey BearerAuth
// @in             header
// @name           Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	if err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	database.InitRedis(cfg.RedisURI)
	database.InitAsynq()

	formStore := forms.NewCachedStore(
		forms.NewMongoStore(database.FormCollection), database.RedisClient, cfg.FormCacheTTL,
	)
	formSvc := forms.NewService(formStore)
	submissionSvc := submission.NewService(
		formStore,
		submission.NewMongoStore(database.SubmissionCollection),
		newDispatcher(cfg),
	)

	if cfg.SeedSampleForms {
		if err := seeder.SeedSampleForms(context.Background(), formSvc); err != nil {
			log.Println("⚠️ Seeding sample forms failed:", err)
		}
	}

	go jobs.StartWorker(cfg, database.RedisURI)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	// Swagger UI at /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Deps{Forms: formSvc, Submissions: submissionSvc})

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		database.CloseAsynq()
		if err := database.Disconnect(ctx); err != nil {
			log.Println("⚠️ MongoDB disconnect:", err)
		}
	}()

	log.Println("Server is running on port " + cfg.AppURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		log.Println("❌ Server stopped:", err)
	}
}

// newDispatcher queues review emails through Asynq, or sends them inline
// when Redis is down and SMTP is configured.
func newDispatcher(cfg *config.Config) *notifications.Dispatcher {
	var sender notifications.MailSender
	if s, err := notifications.NewSMTPSender(cfg.SMTP); err != nil {
		log.Println("⚠️ Mail sender disabled:", err)
	} else {
		sender = s
	}

	if database.AsynqClient != nil {
		return notifications.NewDispatcher(database.AsynqClient, sender, cfg.FrontendURL)
	}
	return notifications.NewDispatcher(nil, sender, cfg.FrontendURL)
}
