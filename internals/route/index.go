package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	requirementRoute "requirements_backend/internals/features/requirements/route"
	"requirements_backend/internals/helpers/media"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, mediaSvc media.Service) {
	BaseRoutes(app, db)

	log.Println("[INFO] mounting /api routes...")
	api := app.Group("/api")
	requirementRoute.RequirementRoutes(api, db, mediaSvc)
}
