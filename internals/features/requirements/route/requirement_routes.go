package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"requirements_backend/internals/features/requirements/controller"
	"requirements_backend/internals/features/requirements/store"
	"requirements_backend/internals/helpers/media"
)

// RequirementRoutes mounts the requirement, comment and type endpoints on
// the /api group.
func RequirementRoutes(api fiber.Router, db *gorm.DB, mediaSvc media.Service) {
	s := store.New(db)

	reqCtrl := controller.NewRequirementController(s, mediaSvc)
	commentCtrl := controller.NewCommentController(s, mediaSvc)
	typeCtrl := controller.NewRequirementTypeController(s)

	api.Get("/requirements", reqCtrl.List)
	api.Post("/requirements", reqCtrl.Create)
	api.Put("/requirements/:id/status", reqCtrl.UpdateStatus)
	api.Put("/requirements/:id", reqCtrl.UpdateDetails)
	api.Delete("/requirements/:id", reqCtrl.Delete)

	api.Post("/requirements/:id/comments", commentCtrl.Create)

	api.Get("/types", typeCtrl.List)
	api.Post("/types", typeCtrl.Create)
	api.Delete("/types/:id", typeCtrl.Delete)
}
