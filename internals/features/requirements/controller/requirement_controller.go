package controller

import (
	"errors"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"requirements_backend/internals/features/requirements/dto"
	"requirements_backend/internals/features/requirements/store"
	helper "requirements_backend/internals/helpers"
	"requirements_backend/internals/helpers/media"
)

type RequirementController struct {
	Store *store.Store
	Media media.Service
}

func NewRequirementController(s *store.Store, m media.Service) *RequirementController {
	return &RequirementController{Store: s, Media: m}
}

// GET /api/requirements
func (ctrl *RequirementController) List(c *fiber.Ctx) error {
	reqs, err := ctrl.Store.ListRequirements()
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToRequirementDTOs(reqs))
}

// POST /api/requirements (multipart: customer, contact, type, details, followUp, media[])
func (ctrl *RequirementController) Create(c *fiber.Ctx) error {
	req := dto.CreateRequirementRequest{
		Customer: c.FormValue("customer"),
		Contact:  c.FormValue("contact"),
		Type:     c.FormValue("type"),
		Details:  c.FormValue("details"),
		FollowUp: c.FormValue("followUp"),
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	uploaded := ctrl.Media.UploadAll(c.UserContext(), mediaFiles(c))

	rec := dto.ToRequirementModel(req, uploaded.Images, uploaded.Videos)
	if err := ctrl.Store.CreateRequirement(&rec); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToRequirementDTO(rec))
}

// PUT /api/requirements/:id/status
func (ctrl *RequirementController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := ctrl.Store.UpdateStatus(id, req.Status)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToRequirementDTO(rec))
}

// PUT /api/requirements/:id
func (ctrl *RequirementController) UpdateDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := ctrl.Store.UpdateDetails(id, req.Customer, req.Contact, req.Type, req.Details)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToRequirementDTO(rec))
}

// DELETE /api/requirements/:id
func (ctrl *RequirementController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := ctrl.Store.DeleteRequirement(id); err != nil {
		return storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// mediaFiles extracts the media[] uploads; a non-multipart body simply has
// no files.
func mediaFiles(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return media.CollectMediaFiles(form)
}

// storeError maps store error kinds to HTTP statuses. Anything unexpected is
// logged server-side and surfaced as a generic 500.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case store.IsValidationError(err):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "record not found")
	case errors.Is(err, store.ErrConflict):
		return helper.JsonError(c, fiber.StatusConflict, "duplicate record")
	default:
		log.Printf("[ERROR] store failure: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
