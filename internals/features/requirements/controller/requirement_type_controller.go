package controller

import (
	"github.com/gofiber/fiber/v2"

	"requirements_backend/internals/features/requirements/dto"
	"requirements_backend/internals/features/requirements/model"
	"requirements_backend/internals/features/requirements/store"
	helper "requirements_backend/internals/helpers"
)

type RequirementTypeController struct {
	Store *store.Store
}

func NewRequirementTypeController(s *store.Store) *RequirementTypeController {
	return &RequirementTypeController{Store: s}
}

// GET /api/types
func (ctrl *RequirementTypeController) List(c *fiber.Ctx) error {
	types, err := ctrl.Store.ListTypes()
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToRequirementTypeDTOs(types))
}

// POST /api/types
func (ctrl *RequirementTypeController) Create(c *fiber.Ctx) error {
	var req dto.CreateTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec := model.RequirementTypeModel{Name: req.Name}
	if err := ctrl.Store.CreateType(&rec); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToRequirementTypeDTO(rec))
}

// DELETE /api/types/:id
func (ctrl *RequirementTypeController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := ctrl.Store.DeleteType(id); err != nil {
		return storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
