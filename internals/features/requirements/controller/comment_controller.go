package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"requirements_backend/internals/features/requirements/dto"
	"requirements_backend/internals/features/requirements/model"
	"requirements_backend/internals/features/requirements/store"
	helper "requirements_backend/internals/helpers"
	"requirements_backend/internals/helpers/media"
)

type CommentController struct {
	Store *store.Store
	Media media.Service
}

func NewCommentController(s *store.Store, m media.Service) *CommentController {
	return &CommentController{Store: s, Media: m}
}

// POST /api/requirements/:id/comments (multipart: text, media[])
func (ctrl *CommentController) Create(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	text := c.FormValue("text")
	files := mediaFiles(c)

	// checked before any uploader or store call
	if strings.TrimSpace(text) == "" && len(files) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "comment needs text or at least one media file")
	}

	uploaded := ctrl.Media.UploadAll(c.UserContext(), files)

	comment := model.CommentModel{
		RequirementID: id,
		Text:          text,
		Images:        model.URLList(uploaded.Images),
		Videos:        model.URLList(uploaded.Videos),
	}
	if err := ctrl.Store.AddComment(&comment); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCommentDTO(comment))
}
