package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/postmuse/backend/internal/dto"
	"github.com/postmuse/backend/internal/middleware"
	"github.com/postmuse/backend/internal/services"
)

type DraftHandler struct {
	draftService *services.DraftService
}

func NewDraftHandler(draftService *services.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

func (h *DraftHandler) Save(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Content == "" || req.Platform == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "content and platform are required",
		})
	}

	draftID, err := h.draftService.Save(user.ID, req.Content, req.Platform)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save draft",
		})
	}

	slog.Info("draft saved", "user_id", user.ID.String(), "platform", req.Platform)
	return c.JSON(dto.DraftResponse{Status: "success", ID: draftID.String()})
}

func (h *DraftHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	drafts, err := h.draftService.List(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch drafts",
		})
	}

	items := make([]dto.DraftItem, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, dto.DraftItem{
			ID:        d.ID.String(),
			Content:   d.Content,
			Platform:  d.Platform,
			CreatedAt: d.CreatedAt,
		})
	}
	return c.JSON(items)
}
