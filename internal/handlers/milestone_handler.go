package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pmtrack/backend/internal/dto"
	"github.com/pmtrack/backend/internal/identity"
	"github.com/pmtrack/backend/internal/services"
	"github.com/pmtrack/backend/internal/validation"
)

type MilestoneHandler struct {
	milestoneService *services.MilestoneService
}

func NewMilestoneHandler(milestoneService *services.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

func (h *MilestoneHandler) ListByProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid project id",
		})
	}

	milestones, err := h.milestoneService.ListByProject(projectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list milestones",
		})
	}

	resp := make([]dto.MilestoneResponse, 0, len(milestones))
	for i := range milestones {
		resp = append(resp, toMilestoneResponse(&milestones[i]))
	}
	return c.JSON(resp)
}

func (h *MilestoneHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid milestone id",
		})
	}

	milestone, err := h.milestoneService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrMilestoneNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load milestone",
		})
	}

	return c.JSON(toMilestoneResponse(milestone))
}

func (h *MilestoneHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if messages := validation.Struct(&req); messages != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error: true, Messages: messages,
		})
	}

	milestone, err := h.milestoneService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create milestone",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toMilestoneResponse(milestone))
}

func (h *MilestoneHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid milestone id",
		})
	}

	var req dto.UpdateMilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if messages := validation.Struct(&req); messages != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error: true, Messages: messages,
		})
	}

	if err := h.milestoneService.Update(id, &req); err != nil {
		if errors.Is(err, services.ErrMilestoneNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update milestone",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MilestoneHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid milestone id",
		})
	}

	var req dto.ApproveMilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if messages := validation.Struct(&req); messages != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error: true, Messages: messages,
		})
	}

	if err := h.milestoneService.Approve(id, &req, identity.CallerFromContext(c)); err != nil {
		switch {
		case errors.Is(err, services.ErrMilestoneNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotAchieved):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to approve milestone",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MilestoneHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid milestone id",
		})
	}

	if err := h.milestoneService.Delete(id, identity.CallerFromContext(c)); err != nil {
		switch {
		case errors.Is(err, services.ErrMilestoneNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete milestone",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
