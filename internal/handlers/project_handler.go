package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pmtrack/backend/internal/config"
	"github.com/pmtrack/backend/internal/dto"
	"github.com/pmtrack/backend/internal/identity"
	"github.com/pmtrack/backend/internal/services"
	"github.com/pmtrack/backend/internal/storage"
	"github.com/pmtrack/backend/internal/validation"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	store          *storage.LocalStore
	cfg            *config.Config
}

func NewProjectHandler(projectService *services.ProjectService, store *storage.LocalStore, cfg *config.Config) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, store: store, cfg: cfg}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projectService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list projects",
		})
	}

	resp := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		resp = append(resp, toProjectResponse(&projects[i]))
	}
	return c.JSON(resp)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid project id",
		})
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load project",
		})
	}

	return c.JSON(toProjectResponse(project))
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateProjectRequest
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

	project, err := h.projectService.Create(&req, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create project",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toProjectResponse(project))
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid project id",
		})
	}

	var req dto.UpdateProjectRequest
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

	if err := h.projectService.Update(id, &req, identity.CallerFromContext(c)); err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update project",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid project id",
		})
	}

	refs, err := h.projectService.Delete(id, identity.CallerFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete project",
		})
	}

	// Stored files are removed best-effort after the rows are gone.
	for _, ref := range refs {
		h.store.Remove(ref)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UploadAttachment handles POST /projects/:id/attachments. The multipart
// payload is written to the file store first; only the metadata registration
// is part of the core.
func (h *ProjectHandler) UploadAttachment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid project id",
		})
	}

	if _, err := h.projectService.Get(id); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load project",
		})
	}

	file, err := c.FormFile("file")
	if err != nil || file.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No file uploaded",
		})
	}
	if file.Size > h.cfg.MaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "File is too large",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read upload",
		})
	}
	defer src.Close()

	ref, err := h.store.Save(id, file.Filename, src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store file",
		})
	}

	attachment, err := h.projectService.RegisterAttachment(id, file.Filename, ref, file.Header.Get("Content-Type"), file.Size)
	if err != nil {
		h.store.Remove(ref)
		if errors.Is(err, services.ErrInvalidAttachment) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to register attachment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toAttachmentResponse(attachment))
}
