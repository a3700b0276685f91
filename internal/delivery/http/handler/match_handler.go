package handler

import (
	"errors"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

type applyRequest struct {
	RoleID uuid.UUID `json:"role_id"`
}

type respondRequest struct {
	Status string `json:"status"`
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

// RegisterRoutes mounts the candidate-facing match and application routes.
func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/matches", h.Rank)
	r.Get("/matches/:roleID", h.MatchForRole)
	r.Get("/applications", h.MyApplications)
	r.Post("/applications", h.Apply)
	r.Post("/applications/:id/respond", h.Respond)
}

// RegisterRecruiterRoutes mounts the recruiter-side notification and
// review routes under the roles group.
func (h *MatchHandler) RegisterRecruiterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:roleID/notify/:candidateID", h.Notify)
	r.Get("/:roleID/applications", h.RoleApplications)
}

func (h *MatchHandler) Rank(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	results, err := h.uc.RankRoles(c.Context(), candidateID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, results)
}

func (h *MatchHandler) MatchForRole(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	roleID, err := uuid.Parse(c.Params("roleID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.MatchForRole(c.Context(), candidateID, roleID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *MatchHandler) Apply(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.RoleID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	app, err := h.uc.Apply(c.Context(), candidateID, req.RoleID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, toApplicationResponse(app))
}

func (h *MatchHandler) Respond(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req respondRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.Respond(c.Context(), id, req.Status)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toApplicationResponse(app))
}

func (h *MatchHandler) MyApplications(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	apps, err := h.uc.CandidateApplications(c.Context(), candidateID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toApplicationResponses(apps))
}

func (h *MatchHandler) Notify(c fiber.Ctx) error {
	roleID, err := uuid.Parse(c.Params("roleID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	candidateID, err := uuid.Parse(c.Params("candidateID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, created, err := h.uc.NotifyEligible(c.Context(), candidateID, roleID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return response.Success(c, status, response.MessageOK, toApplicationResponse(app))
}

func (h *MatchHandler) RoleApplications(c fiber.Ctx) error {
	roleID, err := uuid.Parse(c.Params("roleID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	apps, err := h.uc.RoleApplications(c.Context(), roleID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toApplicationResponses(apps))
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrSkillProfileEmpty):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Candidate has no tracked skills", nil, err)
	case errors.Is(err, usecase.ErrBelowMatchThreshold):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Match below notification threshold", nil, err)
	case errors.Is(err, usecase.ErrApplicationClosed):
		return middleware.NewAppError(fiber.StatusConflict, "Application already closed", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
