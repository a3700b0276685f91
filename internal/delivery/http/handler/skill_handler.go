package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type trackSkillRequest struct {
	SkillName    string `json:"skill_name"`
	Category     string `json:"category"`
	InitialScore int    `json:"initial_score"`
	TargetScore  int    `json:"target_score"`
}

type targetScoreRequest struct {
	TargetScore int `json:"target_score"`
}

type overrideScoreRequest struct {
	Score int `json:"score"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

// RegisterRoutes mounts the candidate-facing profile routes.
func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Profile)
	r.Post("/", h.Track)
	r.Put("/:skillID/target", h.SetTarget)
}

// RegisterCatalogRoutes mounts the shared skill catalog.
func (h *SkillHandler) RegisterCatalogRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Catalog)
}

// RegisterRecruiterRoutes mounts the recruiter-only score override.
func (h *SkillHandler) RegisterRecruiterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/:candidateID/skills/:skillID/score", h.Override)
}

func (h *SkillHandler) Catalog(c fiber.Ctx) error {
	items, err := h.uc.ListCatalog(c.Context())
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, s := range items {
		res = append(res, dto.SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Profile(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	profile, err := h.uc.Profile(c.Context(), candidateID)
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillProfileResponse{
		Skills:         toCandidateSkillResponses(profile.Skills),
		ReadinessIndex: profile.ReadinessIndex,
	})
}

func (h *SkillHandler) Track(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req trackSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.TrackSkill(c.Context(), candidateID, usecase.TrackSkillInput{
		SkillName:    req.SkillName,
		Category:     req.Category,
		InitialScore: req.InitialScore,
		TargetScore:  req.TargetScore,
	})
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, toCandidateSkillResponse(created))
}

func (h *SkillHandler) SetTarget(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	skillID, err := uuid.Parse(c.Params("skillID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req targetScoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetTargetScore(c.Context(), candidateID, skillID, req.TargetScore); err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SkillHandler) Override(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidateID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	skillID, err := uuid.Parse(c.Params("skillID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req overrideScoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.OverrideScore(c.Context(), candidateID, skillID, req.Score)
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toCandidateSkillResponse(updated))
}

func mapSkillUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrScoreOutOfRange):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Score out of range", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrSkillAlreadyTracked):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already tracked", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
