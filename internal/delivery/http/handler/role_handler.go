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

type RoleHandler struct {
	uc usecase.RoleUsecase
}

type requirementRequest struct {
	SkillName string `json:"skill_name"`
	Weight    int    `json:"weight"`
	MinScore  int    `json:"min_score"`
}

type createRoleRequest struct {
	Title        string               `json:"title"`
	Company      string               `json:"company"`
	Location     string               `json:"location"`
	SalaryRange  string               `json:"salary_range"`
	Requirements []requirementRequest `json:"requirements"`
}

func NewRoleHandler(uc usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// RegisterRoutes mounts the read-only role routes.
func (h *RoleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:roleID", h.Get)
}

// RegisterRecruiterRoutes mounts create and delete for recruiters.
func (h *RoleHandler) RegisterRecruiterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Delete("/:roleID", h.Delete)
}

func (h *RoleHandler) Create(c fiber.Ctx) error {
	var req createRoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.CreateRoleInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
	}
	for _, r := range req.Requirements {
		in.Requirements = append(in.Requirements, usecase.RequirementInput{
			SkillName: r.SkillName,
			Weight:    r.Weight,
			MinScore:  r.MinScore,
		})
	}

	created, err := h.uc.CreateRole(c.Context(), in)
	if err != nil {
		return mapRoleUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, toRoleResponse(created))
}

func (h *RoleHandler) List(c fiber.Ctx) error {
	roles, err := h.uc.ListRoles(c.Context(), c.Query("q"))
	if err != nil {
		return mapRoleUsecaseError(err)
	}

	res := make([]dto.RoleResponse, 0, len(roles))
	for _, role := range roles {
		res = append(res, toRoleResponse(role))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *RoleHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roleID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	role, err := h.uc.GetRole(c.Context(), id)
	if err != nil {
		return mapRoleUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toRoleResponse(role))
}

func (h *RoleHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("roleID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteRole(c.Context(), id); err != nil {
		return mapRoleUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapRoleUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidRoleWeights):
		return middleware.NewAppError(fiber.StatusBadRequest, "Requirement weights must sum to 100", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
