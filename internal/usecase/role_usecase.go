package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"talent-match/internal/domain/job"
	"talent-match/internal/repository"
	"talent-match/internal/search"

	"github.com/google/uuid"
)

type RequirementInput struct {
	SkillName string
	Weight    int
	MinScore  int
}

type CreateRoleInput struct {
	Title        string
	Company      string
	Location     string
	SalaryRange  string
	Requirements []RequirementInput
}

type RoleUsecase interface {
	CreateRole(ctx context.Context, in CreateRoleInput) (job.Role, error)
	GetRole(ctx context.Context, id uuid.UUID) (job.Role, error)
	ListRoles(ctx context.Context, query string) ([]job.Role, error)
	DeleteRole(ctx context.Context, id uuid.UUID) error
}

type Roles struct {
	roles   repository.JobRoleRepository
	catalog repository.SkillRepository
	log     *log.Logger
	now     func() time.Time
}

func NewRoleUsecase(roles repository.JobRoleRepository, catalog repository.SkillRepository, logger *log.Logger) *Roles {
	if logger == nil {
		logger = log.Default()
	}
	return &Roles{roles: roles, catalog: catalog, log: logger, now: time.Now}
}

// CreateRole validates the weight profile and stores the role. Skill
// names that exist in the catalog are linked by id; unknown names are
// kept as free text so postings never block on catalog coverage.
func (u *Roles) CreateRole(ctx context.Context, in CreateRoleInput) (job.Role, error) {
	role := job.Role{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		SalaryRange: in.SalaryRange,
		PostedAt:    u.now(),
	}
	for _, req := range in.Requirements {
		r := job.Requirement{Name: req.SkillName, Weight: req.Weight, MinScore: req.MinScore}
		if cat, err := u.catalog.GetSkillByName(ctx, req.SkillName); err == nil {
			r.SkillID = cat.ID
		} else if !errors.Is(err, repository.ErrSkillNotFound) {
			u.log.Printf("role_usecase op=create_role skill=%q status=error err=%v", req.SkillName, err)
			return job.Role{}, ErrInternal
		}
		role.Requirements = append(role.Requirements, r)
	}

	if err := role.Validate(); err != nil {
		if errors.Is(err, job.ErrInvalidWeights) {
			return job.Role{}, ErrInvalidRoleWeights
		}
		return job.Role{}, ErrInvalidInput
	}

	created, err := u.roles.Create(ctx, role)
	if err != nil {
		u.log.Printf("role_usecase op=create_role title=%q status=error err=%v", in.Title, err)
		return job.Role{}, ErrInternal
	}
	return created, nil
}

func (u *Roles) GetRole(ctx context.Context, id uuid.UUID) (job.Role, error) {
	role, err := u.roles.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRoleNotFound) {
		return job.Role{}, ErrRoleNotFound
	}
	if err != nil {
		u.log.Printf("role_usecase op=get_role role=%s status=error err=%v", id, err)
		return job.Role{}, ErrInternal
	}
	return role, nil
}

// ListRoles returns open roles, optionally filtered and ranked by a
// free-text query over title, requirements, company and location.
func (u *Roles) ListRoles(ctx context.Context, query string) ([]job.Role, error) {
	roles, err := u.roles.ListRoles(ctx)
	if err != nil {
		u.log.Printf("role_usecase op=list_roles status=error err=%v", err)
		return nil, ErrInternal
	}
	if q := search.Parse(query); q.Normalized != "" {
		roles = search.RankRoles(roles, q, u.now())
	}
	return roles, nil
}

func (u *Roles) DeleteRole(ctx context.Context, id uuid.UUID) error {
	err := u.roles.Delete(ctx, id)
	if errors.Is(err, repository.ErrRoleNotFound) {
		return ErrRoleNotFound
	}
	if err != nil {
		u.log.Printf("role_usecase op=delete_role role=%s status=error err=%v", id, err)
		return ErrInternal
	}
	return nil
}
