package usecase

import (
	"context"
	"errors"
	"log"

	"talent-match/internal/domain/scoring"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type GapUsecase interface {
	GapsForRole(ctx context.Context, candidateID, roleID uuid.UUID) ([]scoring.SkillGap, error)
	TargetGaps(ctx context.Context, candidateID uuid.UUID) ([]scoring.SkillGap, error)
}

type Gaps struct {
	roles  repository.JobRoleRepository
	skills repository.CandidateSkillRepository
	log    *log.Logger
}

func NewGapUsecase(roles repository.JobRoleRepository, skills repository.CandidateSkillRepository, logger *log.Logger) *Gaps {
	if logger == nil {
		logger = log.Default()
	}
	return &Gaps{roles: roles, skills: skills, log: logger}
}

// GapsForRole lists the skills still below a role's requirement floors,
// largest shortfall first. A skill the candidate does not track at all
// counts from zero.
func (u *Gaps) GapsForRole(ctx context.Context, candidateID, roleID uuid.UUID) ([]scoring.SkillGap, error) {
	role, err := u.roles.FindByID(ctx, roleID)
	if errors.Is(err, repository.ErrRoleNotFound) {
		return nil, ErrRoleNotFound
	}
	if err != nil {
		u.log.Printf("gap_usecase op=role_gaps role=%s status=error err=%v", roleID, err)
		return nil, ErrInternal
	}

	records, err := u.skills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		u.log.Printf("gap_usecase op=role_gaps candidate=%s status=error err=%v", candidateID, err)
		return nil, ErrInternal
	}

	return scoring.ComputeSkillGaps(toEngineSkills(records), toEngineRequirements(role.Requirements)), nil
}

// TargetGaps lists the skills still short of the candidate's own target
// scores.
func (u *Gaps) TargetGaps(ctx context.Context, candidateID uuid.UUID) ([]scoring.SkillGap, error) {
	records, err := u.skills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		u.log.Printf("gap_usecase op=target_gaps candidate=%s status=error err=%v", candidateID, err)
		return nil, ErrInternal
	}
	return scoring.TargetGaps(toEngineSkills(records)), nil
}
