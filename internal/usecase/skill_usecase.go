package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"talent-match/internal/domain/scoring"
	"talent-match/internal/domain/skill"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

// SkillProfile is a candidate's tracked skills with the readiness index
// computed over them.
type SkillProfile struct {
	Skills         []skill.CandidateSkill
	ReadinessIndex int
}

// TrackSkillInput registers one skill on a candidate's profile. The
// initial score is an unverified estimate (resume parsing or self
// report), so the record starts pending until an assessment confirms it.
type TrackSkillInput struct {
	SkillName    string
	Category     string
	InitialScore int
	TargetScore  int
}

type SkillUsecase interface {
	ListCatalog(ctx context.Context) ([]skill.Skill, error)
	Profile(ctx context.Context, candidateID uuid.UUID) (SkillProfile, error)
	TrackSkill(ctx context.Context, candidateID uuid.UUID, in TrackSkillInput) (skill.CandidateSkill, error)
	SetTargetScore(ctx context.Context, candidateID, skillID uuid.UUID, target int) error
	OverrideScore(ctx context.Context, candidateID, skillID uuid.UUID, score int) (skill.CandidateSkill, error)
}

type Skills struct {
	catalog repository.SkillRepository
	skills  repository.CandidateSkillRepository
	ranks   *RankCache
	log     *log.Logger
	now     func() time.Time
}

func NewSkillUsecase(catalog repository.SkillRepository, skills repository.CandidateSkillRepository, ranks *RankCache, logger *log.Logger) *Skills {
	if logger == nil {
		logger = log.Default()
	}
	return &Skills{catalog: catalog, skills: skills, ranks: ranks, log: logger, now: time.Now}
}

func (u *Skills) ListCatalog(ctx context.Context) ([]skill.Skill, error) {
	out, err := u.catalog.GetAllSkills(ctx)
	if err != nil {
		u.log.Printf("skill_usecase op=list_catalog status=error err=%v", err)
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Skills) Profile(ctx context.Context, candidateID uuid.UUID) (SkillProfile, error) {
	records, err := u.skills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		u.log.Printf("skill_usecase op=profile candidate=%s status=error err=%v", candidateID, err)
		return SkillProfile{}, ErrInternal
	}

	readiness, err := scoring.ReadinessIndex(toEngineSkills(records))
	if err != nil {
		u.log.Printf("skill_usecase op=readiness candidate=%s status=error err=%v", candidateID, err)
		return SkillProfile{}, ErrInternal
	}
	return SkillProfile{Skills: records, ReadinessIndex: readiness}, nil
}

// TrackSkill adds a catalog skill to the candidate's profile, creating
// the catalog entry on first use. Tracking the same skill twice fails.
func (u *Skills) TrackSkill(ctx context.Context, candidateID uuid.UUID, in TrackSkillInput) (skill.CandidateSkill, error) {
	if in.SkillName == "" {
		return skill.CandidateSkill{}, ErrInvalidInput
	}
	if in.InitialScore < 0 || in.InitialScore > scoring.MaxScale {
		return skill.CandidateSkill{}, ErrScoreOutOfRange
	}
	if in.TargetScore < 0 || in.TargetScore > scoring.MaxScale {
		return skill.CandidateSkill{}, ErrScoreOutOfRange
	}

	cat, err := u.catalog.GetSkillByName(ctx, in.SkillName)
	if errors.Is(err, repository.ErrSkillNotFound) {
		cat, err = u.catalog.CreateSkill(ctx, in.SkillName, in.Category)
	}
	if err != nil {
		u.log.Printf("skill_usecase op=track_skill skill=%q status=error err=%v", in.SkillName, err)
		return skill.CandidateSkill{}, ErrInternal
	}

	if _, err := u.skills.FindByCandidateAndSkill(ctx, candidateID, cat.ID); err == nil {
		return skill.CandidateSkill{}, ErrSkillAlreadyTracked
	} else if !errors.Is(err, repository.ErrCandidateSkillNotFound) {
		u.log.Printf("skill_usecase op=track_skill skill=%q status=error err=%v", in.SkillName, err)
		return skill.CandidateSkill{}, ErrInternal
	}

	created, err := u.skills.Create(ctx, skill.CandidateSkill{
		CandidateID: candidateID,
		SkillID:     cat.ID,
		Score:       in.InitialScore,
		MaxScore:    scoring.MaxScale,
		TargetScore: in.TargetScore,
		Status:      skill.StatusPending,
	})
	if err != nil {
		u.log.Printf("skill_usecase op=track_skill skill=%q status=error err=%v", in.SkillName, err)
		return skill.CandidateSkill{}, ErrInternal
	}

	u.ranks.Invalidate(ctx, candidateID)
	return created, nil
}

func (u *Skills) SetTargetScore(ctx context.Context, candidateID, skillID uuid.UUID, target int) error {
	if target < 0 || target > scoring.MaxScale {
		return ErrScoreOutOfRange
	}
	err := u.skills.UpdateTargetScore(ctx, candidateID, skillID, target)
	if errors.Is(err, repository.ErrCandidateSkillNotFound) {
		return ErrSkillNotFound
	}
	if err != nil {
		u.log.Printf("skill_usecase op=set_target candidate=%s status=error err=%v", candidateID, err)
		return ErrInternal
	}
	return nil
}

// OverrideScore replaces a skill's score directly, bypassing assessments.
// The write still goes through the locked update path so it cannot
// interleave with a concurrent quiz or event outcome.
func (u *Skills) OverrideScore(ctx context.Context, candidateID, skillID uuid.UUID, score int) (skill.CandidateSkill, error) {
	if score < 0 || score > scoring.MaxScale {
		return skill.CandidateSkill{}, ErrScoreOutOfRange
	}

	var out skill.CandidateSkill
	_, err := u.skills.UpdateScores(ctx, candidateID, func(records []skill.CandidateSkill) ([]skill.CandidateSkill, error) {
		for i := range records {
			if records[i].SkillID != skillID {
				continue
			}
			records[i].Score = score
			out = records[i]
			return records, nil
		}
		return nil, ErrSkillNotFound
	})
	if errors.Is(err, ErrSkillNotFound) {
		return skill.CandidateSkill{}, ErrSkillNotFound
	}
	if err != nil {
		u.log.Printf("skill_usecase op=override_score candidate=%s status=error err=%v", candidateID, err)
		return skill.CandidateSkill{}, ErrInternal
	}

	u.ranks.Invalidate(ctx, candidateID)
	return out, nil
}
