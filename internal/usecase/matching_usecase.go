package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"talent-match/internal/domain/application"
	"talent-match/internal/domain/scoring"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

// MatchResult is one role scored against a candidate's current profile.
type MatchResult struct {
	RoleID          uuid.UUID `json:"role_id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	PostedAt        time.Time `json:"posted_at"`
	MatchPercentage int       `json:"match_percentage"`
	Eligible        bool      `json:"eligible"`
}

// Notifier delivers application events to connected candidates. Delivery
// is best effort; the application row is the durable record.
type Notifier interface {
	ApplicationCreated(app application.Application, roleTitle string)
}

type MatchingUsecase interface {
	RankRoles(ctx context.Context, candidateID uuid.UUID) ([]MatchResult, error)
	MatchForRole(ctx context.Context, candidateID, roleID uuid.UUID) (MatchResult, error)
	NotifyEligible(ctx context.Context, candidateID, roleID uuid.UUID) (application.Application, bool, error)
	Apply(ctx context.Context, candidateID, roleID uuid.UUID) (application.Application, error)
	Respond(ctx context.Context, applicationID uuid.UUID, status string) (application.Application, error)
	CandidateApplications(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error)
	RoleApplications(ctx context.Context, roleID uuid.UUID) ([]application.Application, error)
}

type Matching struct {
	roles     repository.JobRoleRepository
	skills    repository.CandidateSkillRepository
	apps      repository.ApplicationRepository
	ranks     *RankCache
	notifier  Notifier
	threshold int
	log       *log.Logger
	now       func() time.Time
}

func NewMatchingUsecase(
	roles repository.JobRoleRepository,
	skills repository.CandidateSkillRepository,
	apps repository.ApplicationRepository,
	ranks *RankCache,
	notifier Notifier,
	threshold int,
	logger *log.Logger,
) *Matching {
	if logger == nil {
		logger = log.Default()
	}
	return &Matching{
		roles:     roles,
		skills:    skills,
		apps:      apps,
		ranks:     ranks,
		notifier:  notifier,
		threshold: threshold,
		log:       logger,
		now:       time.Now,
	}
}

// RankRoles scores every open role against the candidate and returns
// them best match first; equal matches are broken by earliest posting.
// The ranking is cached per candidate until the next skill write.
func (u *Matching) RankRoles(ctx context.Context, candidateID uuid.UUID) ([]MatchResult, error) {
	if cached, ok := u.ranks.Get(ctx, candidateID); ok {
		return cached, nil
	}

	records, err := u.skills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		u.log.Printf("matching_usecase op=rank candidate=%s status=error err=%v", candidateID, err)
		return nil, ErrInternal
	}
	roles, err := u.roles.ListRoles(ctx)
	if err != nil {
		u.log.Printf("matching_usecase op=rank candidate=%s status=error err=%v", candidateID, err)
		return nil, ErrInternal
	}

	candidate := toEngineSkills(records)
	results := make([]MatchResult, 0, len(roles))
	for _, role := range roles {
		match := scoring.MatchPercentage(candidate, toEngineRequirements(role.Requirements))
		results = append(results, MatchResult{
			RoleID:          role.ID,
			Title:           role.Title,
			Company:         role.Company,
			Location:        role.Location,
			PostedAt:        role.PostedAt,
			MatchPercentage: match,
			Eligible:        match >= u.threshold,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchPercentage != results[j].MatchPercentage {
			return results[i].MatchPercentage > results[j].MatchPercentage
		}
		return results[i].PostedAt.Before(results[j].PostedAt)
	})

	u.ranks.Set(ctx, candidateID, results)
	return results, nil
}

func (u *Matching) MatchForRole(ctx context.Context, candidateID, roleID uuid.UUID) (MatchResult, error) {
	role, err := u.roles.FindByID(ctx, roleID)
	if errors.Is(err, repository.ErrRoleNotFound) {
		return MatchResult{}, ErrRoleNotFound
	}
	if err != nil {
		u.log.Printf("matching_usecase op=match role=%s status=error err=%v", roleID, err)
		return MatchResult{}, ErrInternal
	}

	records, err := u.skills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		u.log.Printf("matching_usecase op=match candidate=%s status=error err=%v", candidateID, err)
		return MatchResult{}, ErrInternal
	}

	match := scoring.MatchPercentage(toEngineSkills(records), toEngineRequirements(role.Requirements))
	return MatchResult{
		RoleID:          role.ID,
		Title:           role.Title,
		Company:         role.Company,
		Location:        role.Location,
		PostedAt:        role.PostedAt,
		MatchPercentage: match,
		Eligible:        match >= u.threshold,
	}, nil
}

// NotifyEligible creates a pending application for a candidate whose
// match meets the threshold, snapshotting the match at creation time.
// At most one pending application exists per candidate and role; a
// repeat call returns the existing record and reports created=false.
func (u *Matching) NotifyEligible(ctx context.Context, candidateID, roleID uuid.UUID) (application.Application, bool, error) {
	records, err := u.skills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		u.log.Printf("matching_usecase op=notify candidate=%s status=error err=%v", candidateID, err)
		return application.Application{}, false, ErrInternal
	}
	if len(records) == 0 {
		return application.Application{}, false, ErrSkillProfileEmpty
	}

	role, err := u.roles.FindByID(ctx, roleID)
	if errors.Is(err, repository.ErrRoleNotFound) {
		return application.Application{}, false, ErrRoleNotFound
	}
	if err != nil {
		u.log.Printf("matching_usecase op=notify role=%s status=error err=%v", roleID, err)
		return application.Application{}, false, ErrInternal
	}

	match := scoring.MatchPercentage(toEngineSkills(records), toEngineRequirements(role.Requirements))
	if match < u.threshold {
		return application.Application{}, false, ErrBelowMatchThreshold
	}

	if existing, err := u.apps.FindPending(ctx, candidateID, roleID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, repository.ErrApplicationNotFound) {
		u.log.Printf("matching_usecase op=notify candidate=%s role=%s status=error err=%v", candidateID, roleID, err)
		return application.Application{}, false, ErrInternal
	}

	created, err := u.apps.Create(ctx, application.Application{
		RoleID:          roleID,
		CandidateID:     candidateID,
		MatchPercentage: match,
		Status:          application.StatusPending,
		CreatedAt:       u.now(),
	})
	if err != nil {
		u.log.Printf("matching_usecase op=notify candidate=%s role=%s status=error err=%v", candidateID, roleID, err)
		return application.Application{}, false, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.ApplicationCreated(created, role.Title)
	}
	return created, true, nil
}

// Apply records a candidate-initiated application. The threshold does
// not apply here; the match is still snapshotted for recruiter review.
func (u *Matching) Apply(ctx context.Context, candidateID, roleID uuid.UUID) (application.Application, error) {
	role, err := u.roles.FindByID(ctx, roleID)
	if errors.Is(err, repository.ErrRoleNotFound) {
		return application.Application{}, ErrRoleNotFound
	}
	if err != nil {
		u.log.Printf("matching_usecase op=apply role=%s status=error err=%v", roleID, err)
		return application.Application{}, ErrInternal
	}

	records, err := u.skills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		u.log.Printf("matching_usecase op=apply candidate=%s status=error err=%v", candidateID, err)
		return application.Application{}, ErrInternal
	}

	created, err := u.apps.Create(ctx, application.Application{
		RoleID:          roleID,
		CandidateID:     candidateID,
		MatchPercentage: scoring.MatchPercentage(toEngineSkills(records), toEngineRequirements(role.Requirements)),
		Status:          application.StatusApplied,
		CreatedAt:       u.now(),
	})
	if err != nil {
		u.log.Printf("matching_usecase op=apply candidate=%s role=%s status=error err=%v", candidateID, roleID, err)
		return application.Application{}, ErrInternal
	}
	return created, nil
}

// Respond moves an open application to accepted or declined. Terminal
// applications cannot be reopened or flipped.
func (u *Matching) Respond(ctx context.Context, applicationID uuid.UUID, status string) (application.Application, error) {
	if status != application.StatusAccepted && status != application.StatusDeclined {
		return application.Application{}, ErrInvalidInput
	}

	app, err := u.apps.FindByID(ctx, applicationID)
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return application.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		u.log.Printf("matching_usecase op=respond application=%s status=error err=%v", applicationID, err)
		return application.Application{}, ErrInternal
	}
	if !application.CanTransition(app.Status, status) {
		return application.Application{}, ErrApplicationClosed
	}

	updated, err := u.apps.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		u.log.Printf("matching_usecase op=respond application=%s status=error err=%v", applicationID, err)
		return application.Application{}, ErrInternal
	}
	return updated, nil
}

func (u *Matching) CandidateApplications(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	out, err := u.apps.ListByCandidate(ctx, candidateID)
	if err != nil {
		u.log.Printf("matching_usecase op=list_applications candidate=%s status=error err=%v", candidateID, err)
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Matching) RoleApplications(ctx context.Context, roleID uuid.UUID) ([]application.Application, error) {
	out, err := u.apps.ListByRole(ctx, roleID)
	if err != nil {
		u.log.Printf("matching_usecase op=list_applications role=%s status=error err=%v", roleID, err)
		return nil, ErrInternal
	}
	return out, nil
}
