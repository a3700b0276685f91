package repository

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateSkillNotFound = errors.New("candidate skill not found")

const candidateSkillColumns = `cs.id, cs.candidate_id, cs.skill_id, s.name, s.category,
	cs.score, cs.max_score, cs.target_score, cs.assessed_at, cs.status`

// CandidateSkillRepository stores one candidate's skill records. Score
// writes go through UpdateScores, which locks the rows inside a
// transaction so two score-affecting actions cannot interleave.
type CandidateSkillRepository interface {
	FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]skill.CandidateSkill, error)
	FindByCandidateAndSkill(ctx context.Context, candidateID, skillID uuid.UUID) (skill.CandidateSkill, error)
	Create(ctx context.Context, cs skill.CandidateSkill) (skill.CandidateSkill, error)
	UpdateTargetScore(ctx context.Context, candidateID, skillID uuid.UUID, target int) error
	UpdateScores(ctx context.Context, candidateID uuid.UUID, update func([]skill.CandidateSkill) ([]skill.CandidateSkill, error)) ([]skill.CandidateSkill, error)
}

type PostgresCandidateSkillRepository struct {
	db database.DB
}

func NewPostgresCandidateSkillRepository(db database.DB) *PostgresCandidateSkillRepository {
	return &PostgresCandidateSkillRepository{db: db}
}

func (r *PostgresCandidateSkillRepository) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]skill.CandidateSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateSkillColumns+`
		 FROM candidate_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.candidate_id = $1
		 ORDER BY s.name ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidateSkills(rows)
}

func (r *PostgresCandidateSkillRepository) FindByCandidateAndSkill(ctx context.Context, candidateID, skillID uuid.UUID) (skill.CandidateSkill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateSkillColumns+`
		 FROM candidate_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.candidate_id = $1 AND cs.skill_id = $2`,
		candidateID, skillID,
	)

	var cs skill.CandidateSkill
	if err := scanCandidateSkill(row, &cs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.CandidateSkill{}, ErrCandidateSkillNotFound
		}
		return skill.CandidateSkill{}, err
	}
	return cs, nil
}

func (r *PostgresCandidateSkillRepository) Create(ctx context.Context, cs skill.CandidateSkill) (skill.CandidateSkill, error) {
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidate_skills (id, candidate_id, skill_id, score, max_score, target_score, status, assessed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		cs.ID, cs.CandidateID, cs.SkillID, cs.Score, cs.MaxScore, cs.TargetScore, cs.Status, cs.AssessedAt,
	)
	if err != nil {
		return skill.CandidateSkill{}, err
	}
	return r.FindByCandidateAndSkill(ctx, cs.CandidateID, cs.SkillID)
}

func (r *PostgresCandidateSkillRepository) UpdateTargetScore(ctx context.Context, candidateID, skillID uuid.UUID, target int) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE candidate_skills SET target_score = $1 WHERE candidate_id = $2 AND skill_id = $3`,
		target, candidateID, skillID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCandidateSkillNotFound
	}
	return nil
}

// UpdateScores loads the candidate's skills with FOR UPDATE row locks,
// lets the callback compute new records, and persists score, status and
// assessed_at for every changed row in the same transaction.
func (r *PostgresCandidateSkillRepository) UpdateScores(ctx context.Context, candidateID uuid.UUID, update func([]skill.CandidateSkill) ([]skill.CandidateSkill, error)) ([]skill.CandidateSkill, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	rows, err := tx.Query(ctx,
		`SELECT `+candidateSkillColumns+`
		 FROM candidate_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.candidate_id = $1
		 ORDER BY s.name ASC
		 FOR UPDATE OF cs`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	current, err := scanCandidateSkills(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	updated, err := update(current)
	if err != nil {
		return nil, err
	}

	prev := make(map[uuid.UUID]skill.CandidateSkill, len(current))
	for _, cs := range current {
		prev[cs.ID] = cs
	}
	for _, cs := range updated {
		old, ok := prev[cs.ID]
		if !ok || old == cs {
			continue
		}
		if _, err := tx.Exec(ctx,
			`UPDATE candidate_skills SET score = $1, status = $2, assessed_at = $3 WHERE id = $4`,
			cs.Score, cs.Status, cs.AssessedAt, cs.ID,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func scanCandidateSkills(rows database.Rows) ([]skill.CandidateSkill, error) {
	out := make([]skill.CandidateSkill, 0)
	for rows.Next() {
		var cs skill.CandidateSkill
		var assessedAt *time.Time
		if err := rows.Scan(&cs.ID, &cs.CandidateID, &cs.SkillID, &cs.Name, &cs.Category,
			&cs.Score, &cs.MaxScore, &cs.TargetScore, &assessedAt, &cs.Status); err != nil {
			return nil, err
		}
		cs.AssessedAt = assessedAt
		out = append(out, cs)
	}
	return out, rows.Err()
}

func scanCandidateSkill(row database.Row, cs *skill.CandidateSkill) error {
	var assessedAt *time.Time
	if err := row.Scan(&cs.ID, &cs.CandidateID, &cs.SkillID, &cs.Name, &cs.Category,
		&cs.Score, &cs.MaxScore, &cs.TargetScore, &assessedAt, &cs.Status); err != nil {
		return err
	}
	cs.AssessedAt = assessedAt
	return nil
}
