package repository

import (
	"context"
	"errors"

	"talent-match/internal/database"
	"talent-match/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRoleNotFound = errors.New("job role not found")

type JobRoleRepository interface {
	Create(ctx context.Context, role job.Role) (job.Role, error)
	FindByID(ctx context.Context, id uuid.UUID) (job.Role, error)
	ListRoles(ctx context.Context) ([]job.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresJobRoleRepository struct {
	db database.DB
}

func NewPostgresJobRoleRepository(db database.DB) *PostgresJobRoleRepository {
	return &PostgresJobRoleRepository{db: db}
}

// Create inserts the role and its requirements atomically.
func (r *PostgresJobRoleRepository) Create(ctx context.Context, role job.Role) (job.Role, error) {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return job.Role{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx,
		`INSERT INTO job_roles (id, title, company, location, salary_range, posted_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		role.ID, role.Title, role.Company, role.Location, role.SalaryRange, role.PostedAt,
	); err != nil {
		return job.Role{}, err
	}

	for _, req := range role.Requirements {
		var skillID any
		if req.SkillID != uuid.Nil {
			skillID = req.SkillID
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_role_requirements (id, role_id, skill_id, skill_name, weight, min_score)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), role.ID, skillID, req.Name, req.Weight, req.MinScore,
		); err != nil {
			return job.Role{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return job.Role{}, err
	}
	return r.FindByID(ctx, role.ID)
}

func (r *PostgresJobRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Role, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, company, location, salary_range, posted_at FROM job_roles WHERE id = $1`,
		id,
	)

	var role job.Role
	if err := row.Scan(&role.ID, &role.Title, &role.Company, &role.Location, &role.SalaryRange, &role.PostedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Role{}, ErrRoleNotFound
		}
		return job.Role{}, err
	}

	reqs, err := r.findRequirements(ctx, id)
	if err != nil {
		return job.Role{}, err
	}
	role.Requirements = reqs
	return role, nil
}

func (r *PostgresJobRoleRepository) ListRoles(ctx context.Context) ([]job.Role, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, location, salary_range, posted_at
		 FROM job_roles
		 ORDER BY posted_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]job.Role, 0)
	for rows.Next() {
		var role job.Role
		if err := rows.Scan(&role.ID, &role.Title, &role.Company, &role.Location, &role.SalaryRange, &role.PostedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range roles {
		reqs, err := r.findRequirements(ctx, roles[i].ID)
		if err != nil {
			return nil, err
		}
		roles[i].Requirements = reqs
	}
	return roles, nil
}

// Delete removes the role; requirements and applications cascade via the
// schema's foreign keys.
func (r *PostgresJobRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM job_roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRoleNotFound
	}
	return nil
}

func (r *PostgresJobRoleRepository) findRequirements(ctx context.Context, roleID uuid.UUID) ([]job.Requirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(skill_id, '00000000-0000-0000-0000-000000000000'::uuid), skill_name, weight, min_score
		 FROM job_role_requirements
		 WHERE role_id = $1
		 ORDER BY weight DESC, skill_name ASC`,
		roleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := make([]job.Requirement, 0)
	for rows.Next() {
		var req job.Requirement
		if err := rows.Scan(&req.SkillID, &req.Name, &req.Weight, &req.MinScore); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
