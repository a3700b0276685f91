package repository

import (
	"context"
	"errors"

	"talent-match/internal/database"
	"talent-match/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(ctx context.Context, app application.Application) (application.Application, error)
	FindByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	FindPending(ctx context.Context, candidateID, roleID uuid.UUID) (application.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error)
	ListByRole(ctx context.Context, roleID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (application.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// Create inserts the application. For pending notifications a partial
// unique index guards the one-open-notification-per-pair rule; on
// conflict the insert is a no-op and the existing row is returned.
func (r *PostgresApplicationRepository) Create(ctx context.Context, app application.Application) (application.Application, error) {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, role_id, candidate_id, match_percentage, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (candidate_id, role_id) WHERE status = 'pending' DO NOTHING`,
		app.ID, app.RoleID, app.CandidateID, app.MatchPercentage, app.Status, app.CreatedAt,
	)
	if err != nil {
		return application.Application{}, err
	}

	created, err := r.FindByID(ctx, app.ID)
	if err == nil {
		return created, nil
	}
	if errors.Is(err, ErrApplicationNotFound) && app.Status == application.StatusPending {
		return r.FindPending(ctx, app.CandidateID, app.RoleID)
	}
	return application.Application{}, err
}

func (r *PostgresApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, role_id, candidate_id, match_percentage, status, created_at
		 FROM applications WHERE id = $1`,
		id,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) FindPending(ctx context.Context, candidateID, roleID uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, role_id, candidate_id, match_percentage, status, created_at
		 FROM applications
		 WHERE candidate_id = $1 AND role_id = $2 AND status = 'pending'`,
		candidateID, roleID,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx,
		`SELECT id, role_id, candidate_id, match_percentage, status, created_at
		 FROM applications WHERE candidate_id = $1 ORDER BY created_at DESC`,
		candidateID)
}

func (r *PostgresApplicationRepository) ListByRole(ctx context.Context, roleID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx,
		`SELECT id, role_id, candidate_id, match_percentage, status, created_at
		 FROM applications WHERE role_id = $1 ORDER BY match_percentage DESC, created_at ASC`,
		roleID)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (application.Application, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return application.Application{}, err
	}
	if affected == 0 {
		return application.Application{}, ErrApplicationNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, arg any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var app application.Application
		if err := rows.Scan(&app.ID, &app.RoleID, &app.CandidateID, &app.MatchPercentage, &app.Status, &app.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

func scanApplication(row database.Row) (application.Application, error) {
	var app application.Application
	if err := row.Scan(&app.ID, &app.RoleID, &app.CandidateID, &app.MatchPercentage, &app.Status, &app.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return app, nil
}
