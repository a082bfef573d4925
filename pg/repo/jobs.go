package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"coachline.com/backoffice/pg/model"
)

const jobColumns = `id, title, description, location, employment_type, is_active, created_by, created_at, updated_at`

func scanJob(row pgx.Row) (*model.Job, error) {
	job := &model.Job{}
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, &job.Location, &job.EmploymentType,
		&job.IsActive, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
	)
	return job, err
}

func (p *PostgresDB) ListJobs(ctx context.Context) ([]model.Job, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+jobColumns+` FROM job ORDER BY created_at DESC`)
	if err != nil {
		return nil, mapError("list jobs", err)
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, mapError("scan job", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, mapError("list jobs", rows.Err())
}

func (p *PostgresDB) GetJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := scanJob(p.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM job WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("get job", err)
	}
	return job, nil
}

func (p *PostgresDB) CreateJob(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO job (id, title, description, location, employment_type, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := p.pool.QueryRow(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.EmploymentType, job.IsActive, job.CreatedBy,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	return mapError("create job", err)
}

func (p *PostgresDB) UpdateJob(ctx context.Context, job *model.Job) error {
	query := `
		UPDATE job
		SET title = $2, description = $3, location = $4, employment_type = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING created_by, created_at, updated_at`

	err := p.pool.QueryRow(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.EmploymentType, job.IsActive,
	).Scan(&job.CreatedBy, &job.CreatedAt, &job.UpdatedAt)
	return mapError("update job", err)
}

func (p *PostgresDB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM job WHERE id = $1`, id)
	return expectOne("delete job", tag, err)
}
