package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"coachline.com/backoffice/pg/model"
)

// cost travels as text so the decimal keeps its exact scale.
const maintenanceColumns = `id, bus_id, description, cost::text, status, performed_at, created_by, created_at, updated_at`

func scanMaintenance(row pgx.Row) (*model.MaintenanceRecord, error) {
	record := &model.MaintenanceRecord{}
	var cost string
	err := row.Scan(
		&record.ID, &record.BusID, &record.Description, &cost, &record.Status,
		&record.PerformedAt, &record.CreatedBy, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.Cost, err = decimal.NewFromString(cost)
	if err != nil {
		return nil, fmt.Errorf("parse cost %q: %w", cost, err)
	}
	return record, nil
}

func (p *PostgresDB) ListMaintenance(ctx context.Context) ([]model.MaintenanceRecord, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_record ORDER BY performed_at DESC`)
	if err != nil {
		return nil, mapError("list maintenance", err)
	}
	defer rows.Close()

	records := []model.MaintenanceRecord{}
	for rows.Next() {
		record, err := scanMaintenance(rows)
		if err != nil {
			return nil, mapError("scan maintenance", err)
		}
		records = append(records, *record)
	}
	return records, mapError("list maintenance", rows.Err())
}

func (p *PostgresDB) GetMaintenance(ctx context.Context, id uuid.UUID) (*model.MaintenanceRecord, error) {
	record, err := scanMaintenance(p.pool.QueryRow(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance_record WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("get maintenance", err)
	}
	return record, nil
}

func (p *PostgresDB) CreateMaintenance(ctx context.Context, record *model.MaintenanceRecord) error {
	query := `
		INSERT INTO maintenance_record (id, bus_id, description, cost, status, performed_at, created_by)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := p.pool.QueryRow(ctx, query,
		record.ID, record.BusID, record.Description, record.Cost.String(),
		record.Status, record.PerformedAt, record.CreatedBy,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	return mapError("create maintenance", err)
}

func (p *PostgresDB) UpdateMaintenance(ctx context.Context, record *model.MaintenanceRecord) error {
	query := `
		UPDATE maintenance_record
		SET bus_id = $2, description = $3, cost = $4::numeric, status = $5, performed_at = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING created_by, created_at, updated_at`

	err := p.pool.QueryRow(ctx, query,
		record.ID, record.BusID, record.Description, record.Cost.String(), record.Status, record.PerformedAt,
	).Scan(&record.CreatedBy, &record.CreatedAt, &record.UpdatedAt)
	return mapError("update maintenance", err)
}

func (p *PostgresDB) DeleteMaintenance(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM maintenance_record WHERE id = $1`, id)
	return expectOne("delete maintenance", tag, err)
}
