package repo

import (
	"context"

	"coachline.com/backoffice/pg/model"
)

func (p *PostgresDB) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, name, description FROM permission ORDER BY name`)
	if err != nil {
		return nil, mapError("list permissions", err)
	}
	defer rows.Close()

	permissions := []model.Permission{}
	for rows.Next() {
		var perm model.Permission
		if err := rows.Scan(&perm.ID, &perm.Name, &perm.Description); err != nil {
			return nil, mapError("scan permission", err)
		}
		permissions = append(permissions, perm)
	}
	return permissions, mapError("list permissions", rows.Err())
}

func (p *PostgresDB) GetPermission(ctx context.Context, id int64) (*model.Permission, error) {
	perm := &model.Permission{}
	err := p.pool.QueryRow(ctx, `SELECT id, name, description FROM permission WHERE id = $1`, id).
		Scan(&perm.ID, &perm.Name, &perm.Description)
	if err != nil {
		return nil, mapError("get permission", err)
	}
	return perm, nil
}

func (p *PostgresDB) CreatePermission(ctx context.Context, perm *model.Permission) error {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO permission (name, description) VALUES ($1, $2) RETURNING id`,
		perm.Name, perm.Description,
	).Scan(&perm.ID)
	return mapError("create permission", err)
}

func (p *PostgresDB) UpdatePermission(ctx context.Context, perm *model.Permission) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE permission SET name = $2, description = $3 WHERE id = $1`,
		perm.ID, perm.Name, perm.Description)
	return expectOne("update permission", tag, err)
}

// DeletePermission also drops the permission from every role.
func (p *PostgresDB) DeletePermission(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM permission WHERE id = $1`, id)
	return expectOne("delete permission", tag, err)
}
