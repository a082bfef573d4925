package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"coachline.com/backoffice/pg/model"
)

const roleQuery = `
	SELECT r.id, r.name, r.description, p.id, p.name, p.description
	FROM role r
	LEFT JOIN role_permission rp ON rp.role_id = r.id
	LEFT JOIN permission p ON p.id = rp.permission_id`

// collectRoles folds the role/permission join into roles, keeping row order.
func collectRoles(rows pgx.Rows) ([]model.Role, error) {
	defer rows.Close()

	roles := []model.Role{}
	index := map[int64]int{}
	for rows.Next() {
		var role model.Role
		var permID *int64
		var permName, permDescription *string
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &permID, &permName, &permDescription); err != nil {
			return nil, err
		}

		i, seen := index[role.ID]
		if !seen {
			role.Permissions = []model.Permission{}
			roles = append(roles, role)
			i = len(roles) - 1
			index[role.ID] = i
		}
		if permID != nil {
			roles[i].Permissions = append(roles[i].Permissions, model.Permission{
				ID:          *permID,
				Name:        derefString(permName),
				Description: derefString(permDescription),
			})
		}
	}
	return roles, rows.Err()
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (p *PostgresDB) ListRoles(ctx context.Context) ([]model.Role, error) {
	rows, err := p.pool.Query(ctx, roleQuery+` ORDER BY r.id, p.name`)
	if err != nil {
		return nil, mapError("list roles", err)
	}
	roles, err := collectRoles(rows)
	return roles, mapError("list roles", err)
}

func (p *PostgresDB) GetRole(ctx context.Context, id int64) (*model.Role, error) {
	rows, err := p.pool.Query(ctx, roleQuery+` WHERE r.id = $1 ORDER BY p.name`, id)
	if err != nil {
		return nil, mapError("get role", err)
	}
	roles, err := collectRoles(rows)
	if err != nil {
		return nil, mapError("get role", err)
	}
	if len(roles) == 0 {
		return nil, mapError("get role", pgx.ErrNoRows)
	}
	return &roles[0], nil
}

func (p *PostgresDB) CreateRole(ctx context.Context, role *model.Role) error {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO role (name, description) VALUES ($1, $2) RETURNING id`,
		role.Name, role.Description,
	).Scan(&role.ID)
	if err == nil && role.Permissions == nil {
		role.Permissions = []model.Permission{}
	}
	return mapError("create role", err)
}

func (p *PostgresDB) UpdateRole(ctx context.Context, role *model.Role) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE role SET name = $2, description = $3 WHERE id = $1`,
		role.ID, role.Name, role.Description)
	return expectOne("update role", tag, err)
}

func (p *PostgresDB) DeleteRole(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM role WHERE id = $1`, id)
	return expectOne("delete role", tag, err)
}

// AssignPermission is idempotent; unknown ids surface as ErrNotFound.
func (p *PostgresDB) AssignPermission(ctx context.Context, roleID, permissionID int64) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO role_permission (role_id, permission_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		roleID, permissionID)
	return mapError("assign permission", err)
}

func (p *PostgresDB) RevokePermission(ctx context.Context, roleID, permissionID int64) error {
	tag, err := p.pool.Exec(ctx,
		`DELETE FROM role_permission WHERE role_id = $1 AND permission_id = $2`,
		roleID, permissionID)
	return expectOne("revoke permission", tag, err)
}
