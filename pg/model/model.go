package model

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned for unique violations and protected rows.
	ErrConflict = errors.New("conflict")
)

// AdminRoleID is the administrator role; it cannot be deleted.
const AdminRoleID int64 = 1

// Job is a vacancy posted by the operator.
type Job struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"` // full_time, part_time, contract
	IsActive       bool      `json:"is_active"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MaintenanceRecord is one service performed on a bus.
type MaintenanceRecord struct {
	ID          uuid.UUID       `json:"id"`
	BusID       string          `json:"bus_id"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Status      string          `json:"status"` // scheduled, in_progress, completed
	PerformedAt time.Time       `json:"performed_at"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Permission is a named capability that can be granted through roles.
type Permission struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Role groups permissions.
type Role struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
}

type JobStore interface {
	ListJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*Job, error)
	CreateJob(ctx context.Context, job *Job) error
	UpdateJob(ctx context.Context, job *Job) error
	DeleteJob(ctx context.Context, id uuid.UUID) error
}

type MaintenanceStore interface {
	ListMaintenance(ctx context.Context) ([]MaintenanceRecord, error)
	GetMaintenance(ctx context.Context, id uuid.UUID) (*MaintenanceRecord, error)
	CreateMaintenance(ctx context.Context, record *MaintenanceRecord) error
	UpdateMaintenance(ctx context.Context, record *MaintenanceRecord) error
	DeleteMaintenance(ctx context.Context, id uuid.UUID) error
}

type PermissionStore interface {
	ListPermissions(ctx context.Context) ([]Permission, error)
	GetPermission(ctx context.Context, id int64) (*Permission, error)
	CreatePermission(ctx context.Context, permission *Permission) error
	UpdatePermission(ctx context.Context, permission *Permission) error
	DeletePermission(ctx context.Context, id int64) error
}

type RoleStore interface {
	ListRoles(ctx context.Context) ([]Role, error)
	GetRole(ctx context.Context, id int64) (*Role, error)
	CreateRole(ctx context.Context, role *Role) error
	UpdateRole(ctx context.Context, role *Role) error
	DeleteRole(ctx context.Context, id int64) error
	AssignPermission(ctx context.Context, roleID, permissionID int64) error
	RevokePermission(ctx context.Context, roleID, permissionID int64) error
}
