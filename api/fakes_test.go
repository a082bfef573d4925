package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"coachline.com/backoffice/pg/model"
)

// memStore is an in-memory implementation of every store interface.
type memStore struct {
	mu          sync.Mutex
	jobs        map[uuid.UUID]model.Job
	maintenance map[uuid.UUID]model.MaintenanceRecord
	permissions map[int64]model.Permission
	roles       map[int64]model.Role
	nextID      int64
	mutations   int
	failWith    error
}

func newMemStore() *memStore {
	return &memStore{
		jobs:        map[uuid.UUID]model.Job{},
		maintenance: map[uuid.UUID]model.MaintenanceRecord{},
		permissions: map[int64]model.Permission{},
		roles:       map[int64]model.Role{1: {ID: 1, Name: "Administrator", Permissions: []model.Permission{}}},
		nextID:      100,
	}
}

func (s *memStore) mutated() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutations
}

func (s *memStore) ListJobs(context.Context) ([]model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	jobs := []model.Job{}
	for _, j := range s.jobs {
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func (s *memStore) GetJob(_ context.Context, id uuid.UUID) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &j, nil
}

func (s *memStore) CreateJob(_ context.Context, job *model.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	s.jobs[job.ID] = *job
	return nil
}

func (s *memStore) UpdateJob(_ context.Context, job *model.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	existing, ok := s.jobs[job.ID]
	if !ok {
		return model.ErrNotFound
	}
	job.CreatedBy = existing.CreatedBy
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()
	s.jobs[job.ID] = *job
	return nil
}

func (s *memStore) DeleteJob(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	if _, ok := s.jobs[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}

func (s *memStore) ListMaintenance(context.Context) ([]model.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := []model.MaintenanceRecord{}
	for _, r := range s.maintenance {
		records = append(records, r)
	}
	return records, nil
}

func (s *memStore) GetMaintenance(_ context.Context, id uuid.UUID) (*model.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.maintenance[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &r, nil
}

func (s *memStore) CreateMaintenance(_ context.Context, record *model.MaintenanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	s.maintenance[record.ID] = *record
	return nil
}

func (s *memStore) UpdateMaintenance(_ context.Context, record *model.MaintenanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	existing, ok := s.maintenance[record.ID]
	if !ok {
		return model.ErrNotFound
	}
	record.CreatedBy = existing.CreatedBy
	s.maintenance[record.ID] = *record
	return nil
}

func (s *memStore) DeleteMaintenance(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	if _, ok := s.maintenance[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.maintenance, id)
	return nil
}

func (s *memStore) ListPermissions(context.Context) ([]model.Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	perms := []model.Permission{}
	for _, p := range s.permissions {
		perms = append(perms, p)
	}
	return perms, nil
}

func (s *memStore) GetPermission(_ context.Context, id int64) (*model.Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.permissions[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &p, nil
}

func (s *memStore) CreatePermission(_ context.Context, perm *model.Permission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	for _, p := range s.permissions {
		if p.Name == perm.Name {
			return model.ErrConflict
		}
	}
	s.nextID++
	perm.ID = s.nextID
	s.permissions[perm.ID] = *perm
	return nil
}

func (s *memStore) UpdatePermission(_ context.Context, perm *model.Permission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	if _, ok := s.permissions[perm.ID]; !ok {
		return model.ErrNotFound
	}
	s.permissions[perm.ID] = *perm
	return nil
}

func (s *memStore) DeletePermission(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	if _, ok := s.permissions[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.permissions, id)
	return nil
}

func (s *memStore) ListRoles(context.Context) ([]model.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roles := []model.Role{}
	for _, r := range s.roles {
		roles = append(roles, r)
	}
	return roles, nil
}

func (s *memStore) GetRole(_ context.Context, id int64) (*model.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.roles[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &r, nil
}

func (s *memStore) CreateRole(_ context.Context, role *model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	s.nextID++
	role.ID = s.nextID
	role.Permissions = []model.Permission{}
	s.roles[role.ID] = *role
	return nil
}

func (s *memStore) UpdateRole(_ context.Context, role *model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	existing, ok := s.roles[role.ID]
	if !ok {
		return model.ErrNotFound
	}
	existing.Name = role.Name
	existing.Description = role.Description
	s.roles[role.ID] = existing
	return nil
}

func (s *memStore) DeleteRole(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	if _, ok := s.roles[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.roles, id)
	return nil
}

func (s *memStore) AssignPermission(_ context.Context, roleID, permissionID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	role, ok := s.roles[roleID]
	if !ok {
		return model.ErrNotFound
	}
	perm, ok := s.permissions[permissionID]
	if !ok {
		return model.ErrNotFound
	}
	for _, p := range role.Permissions {
		if p.ID == permissionID {
			return nil
		}
	}
	role.Permissions = append(role.Permissions, perm)
	s.roles[roleID] = role
	return nil
}

func (s *memStore) RevokePermission(_ context.Context, roleID, permissionID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
	role, ok := s.roles[roleID]
	if !ok {
		return model.ErrNotFound
	}
	for i, p := range role.Permissions {
		if p.ID == permissionID {
			role.Permissions = append(role.Permissions[:i], role.Permissions[i+1:]...)
			s.roles[roleID] = role
			return nil
		}
	}
	return model.ErrNotFound
}
