package store

import (
	"context"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

// RoleStore roles y sus permisos.
type RoleStore struct {
	*Collection[entity.Role]
	w     *Writer
	users *Collection[entity.User]
}

func newRoleStore(w *Writer, users *Collection[entity.User]) *RoleStore {
	return &RoleStore{Collection: newCollection[entity.Role](repository.KeyRoles, &w.view, entity.Role.Clone), w: w, users: users}
}

// Get busca un rol por id.
func (s *RoleStore) Get(id string) (entity.Role, bool) {
	roles := s.snapshot()
	if i := find(roles, byRoleID(id)); i >= 0 {
		return s.detach(roles[i]), true
	}
	return entity.Role{}, false
}

// CreateRole crea un rol con nombre único (sin distinguir mayúsculas).
func (s *RoleStore) CreateRole(ctx context.Context, in dto.CreateRoleRequest) (*entity.Role, error) {
	var created entity.Role
	err := s.w.Run(ctx, s.name, func(tx *Tx) error {
		if err := dto.Validate(in); err != nil {
			return err
		}
		roles := s.snapshot()
		if roleNameTaken(roles, in.Name, "") {
			return domain.ErrDuplicateName
		}
		created = entity.Role{
			ID:          s.w.newID(),
			Name:        in.Name,
			CreatedAt:   s.w.now(),
			Permissions: entity.NormalizePermissions(in.Permissions),
		}
		return stage(tx, s.Collection, with(roles, created))
	})
	if err != nil {
		return nil, err
	}
	created = s.detach(created)
	return &created, nil
}

// UpdateRole aplica los campos presentes en in. Un nombre nuevo se valida contra el resto de roles.
func (s *RoleStore) UpdateRole(ctx context.Context, id string, in dto.UpdateRoleRequest) (*entity.Role, error) {
	var updated entity.Role
	err := s.w.Run(ctx, s.name, func(tx *Tx) error {
		if err := dto.Validate(in); err != nil {
			return err
		}
		roles := s.snapshot()
		i := find(roles, byRoleID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		updated = roles[i]
		if in.Name != nil {
			if roleNameTaken(roles, *in.Name, id) {
				return domain.ErrDuplicateName
			}
			updated.Name = *in.Name
		}
		if in.Permissions != nil {
			updated.Permissions = entity.NormalizePermissions(in.Permissions)
		}
		return stage(tx, s.Collection, replaced(roles, i, updated))
	})
	if err != nil {
		return nil, err
	}
	updated = s.detach(updated)
	return &updated, nil
}

// DeleteRole elimina un rol que no sea semilla ni esté asignado a ningún usuario.
func (s *RoleStore) DeleteRole(ctx context.Context, id string) error {
	return s.w.Run(ctx, s.name, func(tx *Tx) error {
		roles := s.snapshot()
		i := find(roles, byRoleID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		if entity.IsSeedRoleName(roles[i].Name) {
			return domain.ErrProtectedRole
		}
		if n := countUsersWithRole(s.users.snapshot(), id); n > 0 {
			return &domain.RoleInUseError{Count: n}
		}
		return stage(tx, s.Collection, without(roles, i))
	})
}

func byRoleID(id string) func(entity.Role) bool {
	return func(r entity.Role) bool { return r.ID == id }
}

func roleNameTaken(roles []entity.Role, name, exceptID string) bool {
	return find(roles, func(r entity.Role) bool {
		return r.ID != exceptID && entity.SameFold(r.Name, name)
	}) >= 0
}

func countUsersWithRole(users []entity.User, roleID string) int {
	n := 0
	for _, u := range users {
		if u.RoleID == roleID {
			n++
		}
	}
	return n
}
