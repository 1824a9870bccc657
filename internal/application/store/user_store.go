package store

import (
	"context"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

// UserStore usuarios con username y email únicos.
type UserStore struct {
	*Collection[entity.User]
	w *Writer
}

func newUserStore(w *Writer) *UserStore {
	return &UserStore{Collection: newCollection[entity.User](repository.KeyUsers, &w.view, nil), w: w}
}

// Get busca un usuario por id.
func (s *UserStore) Get(id string) (entity.User, bool) {
	users := s.snapshot()
	if i := find(users, byUserID(id)); i >= 0 {
		return users[i], true
	}
	return entity.User{}, false
}

// FindByUsername busca sin distinguir mayúsculas.
func (s *UserStore) FindByUsername(username string) (entity.User, bool) {
	users := s.snapshot()
	i := find(users, func(u entity.User) bool { return entity.SameFold(u.Username, username) })
	if i < 0 {
		return entity.User{}, false
	}
	return users[i], true
}

// CreateUser crea un usuario. El username se comprueba antes que el email.
// RoleID no se valida: un rol inexistente se interpreta como "sin rol".
func (s *UserStore) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	var created entity.User
	err := s.w.Run(ctx, s.name, func(tx *Tx) error {
		if err := dto.Validate(in); err != nil {
			return err
		}
		users := s.snapshot()
		if err := checkUserUnique(users, in.Username, in.Email, ""); err != nil {
			return err
		}
		now := s.w.now()
		created = entity.User{
			ID:        s.w.newID(),
			Fullname:  in.Fullname,
			Username:  in.Username,
			Email:     in.Email,
			RoleID:    in.RoleID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return stage(tx, s.Collection, with(users, created))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser aplica los campos presentes en in y refresca UpdatedAt.
func (s *UserStore) UpdateUser(ctx context.Context, id string, in dto.UpdateUserRequest) (*entity.User, error) {
	var updated entity.User
	err := s.w.Run(ctx, s.name, func(tx *Tx) error {
		if err := dto.Validate(in); err != nil {
			return err
		}
		users := s.snapshot()
		i := find(users, byUserID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		updated = users[i]
		username, email := "", ""
		if in.Username != nil {
			username = *in.Username
		}
		if in.Email != nil {
			email = *in.Email
		}
		if err := checkUserUnique(users, username, email, id); err != nil {
			return err
		}
		if in.Fullname != nil {
			updated.Fullname = *in.Fullname
		}
		if in.Username != nil {
			updated.Username = username
		}
		if in.Email != nil {
			updated.Email = email
		}
		if in.RoleID != nil {
			updated.RoleID = *in.RoleID
		}
		updated.UpdatedAt = s.w.now()
		return stage(tx, s.Collection, replaced(users, i, updated))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser elimina un usuario salvo el administrador inicial.
func (s *UserStore) DeleteUser(ctx context.Context, id string) error {
	return s.w.Run(ctx, s.name, func(tx *Tx) error {
		users := s.snapshot()
		i := find(users, byUserID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		if users[i].Username == entity.BootstrapAdminUsername {
			return domain.ErrProtectedUser
		}
		return stage(tx, s.Collection, without(users, i))
	})
}

func byUserID(id string) func(entity.User) bool {
	return func(u entity.User) bool { return u.ID == id }
}

// checkUserUnique valores vacíos no se comprueban (campo sin cambio en un update).
func checkUserUnique(users []entity.User, username, email, exceptID string) error {
	if username != "" && find(users, func(u entity.User) bool {
		return u.ID != exceptID && entity.SameFold(u.Username, username)
	}) >= 0 {
		return domain.ErrDuplicateUsername
	}
	if email != "" && find(users, func(u entity.User) bool {
		return u.ID != exceptID && entity.SameFold(u.Email, email)
	}) >= 0 {
		return domain.ErrDuplicateEmail
	}
	return nil
}
