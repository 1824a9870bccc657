// Package auth mantiene la sesión actual y deriva rol y permisos desde los stores.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/application/store"
	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
	"github.com/jhoicas/Inventario-admin/pkg/logger"
)

// AuthContext guarda solo el id del usuario autenticado. Usuario, rol y permisos se leen
// de los stores en cada consulta, así que nunca quedan desactualizados.
type AuthContext struct {
	mu       sync.RWMutex
	userID   string
	users    *store.UserStore
	roles    *store.RoleStore
	kv       repository.KeyValueStore
	verifier CredentialVerifier
	log      *logger.Logger
	stop     func()
}

// NewAuthContext construye el contexto sin sesión. verifier nil usa DemoVerifier.
func NewAuthContext(users *store.UserStore, roles *store.RoleStore, kv repository.KeyValueStore, verifier CredentialVerifier, log *logger.Logger) *AuthContext {
	if verifier == nil {
		verifier = DemoVerifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	a := &AuthContext{
		users:    users,
		roles:    roles,
		kv:       kv,
		verifier: verifier,
		log:      log.Named("auth"),
	}
	a.stop = users.Observe(a.onUsersChanged)
	return a
}

// Close deja de observar el store de usuarios.
func (a *AuthContext) Close() {
	a.stop()
}

// Login busca el usuario por username exacto y verifica la contraseña.
func (a *AuthContext) Login(ctx context.Context, in dto.LoginRequest) (*entity.User, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	users := a.users.Current()
	i := slices.IndexFunc(users, func(u entity.User) bool { return u.Username == in.Username })
	if i < 0 || !a.verifier.Verify(users[i], in.Password) {
		a.log.Info().Str("username", in.Username).Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	user := users[i]

	a.mu.Lock()
	a.userID = user.ID
	a.mu.Unlock()

	a.saveSession(ctx, user)

	// El usuario pudo eliminarse entre la búsqueda y el registro de la sesión.
	if _, ok := a.users.Get(user.ID); !ok {
		a.mu.Lock()
		if a.userID == user.ID {
			a.userID = ""
		}
		a.mu.Unlock()
		if err := a.discardSession(ctx); err != nil {
			a.log.Warn().Err(err).Msg("no se pudo borrar la sesión persistida")
		}
		return nil, domain.ErrInvalidCredentials
	}

	a.log.Info().Str("user_id", user.ID).Msg("login correcto")
	return &user, nil
}

// Logout cierra la sesión y borra la persistida.
func (a *AuthContext) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.userID = ""
	a.mu.Unlock()

	if err := a.kv.Delete(ctx, repository.KeyCurrentUser); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	a.log.Info().Msg("logout")
	return nil
}

// Restore recupera la sesión persistida. Si el usuario ya no existe o el valor no es válido
// la sesión se descarta y no hay usuario actual.
func (a *AuthContext) Restore(ctx context.Context) error {
	raw, ok, err := a.kv.Get(ctx, repository.KeyCurrentUser)
	if err != nil {
		return fmt.Errorf("leer sesión: %w", err)
	}
	if !ok {
		return nil
	}
	var saved entity.User
	if err := json.Unmarshal(raw, &saved); err != nil {
		a.log.Warn().Err(err).Msg("sesión persistida ilegible; se descarta")
		return a.discardSession(ctx)
	}
	user, found := a.users.Get(saved.ID)
	if !found {
		a.log.Warn().Str("user_id", saved.ID).Msg("la sesión referencia un usuario inexistente; se descarta")
		return a.discardSession(ctx)
	}

	a.mu.Lock()
	a.userID = user.ID
	a.mu.Unlock()
	a.log.Info().Str("user_id", user.ID).Msg("sesión restaurada")
	return nil
}

func (a *AuthContext) discardSession(ctx context.Context) error {
	if err := a.kv.Delete(ctx, repository.KeyCurrentUser); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}

// CurrentUser usuario autenticado, nil si no hay sesión.
func (a *AuthContext) CurrentUser() *entity.User {
	a.mu.RLock()
	id := a.userID
	a.mu.RUnlock()
	if id == "" {
		return nil
	}
	u, ok := a.users.Get(id)
	if !ok {
		return nil
	}
	return &u
}

// CurrentRole rol del usuario autenticado; nil sin sesión o si el rol referenciado no existe.
func (a *AuthContext) CurrentRole() *entity.Role {
	u := a.CurrentUser()
	if u == nil {
		return nil
	}
	r, ok := a.roles.Get(u.RoleID)
	if !ok {
		return nil
	}
	return &r
}

// IsAuthenticated true si hay un rol actual.
func (a *AuthContext) IsAuthenticated() bool {
	return a.CurrentRole() != nil
}

// Permissions permisos del rol actual.
func (a *AuthContext) Permissions() []entity.Permission {
	r := a.CurrentRole()
	if r == nil {
		return nil
	}
	return slices.Clone(r.Permissions)
}

// HasPermission informa si el rol actual otorga p.
func (a *AuthContext) HasPermission(p entity.Permission) bool {
	r := a.CurrentRole()
	return r != nil && r.HasPermission(p)
}

// CanAccess true si el rol actual tiene al menos uno de los permisos requeridos.
// Sin permisos requeridos el acceso es libre.
func (a *AuthContext) CanAccess(required ...entity.Permission) bool {
	if len(required) == 0 {
		return true
	}
	r := a.CurrentRole()
	if r == nil {
		return false
	}
	return slices.ContainsFunc(required, r.HasPermission)
}

// onUsersChanged mantiene la sesión persistida al día con el registro del usuario.
func (a *AuthContext) onUsersChanged(users []entity.User) {
	a.mu.Lock()
	id := a.userID
	i := slices.IndexFunc(users, func(u entity.User) bool { return u.ID == id })
	if id != "" && i < 0 {
		a.userID = ""
	}
	a.mu.Unlock()

	if id == "" {
		return
	}
	ctx := context.Background()
	if i < 0 {
		a.log.Info().Str("user_id", id).Msg("usuario de la sesión eliminado; sesión cerrada")
		if err := a.discardSession(ctx); err != nil {
			a.log.Warn().Err(err).Msg("no se pudo borrar la sesión persistida")
		}
		return
	}
	a.saveSession(ctx, users[i])
}

func (a *AuthContext) saveSession(ctx context.Context, user entity.User) {
	raw, err := json.Marshal(user)
	if err == nil {
		err = a.kv.Set(ctx, repository.KeyCurrentUser, raw)
	}
	if err != nil {
		a.log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo persistir la sesión")
	}
}
