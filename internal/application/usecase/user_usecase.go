package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/access"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/repository"
)

// DefaultPassword credencial inicial cuando el alta no trae password.
const DefaultPassword = "password123"

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
	log  zerolog.Logger
	cost int
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, log zerolog.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, log: log, cost: bcrypt.DefaultCost}
}

// WithHashCost cambia el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *UserUseCase) WithHashCost(cost int) *UserUseCase {
	uc.cost = cost
	return uc
}

// Create da de alta un usuario activo. El rol debe ser asignable por el actor
// y el email único sin distinguir mayúsculas.
func (uc *UserUseCase) Create(actor entity.Role, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.Role(strings.ToUpper(strings.TrimSpace(in.Role)))
	if !role.Valid() {
		return nil, domain.ErrInvalidRequest
	}
	if !access.CanAssignRole(actor, role) {
		return nil, domain.ErrRoleNotAssignable
	}
	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" {
		return nil, domain.ErrInvalidRequest
	}

	password := in.Password
	if password == "" {
		password = DefaultPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entity.User{
		ID:       "u" + uuid.NewString(),
		Name:     name,
		Role:     role,
		Phone:    in.Phone,
		Email:    email,
		Password: string(hash),
		Active:   true,
	}
	if err := uc.repo.Create(user); err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("alta de usuario rechazada")
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("usuario creado")
	return ToUserResponse(user), nil
}

// Delete aplica la regla de borrado: SUPERADMIN a cualquiera, ADMIN solo a SALES.
func (uc *UserUseCase) Delete(actor entity.Role, id string) error {
	target, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	if !access.CanDeleteUser(actor, target.Role) {
		return domain.ErrActionForbidden
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", id).Msg("usuario eliminado")
	return nil
}

func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *ToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return ToUserResponse(user), nil
}

// Actor devuelve la entidad completa (middleware de auth). (nil, nil) si no existe.
func (uc *UserUseCase) Actor(id string) (*entity.User, error) {
	return uc.repo.GetByID(id)
}

// FindByCredential valida email y password. Cualquier fallo devuelve el mismo
// ErrInvalidCredentials para no revelar qué emails existen.
func (uc *UserUseCase) FindByCredential(email, password string) (*entity.User, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// AssignableRoles roles que el actor puede elegir en el alta.
func (uc *UserUseCase) AssignableRoles(actor entity.Role) []string {
	roles := access.AssignableRoles(actor)
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

// HashPasswords hashea los passwords que no sean ya un hash bcrypt
// (datos semilla y backups antiguos). Los hashes existentes no se tocan.
func HashPasswords(users []entity.User, cost int) error {
	for i := range users {
		if _, err := bcrypt.Cost([]byte(users[i].Password)); err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(users[i].Password), cost)
		if err != nil {
			return fmt.Errorf("hash password %s: %w", users[i].ID, err)
		}
		users[i].Password = string(hash)
	}
	return nil
}

// ToUserResponse mapea la entidad sin exponer el password.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Role:   string(u.Role),
		Phone:  u.Phone,
		Email:  u.Email,
		Active: u.Active,
	}
}
