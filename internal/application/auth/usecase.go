package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
	"github.com/jhoicas/wellcomputer-pos/internal/application/usecase"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/access"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
	"github.com/jhoicas/wellcomputer-pos/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

func (c JWTConfig) ttl() time.Duration {
	return time.Duration(c.ExpMinutes) * time.Minute
}

// Credentials resuelve usuarios por credencial o por ID (lo implementa usecase.UserUseCase).
type Credentials interface {
	FindByCredential(email, password string) (*entity.User, error)
	Actor(id string) (*entity.User, error)
}

// AuthUseCase casos de uso de autenticación: login, sesión y logout.
// Un token solo es válido mientras su marcador de sesión exista en el SessionStore.
type AuthUseCase struct {
	users    Credentials
	sessions ports.SessionStore
	jwtCfg   JWTConfig
	log      zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users Credentials, sessions ports.SessionStore, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, jwtCfg: jwtCfg, log: log}
}

// Login verifica email/password, registra el marcador de sesión y retorna token + usuario + áreas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByCredential(in.Email, in.Password)
	if err != nil {
		uc.log.Warn().Err(err).Str("email", in.Email).Msg("login rechazado")
		return nil, err
	}
	sessionID := uuid.NewString()
	token, expiresAt, err := jwt.Generate(uc.jwtCfg.Secret, sessionID, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ttl())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	if err := uc.sessions.Save(ctx, sessionID, user.ID, uc.jwtCfg.ttl()); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *usecase.ToUserResponse(user),
		Areas:     Areas(user.Role),
	}, nil
}

// Authenticate valida el token y el marcador de sesión y devuelve el usuario vigente.
// Cualquier fallo (firma, expiración, sesión cerrada, usuario borrado o inactivo) es ErrSessionClosed.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, *jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrSessionClosed, err)
	}
	userID, found, err := uc.sessions.Lookup(ctx, claims.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("lookup session: %w", err)
	}
	if !found || userID != claims.UserID {
		return nil, nil, domain.ErrSessionClosed
	}
	user, err := uc.users.Actor(claims.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !user.Active {
		return nil, nil, domain.ErrSessionClosed
	}
	return user, claims, nil
}

// Logout elimina el marcador; es idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Session devuelve el usuario de la sesión actual y sus áreas.
func (uc *AuthUseCase) Session(user *entity.User) *dto.SessionResponse {
	return &dto.SessionResponse{
		User:  *usecase.ToUserResponse(user),
		Areas: Areas(user.Role),
	}
}

// Areas áreas permitidas del rol como strings para la API.
func Areas(role entity.Role) []string {
	areas := access.PermittedAreas(role)
	out := make([]string, 0, len(areas))
	for _, a := range areas {
		out = append(out, string(a))
	}
	return out
}
