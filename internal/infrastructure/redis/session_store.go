package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
	"github.com/jhoicas/wellcomputer-pos/pkg/config"
)

var _ ports.SessionStore = (*SessionStore)(nil)

const sessionPrefix = "wc:session:"

// SessionStore guarda los marcadores de sesión en Redis con TTL igual a la expiración del token.
type SessionStore struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewClient abre la conexión y verifica con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis: REDIS_ADDR vacío")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

// NewSessionStore construye el store sobre un cliente ya conectado.
func NewSessionStore(client *goredis.Client, log zerolog.Logger) *SessionStore {
	return &SessionStore{client: client, log: log}
}

func sessionKey(id string) string { return sessionPrefix + id }

// Save registra (o renueva) el marcador.
func (s *SessionStore) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err(); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("no se pudo guardar la sesión")
		return fmt.Errorf("redis: set sesión: %w", err)
	}
	return nil
}

// Lookup devuelve el usuario dueño de la sesión; found=false si no existe o expiró.
func (s *SessionStore) Lookup(ctx context.Context, sessionID string) (string, bool, error) {
	userID, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("no se pudo leer la sesión")
		return "", false, fmt.Errorf("redis: get sesión: %w", err)
	}
	return userID, true, nil
}

// Delete cierra la sesión; borrar una sesión inexistente no es error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("no se pudo cerrar la sesión")
		return fmt.Errorf("redis: del sesión: %w", err)
	}
	return nil
}
