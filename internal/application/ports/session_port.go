package ports

import (
	"context"
	"time"
)

// SessionStore guarda el marcador de sesión de cada token emitido.
// Save y Delete son idempotentes; Lookup devuelve found=false si expiró o se cerró.
type SessionStore interface {
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Lookup(ctx context.Context, sessionID string) (userID string, found bool, err error)
	Delete(ctx context.Context, sessionID string) error
}
