package ports

import (
	"context"

	"github.com/kobofi/kobo-cli/internal/domain"
)

// SessionRepository snapshots the single session between command runs. Load
// returns domain.ErrSessionNotFound when no snapshot exists yet.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
