package tenant

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("tenant not found")

type Tenant struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Tenant, error)
}
