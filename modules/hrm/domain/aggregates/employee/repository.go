package employee

import (
	"context"

	"github.com/go-faster/errors"
)

var ErrNotFound = errors.New("employee not found")

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetByCPF(ctx context.Context, cpf string) (Employee, error)
	// ExistingCPFs reports which of the given identifiers already belong to
	// an active employee of the tenant in context.
	ExistingCPFs(ctx context.Context, cpfs []string) (map[string]struct{}, error)
	// CreateMany inserts every record; the caller owns the transaction.
	CreateMany(ctx context.Context, employees []Employee) (int, error)
}
