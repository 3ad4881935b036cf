package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iota-uz/hrm-import/modules/hrm/domain/entities/tenant"
)

type PgTenantRepository struct{}

func NewTenantRepository() tenant.Repository {
	return &PgTenantRepository{}
}

func (r *PgTenantRepository) GetByID(ctx context.Context, id uuid.UUID) (tenant.Tenant, error) {
	tx, err := useTx(ctx)
	if err != nil {
		return tenant.Tenant{}, err
	}

	var (
		t         tenant.Tenant
		pgID      pgtype.UUID
		createdAt pgtype.Timestamptz
	)
	row := tx.QueryRow(ctx,
		`SELECT id, name, is_active, created_at FROM tenants WHERE id = $1`,
		pgUUIDFromUUID(id),
	)
	if err := row.Scan(&pgID, &t.Name, &t.IsActive, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tenant.Tenant{}, tenant.ErrNotFound
		}
		return tenant.Tenant{}, err
	}

	if t.ID, err = uuidFromPgUUID(pgID); err != nil {
		return tenant.Tenant{}, err
	}
	if createdAt.Valid {
		t.CreatedAt = createdAt.Time
	}
	return t, nil
}
