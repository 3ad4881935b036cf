package employee

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/iota-uz/hrm-import/pkg/composables"
)

// ImportedEvent is published once per committed batch.
type ImportedEvent struct {
	TenantID   uuid.UUID
	ImportedBy uuid.UUID
	TotalRows  int
	Inserted   int
	Timestamp  time.Time
}

func NewImportedEvent(ctx context.Context, totalRows, inserted int) (*ImportedEvent, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := composables.UseUserID(ctx)
	if err != nil {
		return nil, err
	}
	return &ImportedEvent{
		TenantID:   tenantID,
		ImportedBy: userID,
		TotalRows:  totalRows,
		Inserted:   inserted,
		Timestamp:  time.Now(),
	}, nil
}
