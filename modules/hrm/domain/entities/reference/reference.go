package reference

import (
	"context"

	"github.com/google/uuid"
)

// Kind names the reference tables import rows may point at.
type Kind string

const (
	KindRole           Kind = "role"
	KindDepartment     Kind = "department"
	KindClassification Kind = "classification"
)

type Reference struct {
	ID       uint
	TenantID uuid.UUID
	Name     string
	Active   bool
}

type Repository interface {
	// ExistingIDs reports which of the given identifiers resolve to an
	// existing, active record of the tenant in context.
	ExistingIDs(ctx context.Context, kind Kind, ids []uint) (map[uint]struct{}, error)
}
