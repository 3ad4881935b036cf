package persistence

import (
	"context"
	"fmt"

	"github.com/iota-uz/hrm-import/modules/hrm/domain/entities/reference"
)

var referenceTables = map[reference.Kind]string{
	reference.KindRole:           "roles",
	reference.KindDepartment:     "departments",
	reference.KindClassification: "job_classifications",
}

type PgReferenceRepository struct{}

func NewReferenceRepository() reference.Repository {
	return &PgReferenceRepository{}
}

func (r *PgReferenceRepository) ExistingIDs(ctx context.Context, kind reference.Kind, ids []uint) (map[uint]struct{}, error) {
	out := make(map[uint]struct{}, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	table, ok := referenceTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown reference kind %q", kind)
	}

	_, pgTenantID, err := tenantIDs(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := useTx(ctx)
	if err != nil {
		return nil, err
	}

	// table names come from the fixed map above, never from input
	query := fmt.Sprintf(`SELECT id FROM %s WHERE tenant_id = $1 AND active AND id = ANY($2)`, table)
	rows, err := tx.Query(ctx, query, pgTenantID, int64SliceFromUints(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[uint(id)] = struct{}{}
	}
	return out, rows.Err()
}
