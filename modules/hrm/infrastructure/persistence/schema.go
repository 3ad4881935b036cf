package persistence

import (
	"context"
	_ "embed"

	"github.com/iota-uz/hrm-import/pkg/composables"
)

//go:embed schema/hrm-import-schema.sql
var schemaSQL string

// Schema returns the DDL for the import subsystem's tables.
func Schema() string {
	return schemaSQL
}

// Migrate applies the schema against the pool in context.
func Migrate(ctx context.Context) error {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, schemaSQL)
	return err
}
