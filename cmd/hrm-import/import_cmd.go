package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/iota-uz/hrm-import/modules/hrm/importer"
	"github.com/iota-uz/hrm-import/modules/hrm/infrastructure/persistence"
	"github.com/iota-uz/hrm-import/modules/hrm/services"
	"github.com/iota-uz/hrm-import/pkg/composables"
	"github.com/iota-uz/hrm-import/pkg/configuration"
	"github.com/iota-uz/hrm-import/pkg/eventbus"
)

type importOptions struct {
	tenantID uuid.UUID
	userID   uuid.UUID
	file     string
	apply    bool
}

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import employees for a tenant from an xlsx file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Path to the xlsx file (required)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Commit the batch (default is validate-only)")

	var tenantFlag, userFlag string
	cmd.Flags().StringVar(&tenantFlag, "tenant", "", "Tenant UUID (required)")
	cmd.Flags().StringVar(&userFlag, "user", "", "Acting user UUID, stamped as created-by (required with --apply)")

	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("file")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(strings.TrimSpace(tenantFlag))
		if err != nil {
			return fmt.Errorf("invalid --tenant: %w", err)
		}
		opts.tenantID = id
		if userFlag != "" {
			uid, err := uuid.Parse(strings.TrimSpace(userFlag))
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
			opts.userID = uid
		}
		if opts.apply && opts.userID == uuid.Nil {
			return fmt.Errorf("--user is required with --apply")
		}
		return nil
	}

	return cmd
}

func runImport(ctx context.Context, opts importOptions) error {
	conf := configuration.Use()
	log := conf.Logger()

	data, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.file, err)
	}

	pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	ctx = composables.WithPool(ctx, pool)
	ctx = composables.WithTenantID(ctx, opts.tenantID)
	if opts.userID != uuid.Nil {
		ctx = composables.WithUserID(ctx, opts.userID)
	}

	svc := services.NewImportService(
		persistence.NewEmployeeRepository(),
		persistence.NewReferenceRepository(),
		persistence.NewTenantRepository(),
		eventbus.NewEventPublisher(log),
		log,
		services.ImportServiceOptions{
			Workers: conf.Import.Workers,
			MaxRows: conf.Import.MaxRows,
		},
	)

	var outcome *importer.Outcome
	if opts.apply {
		outcome, err = svc.Import(ctx, data)
	} else {
		outcome, err = svc.Validate(ctx, data)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcome); err != nil {
		return err
	}
	if outcome.IsRejected() {
		return fmt.Errorf("import rejected with %d errors", len(outcome.Rejection.Errors))
	}
	return nil
}
