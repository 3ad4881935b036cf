package services

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iota-uz/hrm-import/modules/hrm/domain/aggregates/employee"
	"github.com/iota-uz/hrm-import/modules/hrm/domain/entities/reference"
	"github.com/iota-uz/hrm-import/modules/hrm/domain/entities/tenant"
	"github.com/iota-uz/hrm-import/modules/hrm/importer"
	"github.com/iota-uz/hrm-import/pkg/composables"
	"github.com/iota-uz/hrm-import/pkg/eventbus"
	"github.com/iota-uz/hrm-import/pkg/excel"
	"github.com/iota-uz/hrm-import/pkg/serrors"
)

var (
	ErrTenantNotFound = serrors.NewError("TENANT_NOT_FOUND", "tenant does not exist", "")
	// ErrInfraFailure marks storage-level failures so callers can tell
	// "your data was wrong" from "try again later".
	ErrInfraFailure = serrors.NewError("IMPORT_INFRA_FAILURE", "import could not be persisted", "")
)

// overridable in tests, same trick the rest of the codebase uses for
// context-bound collaborators
var runInTenantTx = composables.InTenantTx

type ImportServiceOptions struct {
	// Workers bounds the row-validation pool; 0 means GOMAXPROCS.
	Workers int
	// MaxRows caps accepted data rows per upload; 0 means unlimited.
	MaxRows int
}

// ImportService is the bulk employee import pipeline: one uploaded file,
// one validation pass, at most one transaction.
type ImportService struct {
	employees employee.Repository
	refs      reference.Repository
	tenants   tenant.Repository
	publisher eventbus.EventBus
	log       *logrus.Logger
	opts      ImportServiceOptions

	// serializes commits per tenant so two concurrent imports cannot both
	// pass uniqueness checks against the same not-yet-committed cpf
	commitLocks sync.Map
}

func NewImportService(
	employees employee.Repository,
	refs reference.Repository,
	tenants tenant.Repository,
	publisher eventbus.EventBus,
	log *logrus.Logger,
	opts ImportServiceOptions,
) *ImportService {
	return &ImportService{
		employees: employees,
		refs:      refs,
		tenants:   tenants,
		publisher: publisher,
		log:       log,
		opts:      opts,
	}
}

// Import validates the uploaded spreadsheet and, if the whole batch is
// clean, commits every row in one transaction. Validation problems are
// data (a rejected Outcome); only infrastructural failures return an error.
func (s *ImportService) Import(ctx context.Context, file []byte) (*importer.Outcome, error) {
	return s.run(ctx, file, true)
}

// Validate runs the full pipeline without the commit step.
func (s *ImportService) Validate(ctx context.Context, file []byte) (*importer.Outcome, error) {
	return s.run(ctx, file, false)
}

func (s *ImportService) run(ctx context.Context, file []byte, commit bool) (*importer.Outcome, error) {
	tenantID, err := s.resolveTenant(ctx)
	if err != nil {
		return nil, err
	}

	sheet, err := excel.OpenSheet(file)
	if err != nil {
		return importer.NewFileRejected("uploaded file is not a valid spreadsheet"), nil
	}

	if !importer.CheckHeader(sheet.Header) {
		return importer.NewHeaderRejected(), nil
	}
	if len(sheet.Rows) == 0 {
		return importer.NewFileRejected("file contains no data rows"), nil
	}
	if s.opts.MaxRows > 0 && len(sheet.Rows) > s.opts.MaxRows {
		return importer.NewFileRejected("file exceeds the maximum number of data rows"), nil
	}

	rows, collector := s.validateRows(ctx, sheet.Rows)

	sets, err := s.loadBatchSets(ctx, rows)
	if err != nil {
		return nil, serrors.Wrap(ErrInfraFailure, err)
	}
	importer.ResolveBatch(rows, sets, collector)

	if !collector.Empty() {
		s.log.WithFields(logrus.Fields{
			"tenant_id":  tenantID,
			"rows":       len(rows),
			"violations": collector.Len(),
		}).Info("import rejected")
		return importer.NewRejected(collector.Sorted()), nil
	}

	if !commit {
		return importer.NewDryRun(len(rows)), nil
	}

	if err := s.commitBatch(ctx, tenantID, rows); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"inserted":  len(rows),
	}).Info("import committed")
	return importer.NewCommitted(len(rows)), nil
}

// resolveTenant runs once before any row processing; an unknown or
// inactive tenant fails the whole request.
func (s *ImportService) resolveTenant(ctx context.Context) (uuid.UUID, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	t, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			return uuid.Nil, ErrTenantNotFound
		}
		return uuid.Nil, serrors.Wrap(ErrInfraFailure, err)
	}
	if !t.IsActive {
		return uuid.Nil, ErrTenantNotFound
	}
	return tenantID, nil
}

// validateRows runs coercion and the field rule table across rows on a
// bounded pool. Rows are independent here; everything cross-row waits for
// the join below.
func (s *ImportService) validateRows(ctx context.Context, raw []excel.Row) ([]importer.ParsedRow, *importer.Collector) {
	type rowResult struct {
		parsed     importer.ParsedRow
		violations *importer.Collector
	}

	workers := s.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]rowResult, len(raw))
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, row := range raw {
		i, row := i, row
		eg.Go(func() error {
			c := &importer.Collector{}
			parsed := importer.ParseRow(row, c)
			importer.ApplyRules(parsed, c)
			results[i] = rowResult{parsed: parsed, violations: c}
			return nil
		})
	}
	// join point: no worker returns an error, Wait is the barrier
	_ = eg.Wait()

	rows := make([]importer.ParsedRow, len(results))
	collector := &importer.Collector{}
	for i, res := range results {
		rows[i] = res.parsed
		collector.Merge(res.violations)
	}
	return rows, collector
}

func (s *ImportService) loadBatchSets(ctx context.Context, rows []importer.ParsedRow) (importer.BatchSets, error) {
	registered, err := s.employees.ExistingCPFs(ctx, importer.CandidateCPFs(rows))
	if err != nil {
		return importer.BatchSets{}, err
	}

	refs := make(map[reference.Kind]map[uint]struct{}, len(importer.ReferenceColumns))
	for column, kind := range importer.ReferenceColumns {
		existing, err := s.refs.ExistingIDs(ctx, kind, importer.ReferencedIDs(rows, column))
		if err != nil {
			return importer.BatchSets{}, err
		}
		refs[kind] = existing
	}

	return importer.BatchSets{RegisteredCPFs: registered, References: refs}, nil
}

func (s *ImportService) commitBatch(ctx context.Context, tenantID uuid.UUID, rows []importer.ParsedRow) error {
	userID, err := composables.UseUserID(ctx)
	if err != nil {
		return err
	}

	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	err = runInTenantTx(ctx, func(txCtx context.Context) error {
		entities := make([]employee.Employee, len(rows))
		for i, row := range rows {
			entities[i] = row.Employee(tenantID, userID)
		}
		inserted, err := s.employees.CreateMany(txCtx, entities)
		if err != nil {
			return err
		}
		ev, err := employee.NewImportedEvent(txCtx, len(rows), inserted)
		if err != nil {
			return err
		}
		s.publisher.Publish(ev)
		return nil
	})
	if err != nil {
		return serrors.Wrap(ErrInfraFailure, err)
	}
	return nil
}

func (s *ImportService) tenantLock(tenantID uuid.UUID) *sync.Mutex {
	lock, _ := s.commitLocks.LoadOrStore(tenantID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
