package persistence

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iota-uz/hrm-import/modules/hrm/domain/aggregates/employee"
)

const employeeColumns = `
	tenant_id, name, cpf, rg, birth_date, sex, marital_status, education,
	mother_name, father_name, email, phone, mobile,
	street, number, complement, district, city, state, zip_code,
	hire_date, role_id, department_id, classification_id,
	salary, weekly_hours, contract_regime, shift,
	meal_allowance, transport_allowance, bus_count,
	height, weight, disabled,
	pis, ctps, bank, agency, account,
	active, created_by, created_at, updated_at`

const insertEmployeeQuery = `
	INSERT INTO employees (` + employeeColumns + `)
	VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8,
		$9, $10, $11, $12, $13,
		$14, $15, $16, $17, $18, $19, $20,
		$21, $22, $23, $24,
		$25, $26, $27, $28,
		$29, $30, $31,
		$32, $33, $34,
		$35, $36, $37, $38, $39,
		$40, $41, $42, $43
	)`

const selectEmployeeByCPFQuery = `
	SELECT id, ` + employeeColumns + `
	FROM employees
	WHERE tenant_id = $1 AND cpf = $2 AND active`

type PgEmployeeRepository struct{}

func NewEmployeeRepository() employee.Repository {
	return &PgEmployeeRepository{}
}

func (r *PgEmployeeRepository) Count(ctx context.Context) (int64, error) {
	_, pgTenantID, err := tenantIDs(ctx)
	if err != nil {
		return 0, err
	}
	tx, err := useTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	row := tx.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE tenant_id = $1 AND active`, pgTenantID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PgEmployeeRepository) GetByCPF(ctx context.Context, cpf string) (employee.Employee, error) {
	_, pgTenantID, err := tenantIDs(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	tx, err := useTx(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	row := tx.QueryRow(ctx, selectEmployeeByCPFQuery, pgTenantID, cpf)
	entity, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrNotFound
		}
		return employee.Employee{}, err
	}
	return entity, nil
}

func (r *PgEmployeeRepository) ExistingCPFs(ctx context.Context, cpfs []string) (map[string]struct{}, error) {
	out := make(map[string]struct{}, len(cpfs))
	if len(cpfs) == 0 {
		return out, nil
	}

	_, pgTenantID, err := tenantIDs(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := useTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx,
		`SELECT cpf FROM employees WHERE tenant_id = $1 AND active AND cpf = ANY($2)`,
		pgTenantID, cpfs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cpf string
		if err := rows.Scan(&cpf); err != nil {
			return nil, err
		}
		out[cpf] = struct{}{}
	}
	return out, rows.Err()
}

// CreateMany inserts every record through one pgx batch. The caller owns
// the surrounding transaction; any failed insert fails the whole batch.
func (r *PgEmployeeRepository) CreateMany(ctx context.Context, employees []employee.Employee) (int, error) {
	if len(employees) == 0 {
		return 0, nil
	}

	tenantUUID, _, err := tenantIDs(ctx)
	if err != nil {
		return 0, err
	}
	tx, err := useTx(ctx)
	if err != nil {
		return 0, err
	}

	batch := &pgx.Batch{}
	for _, entity := range employees {
		args, err := insertEmployeeArgs(entity, tenantUUID)
		if err != nil {
			return 0, gerrors.Wrap(err, "failed to build employee insert")
		}
		batch.Queue(insertEmployeeQuery, args...)
	}

	results := tx.SendBatch(ctx, batch)
	defer func() {
		_ = results.Close()
	}()

	for i := range employees {
		if _, err := results.Exec(); err != nil {
			return 0, gerrors.Wrapf(err, "failed to insert employee %d of %d", i+1, len(employees))
		}
	}
	return len(employees), nil
}

func insertEmployeeArgs(e employee.Employee, tenant [16]byte) ([]any, error) {
	salary, err := numericFromDecimal(e.Salary)
	if err != nil {
		return nil, err
	}
	weeklyHours, err := numericFromDecimal(e.WeeklyHours)
	if err != nil {
		return nil, err
	}
	mealAllowance, err := numericFromDecimal(e.MealAllowance)
	if err != nil {
		return nil, err
	}
	transportAllowance, err := numericFromDecimal(e.TransportAllowance)
	if err != nil {
		return nil, err
	}
	height, err := numericFromDecimalPtr(e.Height)
	if err != nil {
		return nil, err
	}
	weight, err := numericFromDecimalPtr(e.Weight)
	if err != nil {
		return nil, err
	}

	return []any{
		pgtype.UUID{Bytes: tenant, Valid: true},
		e.Name,
		e.CPF,
		stringPointer(e.RG),
		dateFromPointer(e.BirthDate),
		string(e.Sex),
		stringPointer(string(e.MaritalStatus)),
		stringPointer(string(e.Education)),
		stringPointer(e.MotherName),
		stringPointer(e.FatherName),
		stringPointer(e.Email),
		stringPointer(e.Phone),
		stringPointer(e.Mobile),
		stringPointer(e.Street),
		stringPointer(e.Number),
		stringPointer(e.Complement),
		stringPointer(e.District),
		stringPointer(e.City),
		stringPointer(e.State),
		stringPointer(e.ZipCode),
		dateFromTime(e.HireDate),
		int64(e.RoleID),
		int64(e.DepartmentID),
		int64PointerFromUintPtr(e.ClassificationID),
		salary,
		weeklyHours,
		stringPointer(string(e.ContractRegime)),
		stringPointer(string(e.Shift)),
		mealAllowance,
		transportAllowance,
		int32(e.BusCount),
		height,
		weight,
		e.Disabled,
		stringPointer(e.PIS),
		stringPointer(e.CTPS),
		stringPointer(e.Bank),
		stringPointer(e.Agency),
		stringPointer(e.Account),
		e.Active,
		pgUUIDFromUUID(e.CreatedBy),
		timestamptzFromTime(e.CreatedAt),
		timestamptzFromTime(e.UpdatedAt),
	}, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		e                employee.Employee
		id               int64
		tenantID         pgtype.UUID
		rg               *string
		birthDate        pgtype.Date
		sex              string
		maritalStatus    *string
		education        *string
		motherName       *string
		fatherName       *string
		email            *string
		phone            *string
		mobile           *string
		street           *string
		number           *string
		complement       *string
		district         *string
		city             *string
		state            *string
		zipCode          *string
		hireDate         pgtype.Date
		roleID           int64
		departmentID     int64
		classificationID *int64
		salary           pgtype.Numeric
		weeklyHours      pgtype.Numeric
		contractRegime   *string
		shift            *string
		mealAllowance    pgtype.Numeric
		transport        pgtype.Numeric
		busCount         int32
		height           pgtype.Numeric
		weight           pgtype.Numeric
		pis              *string
		ctps             *string
		bank             *string
		agency           *string
		account          *string
		createdBy        pgtype.UUID
		createdAt        pgtype.Timestamptz
		updatedAt        pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &tenantID, &e.Name, &e.CPF, &rg, &birthDate, &sex, &maritalStatus, &education,
		&motherName, &fatherName, &email, &phone, &mobile,
		&street, &number, &complement, &district, &city, &state, &zipCode,
		&hireDate, &roleID, &departmentID, &classificationID,
		&salary, &weeklyHours, &contractRegime, &shift,
		&mealAllowance, &transport, &busCount,
		&height, &weight, &e.Disabled,
		&pis, &ctps, &bank, &agency, &account,
		&e.Active, &createdBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	e.ID = uint(id)
	if e.TenantID, err = uuidFromPgUUID(tenantID); err != nil {
		return employee.Employee{}, err
	}
	e.RG = stringValue(rg)
	e.BirthDate = timePtrFromDate(birthDate)
	e.Sex = employee.Sex(sex)
	e.MaritalStatus = employee.MaritalStatus(stringValue(maritalStatus))
	e.Education = employee.Education(stringValue(education))
	e.MotherName = stringValue(motherName)
	e.FatherName = stringValue(fatherName)
	e.Email = stringValue(email)
	e.Phone = stringValue(phone)
	e.Mobile = stringValue(mobile)
	e.Street = stringValue(street)
	e.Number = stringValue(number)
	e.Complement = stringValue(complement)
	e.District = stringValue(district)
	e.City = stringValue(city)
	e.State = stringValue(state)
	e.ZipCode = stringValue(zipCode)
	if hireDate.Valid {
		e.HireDate = hireDate.Time
	}
	e.RoleID = uint(roleID)
	e.DepartmentID = uint(departmentID)
	e.ClassificationID = uintPtrFromInt64Ptr(classificationID)
	if e.Salary, err = decimalFromNumeric(salary); err != nil {
		return employee.Employee{}, err
	}
	if e.WeeklyHours, err = decimalFromNumeric(weeklyHours); err != nil {
		return employee.Employee{}, err
	}
	e.ContractRegime = employee.ContractRegime(stringValue(contractRegime))
	e.Shift = employee.Shift(stringValue(shift))
	if e.MealAllowance, err = decimalFromNumeric(mealAllowance); err != nil {
		return employee.Employee{}, err
	}
	if e.TransportAllowance, err = decimalFromNumeric(transport); err != nil {
		return employee.Employee{}, err
	}
	e.BusCount = int(busCount)
	if e.Height, err = decimalPtrFromNumeric(height); err != nil {
		return employee.Employee{}, err
	}
	if e.Weight, err = decimalPtrFromNumeric(weight); err != nil {
		return employee.Employee{}, err
	}
	e.PIS = stringValue(pis)
	e.CTPS = stringValue(ctps)
	e.Bank = stringValue(bank)
	e.Agency = stringValue(agency)
	e.Account = stringValue(account)
	if e.CreatedBy, err = uuidFromPgUUID(createdBy); err != nil {
		return employee.Employee{}, err
	}
	if createdAt.Valid {
		e.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		e.UpdatedAt = updatedAt.Time
	}
	return e, nil
}
