package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/hrm-import/modules/hrm/domain/aggregates/employee"
)

// Employee maps a violation-free row onto the persisted record. It must
// only be called after the commit gate decided the batch is clean.
func (r ParsedRow) Employee(tenantID, createdBy uuid.UUID) employee.Employee {
	now := time.Now()
	return employee.Employee{
		TenantID: tenantID,

		Name:          r.text("nome"),
		CPF:           r.text("cpf"),
		RG:            r.text("rg"),
		BirthDate:     r.optDate("data_nascimento"),
		Sex:           employee.Sex(r.enum("sexo")),
		MaritalStatus: employee.MaritalStatus(r.enum("estado_civil")),
		Education:     employee.Education(r.enum("escolaridade")),
		MotherName:    r.text("nome_mae"),
		FatherName:    r.text("nome_pai"),

		Email:  r.text("email"),
		Phone:  r.text("telefone"),
		Mobile: r.text("celular"),

		Street:     r.text("endereco"),
		Number:     r.text("numero"),
		Complement: r.text("complemento"),
		District:   r.text("bairro"),
		City:       r.text("cidade"),
		State:      r.text("uf"),
		ZipCode:    r.text("cep"),

		HireDate:         r.field("data_admissao").Date,
		RoleID:           r.uintVal("cargo_id"),
		DepartmentID:     r.uintVal("departamento_id"),
		ClassificationID: r.optUint("classificacao_id"),

		Salary:             r.field("salario").Number,
		WeeklyHours:        r.field("carga_horaria").Number,
		ContractRegime:     employee.ContractRegime(r.enum("regime_contratacao")),
		Shift:              employee.Shift(r.enum("turno")),
		MealAllowance:      r.field("vale_refeicao").Number,
		TransportAllowance: r.field("vale_transporte").Number,
		BusCount:           int(r.field("quantidade_onibus").Number.IntPart()),

		Height:   r.optNum("altura"),
		Weight:   r.optNum("peso"),
		Disabled: r.field("possui_deficiencia").Bool,

		PIS:     r.text("pis"),
		CTPS:    r.text("ctps"),
		Bank:    r.text("banco"),
		Agency:  r.text("agencia"),
		Account: r.text("conta"),

		Active:    true,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r ParsedRow) text(name string) string {
	return r.field(name).Text
}

func (r ParsedRow) enum(name string) string {
	return strings.ToUpper(r.field(name).Text)
}

func (r ParsedRow) optDate(name string) *time.Time {
	v := r.field(name)
	if !v.Present {
		return nil
	}
	d := v.Date
	return &d
}

func (r ParsedRow) optNum(name string) *decimal.Decimal {
	v := r.field(name)
	if !v.Present {
		return nil
	}
	n := v.Number
	return &n
}

func (r ParsedRow) uintVal(name string) uint {
	return uint(r.field(name).Number.IntPart())
}

func (r ParsedRow) optUint(name string) *uint {
	v := r.field(name)
	if !v.Present {
		return nil
	}
	id := uint(v.Number.IntPart())
	return &id
}
