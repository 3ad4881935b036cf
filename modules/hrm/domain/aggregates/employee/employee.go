package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Sex string

const (
	SexMale        Sex = "MASCULINO"
	SexFemale      Sex = "FEMININO"
	SexNotDeclared Sex = "NAO_DECLARADO"
	SexOther       Sex = "OUTRO"
)

func Sexes() []string {
	return []string{string(SexMale), string(SexFemale), string(SexNotDeclared), string(SexOther)}
}

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "SOLTEIRO"
	MaritalMarried  MaritalStatus = "CASADO"
	MaritalDivorced MaritalStatus = "DIVORCIADO"
	MaritalWidowed  MaritalStatus = "VIUVO"
	MaritalUnion    MaritalStatus = "UNIAO_ESTAVEL"
)

func MaritalStatuses() []string {
	return []string{
		string(MaritalSingle), string(MaritalMarried), string(MaritalDivorced),
		string(MaritalWidowed), string(MaritalUnion),
	}
}

type Education string

const (
	EducationPrimary   Education = "FUNDAMENTAL"
	EducationSecondary Education = "MEDIO"
	EducationHigher    Education = "SUPERIOR"
	EducationPostgrad  Education = "POS_GRADUACAO"
	EducationMasters   Education = "MESTRADO"
	EducationDoctorate Education = "DOUTORADO"
)

func Educations() []string {
	return []string{
		string(EducationPrimary), string(EducationSecondary), string(EducationHigher),
		string(EducationPostgrad), string(EducationMasters), string(EducationDoctorate),
	}
}

type Shift string

const (
	ShiftDay   Shift = "DIURNO"
	ShiftNight Shift = "NOTURNO"
	ShiftFull  Shift = "INTEGRAL"
)

func Shifts() []string {
	return []string{string(ShiftDay), string(ShiftNight), string(ShiftFull)}
}

type ContractRegime string

const (
	RegimeCLT       ContractRegime = "CLT"
	RegimePJ        ContractRegime = "PJ"
	RegimeIntern    ContractRegime = "ESTAGIO"
	RegimeTemporary ContractRegime = "TEMPORARIO"
)

func ContractRegimes() []string {
	return []string{string(RegimeCLT), string(RegimePJ), string(RegimeIntern), string(RegimeTemporary)}
}

// Employee is the record the import pipeline produces, one per valid data
// row. Optional cells map to pointers or zero values.
type Employee struct {
	ID       uint
	TenantID uuid.UUID

	Name          string
	CPF           string
	RG            string
	BirthDate     *time.Time
	Sex           Sex
	MaritalStatus MaritalStatus
	Education     Education
	MotherName    string
	FatherName    string

	Email  string
	Phone  string
	Mobile string

	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	ZipCode    string

	HireDate         time.Time
	RoleID           uint
	DepartmentID     uint
	ClassificationID *uint

	Salary             decimal.Decimal
	WeeklyHours        decimal.Decimal
	ContractRegime     ContractRegime
	Shift              Shift
	MealAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal
	BusCount           int

	Height   *decimal.Decimal
	Weight   *decimal.Decimal
	Disabled bool

	PIS     string
	CTPS    string
	Bank    string
	Agency  string
	Account string

	Active    bool
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
