package importer

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/hrm-import/modules/hrm/domain/aggregates/employee"
	"github.com/iota-uz/hrm-import/pkg/excel"
)

// Rule validates one coerced cell independently of every other cell.
// The returned message is empty on success. Rules other than required
// pass on absent values: presence is the required rule's concern.
type Rule func(v excel.Value) string

var validate = validator.New()

func required() Rule {
	return func(v excel.Value) string {
		if !v.Present {
			return "is required"
		}
		return ""
	}
}

func length(min, max int) Rule {
	return func(v excel.Value) string {
		if !v.Present {
			return ""
		}
		if n := utf8.RuneCountInString(v.Text); n < min || n > max {
			return fmt.Sprintf("must be between %d and %d characters", min, max)
		}
		return ""
	}
}

func digits(n int) Rule {
	return func(v excel.Value) string {
		if !v.Present {
			return ""
		}
		if len(v.Text) != n || strings.IndexFunc(v.Text, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
			return fmt.Sprintf("must contain exactly %d digits", n)
		}
		return ""
	}
}

func email() Rule {
	return func(v excel.Value) string {
		if !v.Present {
			return ""
		}
		if err := validate.Var(v.Text, "email"); err != nil {
			return "must be a valid email address"
		}
		return ""
	}
}

func oneOf(allowed []string) Rule {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	message := "must be one of: " + strings.Join(allowed, ", ")
	return func(v excel.Value) string {
		if !v.Present {
			return ""
		}
		if _, ok := set[strings.ToUpper(v.Text)]; !ok {
			return message
		}
		return ""
	}
}

func positive() Rule {
	return func(v excel.Value) string {
		if !v.Present {
			return ""
		}
		if !v.Number.IsPositive() {
			return "must be greater than zero"
		}
		return ""
	}
}

// atLeast and atMost take the bound as a literal so the reported message
// names it exactly as the template documents it ("0.5", not "0.50").

func atLeast(bound string) Rule {
	limit := decimal.RequireFromString(bound)
	message := "must be at least " + bound
	return func(v excel.Value) string {
		if !v.Present {
			return ""
		}
		if v.Number.LessThan(limit) {
			return message
		}
		return ""
	}
}

func atMost(bound string) Rule {
	limit := decimal.RequireFromString(bound)
	message := "must be at most " + bound
	return func(v excel.Value) string {
		if !v.Present {
			return ""
		}
		if v.Number.GreaterThan(limit) {
			return message
		}
		return ""
	}
}

func wholeNumber() Rule {
	return func(v excel.Value) string {
		if !v.Present {
			return ""
		}
		if !v.Number.IsInteger() {
			return "must be a whole number"
		}
		return ""
	}
}

func pastDate() Rule {
	return func(v excel.Value) string {
		if !v.Present {
			return ""
		}
		if !v.Date.Before(time.Now()) {
			return "must be in the past"
		}
		return ""
	}
}

// fieldRules is the declarative validation table: adding a column or a rule
// is an edit here, not a control-flow change. Required columns get their
// required rule from the schema declaration.
var fieldRules = map[string][]Rule{
	"nome":               {length(1, 255)},
	"cpf":                {digits(11)},
	"data_nascimento":    {pastDate()},
	"sexo":               {oneOf(employee.Sexes())},
	"estado_civil":       {oneOf(employee.MaritalStatuses())},
	"escolaridade":       {oneOf(employee.Educations())},
	"email":              {email()},
	"cep":                {digits(8)},
	"cargo_id":           {wholeNumber(), positive()},
	"departamento_id":    {wholeNumber(), positive()},
	"classificacao_id":   {wholeNumber(), positive()},
	"salario":            {positive()},
	"carga_horaria":      {positive()},
	"regime_contratacao": {oneOf(employee.ContractRegimes())},
	"turno":              {oneOf(employee.Shifts())},
	"vale_refeicao":      {atLeast("0")},
	"vale_transporte":    {atLeast("0")},
	"quantidade_onibus":  {wholeNumber(), atLeast("0")},
	"altura":             {atLeast("0.5"), atMost("3.0")},
	"peso":               {positive(), atMost("500")},
	"pis":                {digits(11)},
}

// ApplyRules runs every applicable rule of every column against the row.
// Rules never short-circuit each other: a malformed row commonly yields
// several violations at once. Fields whose coercion failed are skipped,
// they already carry their one type violation.
func ApplyRules(row ParsedRow, c *Collector) {
	for _, col := range Columns {
		field := row.Fields[col.Name]
		if field.BadValue {
			continue
		}
		if col.Required {
			if msg := required()(field.Value); msg != "" {
				c.Add(row.Number, col.Name, msg)
				continue
			}
		}
		for _, rule := range fieldRules[col.Name] {
			if msg := rule(field.Value); msg != "" {
				c.Add(row.Number, col.Name, msg)
			}
		}
	}
}
