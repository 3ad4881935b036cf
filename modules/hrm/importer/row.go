package importer

import (
	"fmt"

	"github.com/iota-uz/hrm-import/pkg/excel"
)

// Field is one coerced cell of a row: the declared column, the typed value
// and whether coercion failed. A failed field keeps its single type
// violation and is skipped by every later rule.
type Field struct {
	Column   Column
	Value    excel.Value
	BadValue bool
}

// ParsedRow maps column name to coerced field, keys fixed to the declared
// column set. Number is the physical 1-based row.
type ParsedRow struct {
	Number int
	Fields map[string]Field
}

func (r ParsedRow) field(name string) excel.Value {
	return r.Fields[name].Value
}

// ParseRow coerces every cell of a physical row. Short rows are treated as
// having blank trailing cells. Each coercion failure yields exactly one
// type violation.
func ParseRow(row excel.Row, c *Collector) ParsedRow {
	parsed := ParsedRow{
		Number: row.Number,
		Fields: make(map[string]Field, len(Columns)),
	}
	for i, col := range Columns {
		raw := ""
		if i < len(row.Cells) {
			raw = row.Cells[i]
		}
		value, err := excel.Coerce(raw, col.Type)
		field := Field{Column: col, Value: value}
		if err != nil {
			field.BadValue = true
			c.Add(row.Number, col.Name, fmt.Sprintf("must be of type %s", col.Type))
		}
		parsed.Fields[col.Name] = field
	}
	return parsed
}
