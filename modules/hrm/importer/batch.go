package importer

import (
	"github.com/iota-uz/hrm-import/modules/hrm/domain/entities/reference"
)

// ReferenceColumns maps reference-holding columns to the kind of record
// they must resolve to.
var ReferenceColumns = map[string]reference.Kind{
	"cargo_id":         reference.KindRole,
	"departamento_id":  reference.KindDepartment,
	"classificacao_id": reference.KindClassification,
}

var referenceNouns = map[reference.Kind]string{
	reference.KindRole:           "role",
	reference.KindDepartment:     "department",
	reference.KindClassification: "job classification",
}

// BatchSets holds the persisted-state snapshots batch resolution compares
// against: identifiers already registered for the tenant and the existing
// reference records per kind.
type BatchSets struct {
	RegisteredCPFs map[string]struct{}
	References     map[reference.Kind]map[uint]struct{}
}

// usableCPF reports the identifier of a row if it passed coercion and the
// shape rule far enough to take part in uniqueness checks.
func usableCPF(row ParsedRow) (string, bool) {
	field := row.Fields["cpf"]
	if field.BadValue || !field.Value.Present {
		return "", false
	}
	cpf := field.Value.Text
	if msg := digits(11)(field.Value); msg != "" {
		return "", false
	}
	return cpf, true
}

// CandidateCPFs returns the usable identifiers of the batch in row order.
func CandidateCPFs(rows []ParsedRow) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if cpf, ok := usableCPF(row); ok {
			out = append(out, cpf)
		}
	}
	return out
}

// usableReferenceID reports a positive whole reference identifier.
func usableReferenceID(row ParsedRow, column string) (uint, bool) {
	field := row.Fields[column]
	if field.BadValue || !field.Value.Present {
		return 0, false
	}
	if !field.Value.Number.IsInteger() || !field.Value.Number.IsPositive() {
		return 0, false
	}
	return uint(field.Value.Number.IntPart()), true
}

// ReferencedIDs collects the distinct identifiers the batch points at for
// one reference column.
func ReferencedIDs(rows []ParsedRow, column string) []uint {
	seen := make(map[uint]struct{})
	out := make([]uint, 0)
	for _, row := range rows {
		id, ok := usableReferenceID(row, column)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ResolveBatch runs the cross-row and cross-state checks. It must only be
// called after every row has been parsed: duplicate detection needs the
// full candidate set, which is why row-level validation joins here.
func ResolveBatch(rows []ParsedRow, sets BatchSets, c *Collector) {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if cpf, ok := usableCPF(row); ok {
			// first-seen wins; only the second and later occurrences are flagged
			if _, dup := seen[cpf]; dup {
				c.Add(row.Number, "cpf", "duplicate cpf in this file")
			} else {
				seen[cpf] = struct{}{}
				if _, registered := sets.RegisteredCPFs[cpf]; registered {
					c.Add(row.Number, "cpf", "cpf already registered")
				}
			}
		}

		for column, kind := range ReferenceColumns {
			id, ok := usableReferenceID(row, column)
			if !ok {
				continue
			}
			if _, exists := sets.References[kind][id]; !exists {
				c.Add(row.Number, column, "references a "+referenceNouns[kind]+" that does not exist")
			}
		}
	}
}
