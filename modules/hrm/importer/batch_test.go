package importer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/hrm-import/modules/hrm/domain/entities/reference"
)

func resolvedSets() BatchSets {
	return BatchSets{
		RegisteredCPFs: map[string]struct{}{},
		References: map[reference.Kind]map[uint]struct{}{
			reference.KindRole:           {1: {}},
			reference.KindDepartment:     {2: {}},
			reference.KindClassification: {3: {}},
		},
	}
}

func parseRows(rows ...map[string]string) ([]ParsedRow, *Collector) {
	parsed := make([]ParsedRow, len(rows))
	c := &Collector{}
	for i, overrides := range rows {
		parsed[i] = ParseRow(testRow(i+2, overrides), c)
	}
	return parsed, c
}

func TestDuplicateWithinBatchFlagsOnlySecondOccurrence(t *testing.T) {
	rows, c := parseRows(
		nil,
		map[string]string{"cpf": "52998224725"}, // same as baseline
		map[string]string{"cpf": "11144477735"},
	)

	ResolveBatch(rows, resolvedSets(), c)

	violations := c.Sorted()
	require.Len(t, violations, 1)
	require.Equal(t, 3, violations[0].Row, "first-seen wins, the second row is flagged")
	require.Equal(t, "cpf", violations[0].Field)
	require.Equal(t, "duplicate cpf in this file", violations[0].Message)
}

func TestAlreadyRegisteredCPF(t *testing.T) {
	rows, c := parseRows(nil)

	sets := resolvedSets()
	sets.RegisteredCPFs["52998224725"] = struct{}{}
	ResolveBatch(rows, sets, c)

	violations := c.Sorted()
	require.Len(t, violations, 1)
	require.Equal(t, Violation{Row: 2, Field: "cpf", Message: "cpf already registered"}, violations[0])
}

func TestUnresolvedReferencesNameTheReferencingField(t *testing.T) {
	rows, c := parseRows(map[string]string{
		"cargo_id":         "99",
		"departamento_id":  "98",
		"classificacao_id": "97",
	})

	ResolveBatch(rows, resolvedSets(), c)

	require.Equal(t, []string{"references a role that does not exist"}, messagesFor(c, "cargo_id"))
	require.Equal(t, []string{"references a department that does not exist"}, messagesFor(c, "departamento_id"))
	require.Equal(t, []string{"references a job classification that does not exist"}, messagesFor(c, "classificacao_id"))
}

func TestMalformedCPFIsNotACandidate(t *testing.T) {
	rows, _ := parseRows(map[string]string{"cpf": "123"})
	require.Empty(t, CandidateCPFs(rows))

	rows, _ = parseRows(nil, map[string]string{"cpf": "11144477735"})
	require.Equal(t, []string{"52998224725", "11144477735"}, CandidateCPFs(rows))
}

func TestReferencedIDsAreDistinctAndUsable(t *testing.T) {
	rows, _ := parseRows(
		map[string]string{"cargo_id": "7"},
		map[string]string{"cargo_id": "7"},
		map[string]string{"cargo_id": "abc"},
		map[string]string{"cargo_id": ""},
	)
	require.Equal(t, []uint{7}, ReferencedIDs(rows, "cargo_id"))
}

func TestViolationOrderingIsRowThenColumn(t *testing.T) {
	c := &Collector{}
	c.Add(3, "salario", "must be greater than zero")
	c.Add(2, "sexo", "is required")
	c.Add(3, "nome", "is required")
	c.Add(2, "cpf", "is required")

	sorted := c.Sorted()
	require.Equal(t, []Violation{
		{Row: 2, Field: "cpf", Message: "is required"},
		{Row: 2, Field: "sexo", Message: "is required"},
		{Row: 3, Field: "nome", Message: "is required"},
		{Row: 3, Field: "salario", Message: "must be greater than zero"},
	}, sorted)
}
