package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidRowHasNoViolations(t *testing.T) {
	_, c := parseAndValidate(testRow(2, nil))
	require.Empty(t, c.Sorted())
}

func TestCoercionFailureReportsSingleTypeViolation(t *testing.T) {
	_, c := parseAndValidate(testRow(2, map[string]string{"salario": "abc"}))

	msgs := messagesFor(c, "salario")
	require.Equal(t, []string{"must be of type number"}, msgs,
		"a coercion failure yields exactly one violation, range rules are skipped")
}

func TestRequiredFields(t *testing.T) {
	_, c := parseAndValidate(testRow(2, map[string]string{
		"nome":    "",
		"cpf":     "  ",
		"salario": "",
	}))

	require.Equal(t, []string{"is required"}, messagesFor(c, "nome"))
	require.Equal(t, []string{"is required"}, messagesFor(c, "cpf"))
	require.Equal(t, []string{"is required"}, messagesFor(c, "salario"))
}

func TestSalaryMustBePositive(t *testing.T) {
	_, c := parseAndValidate(testRow(2, map[string]string{"salario": "-1"}))

	require.Equal(t, 1, c.Len())
	v := c.Sorted()[0]
	require.Equal(t, 2, v.Row)
	require.Equal(t, "salario", v.Field)
	require.Equal(t, "must be greater than zero", v.Message)
}

func TestHeightBoundaries(t *testing.T) {
	for _, ok := range []string{"0.5", "3.0", "1.75"} {
		_, c := parseAndValidate(testRow(2, map[string]string{"altura": ok}))
		require.Empty(t, messagesFor(c, "altura"), "altura=%s", ok)
	}

	_, c := parseAndValidate(testRow(2, map[string]string{"altura": "0.49"}))
	require.Equal(t, []string{"must be at least 0.5"}, messagesFor(c, "altura"))

	_, c = parseAndValidate(testRow(2, map[string]string{"altura": "3.01"}))
	require.Equal(t, []string{"must be at most 3.0"}, messagesFor(c, "altura"))
}

func TestWeightBounds(t *testing.T) {
	_, c := parseAndValidate(testRow(2, map[string]string{"peso": "0"}))
	require.Equal(t, []string{"must be greater than zero"}, messagesFor(c, "peso"))

	_, c = parseAndValidate(testRow(2, map[string]string{"peso": "500.01"}))
	require.Equal(t, []string{"must be at most 500"}, messagesFor(c, "peso"))

	_, c = parseAndValidate(testRow(2, map[string]string{"peso": "500"}))
	require.Empty(t, messagesFor(c, "peso"))
}

func TestEnumMembershipNamesAllowedSet(t *testing.T) {
	_, c := parseAndValidate(testRow(2, map[string]string{"sexo": "INVALIDO"}))

	msgs := messagesFor(c, "sexo")
	require.Len(t, msgs, 1)
	require.Equal(t, "must be one of: MASCULINO, FEMININO, NAO_DECLARADO, OUTRO", msgs[0])
}

func TestCPFShape(t *testing.T) {
	for _, bad := range []string{"123", "123456789012", "5299822472a"} {
		_, c := parseAndValidate(testRow(2, map[string]string{"cpf": bad}))
		require.Equal(t, []string{"must contain exactly 11 digits"}, messagesFor(c, "cpf"), bad)
	}
}

func TestEmailGrammar(t *testing.T) {
	_, c := parseAndValidate(testRow(2, map[string]string{"email": "not-an-email"}))
	require.Equal(t, []string{"must be a valid email address"}, messagesFor(c, "email"))

	_, c = parseAndValidate(testRow(2, map[string]string{"email": ""}))
	require.Empty(t, messagesFor(c, "email"), "email is optional")
}

func TestBusCountMustBeWholeAndNonNegative(t *testing.T) {
	_, c := parseAndValidate(testRow(2, map[string]string{"quantidade_onibus": "-1"}))
	require.Equal(t, []string{"must be at least 0"}, messagesFor(c, "quantidade_onibus"))

	_, c = parseAndValidate(testRow(2, map[string]string{"quantidade_onibus": "1.5"}))
	require.Equal(t, []string{"must be a whole number"}, messagesFor(c, "quantidade_onibus"))

	_, c = parseAndValidate(testRow(2, map[string]string{"quantidade_onibus": "0"}))
	require.Empty(t, messagesFor(c, "quantidade_onibus"))
}

func TestInvalidDateIsTypeViolation(t *testing.T) {
	_, c := parseAndValidate(testRow(2, map[string]string{"data_nascimento": "31/02/1996"}))
	require.Equal(t, []string{"must be of type date"}, messagesFor(c, "data_nascimento"))
}

func TestMalformedRowAccumulatesAllDefects(t *testing.T) {
	_, c := parseAndValidate(testRow(2, map[string]string{
		"nome":    "",
		"cpf":     "123",
		"sexo":    "X",
		"email":   "broken@",
		"salario": "0",
	}))

	require.GreaterOrEqual(t, c.Len(), 5,
		"one entry per defect: rules never stop at the first failure")
	require.Len(t, messagesFor(c, "nome"), 1)
	require.Len(t, messagesFor(c, "cpf"), 1)
	require.Len(t, messagesFor(c, "sexo"), 1)
	require.Len(t, messagesFor(c, "email"), 1)
	require.Len(t, messagesFor(c, "salario"), 1)
}

func TestShortRowTreatedAsBlankTrailingCells(t *testing.T) {
	row := testRow(2, nil)
	row.Cells = row.Cells[:2] // nome and cpf only

	_, c := parseAndValidate(row)
	require.Equal(t, []string{"is required"}, messagesFor(c, "sexo"))
	require.Equal(t, []string{"is required"}, messagesFor(c, "salario"))
}
