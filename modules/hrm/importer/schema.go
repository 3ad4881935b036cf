package importer

import (
	"github.com/iota-uz/hrm-import/pkg/excel"
)

// Column declares one position of the upload contract. Order in Columns is
// the physical column order of the template and the tiebreak order for
// violation reporting.
type Column struct {
	Name     string
	Type     excel.Type
	Required bool
}

var Columns = []Column{
	{Name: "nome", Type: excel.TypeText, Required: true},
	{Name: "cpf", Type: excel.TypeText, Required: true},
	{Name: "rg", Type: excel.TypeText},
	{Name: "data_nascimento", Type: excel.TypeDate},
	{Name: "sexo", Type: excel.TypeText, Required: true},
	{Name: "estado_civil", Type: excel.TypeText},
	{Name: "escolaridade", Type: excel.TypeText},
	{Name: "nome_mae", Type: excel.TypeText},
	{Name: "nome_pai", Type: excel.TypeText},
	{Name: "email", Type: excel.TypeText},
	{Name: "telefone", Type: excel.TypeText},
	{Name: "celular", Type: excel.TypeText},
	{Name: "endereco", Type: excel.TypeText},
	{Name: "numero", Type: excel.TypeText},
	{Name: "complemento", Type: excel.TypeText},
	{Name: "bairro", Type: excel.TypeText},
	{Name: "cidade", Type: excel.TypeText},
	{Name: "uf", Type: excel.TypeText},
	{Name: "cep", Type: excel.TypeText},
	{Name: "data_admissao", Type: excel.TypeDate, Required: true},
	{Name: "cargo_id", Type: excel.TypeNumber, Required: true},
	{Name: "departamento_id", Type: excel.TypeNumber, Required: true},
	{Name: "classificacao_id", Type: excel.TypeNumber},
	{Name: "salario", Type: excel.TypeNumber, Required: true},
	{Name: "carga_horaria", Type: excel.TypeNumber, Required: true},
	{Name: "regime_contratacao", Type: excel.TypeText},
	{Name: "turno", Type: excel.TypeText},
	{Name: "vale_refeicao", Type: excel.TypeNumber, Required: true},
	{Name: "vale_transporte", Type: excel.TypeNumber, Required: true},
	{Name: "quantidade_onibus", Type: excel.TypeNumber, Required: true},
	{Name: "altura", Type: excel.TypeNumber},
	{Name: "peso", Type: excel.TypeNumber},
	{Name: "pis", Type: excel.TypeText},
	{Name: "ctps", Type: excel.TypeText},
	{Name: "possui_deficiencia", Type: excel.TypeBoolean},
	{Name: "banco", Type: excel.TypeText},
	{Name: "agencia", Type: excel.TypeText},
	{Name: "conta", Type: excel.TypeText},
}

var columnOrder = func() map[string]int {
	m := make(map[string]int, len(Columns))
	for i, col := range Columns {
		m[col.Name] = i
	}
	return m
}()

// RequiredHeader returns the exact ordered header the upload must carry.
func RequiredHeader() []string {
	names := make([]string, len(Columns))
	for i, col := range Columns {
		names[i] = col.Name
	}
	return names
}
