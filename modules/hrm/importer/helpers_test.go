package importer

import (
	"github.com/iota-uz/hrm-import/pkg/excel"
)

var validCells = map[string]string{
	"nome":               "Maria da Silva",
	"cpf":                "52998224725",
	"rg":                 "123456789",
	"data_nascimento":    "01/03/1990",
	"sexo":               "FEMININO",
	"estado_civil":       "SOLTEIRO",
	"escolaridade":       "SUPERIOR",
	"nome_mae":           "Ana da Silva",
	"nome_pai":           "Jose da Silva",
	"email":              "maria.silva@example.com",
	"telefone":           "1133334444",
	"celular":            "11988887777",
	"endereco":           "Rua das Flores",
	"numero":             "10",
	"complemento":        "",
	"bairro":             "Centro",
	"cidade":             "Sao Paulo",
	"uf":                 "SP",
	"cep":                "01310100",
	"data_admissao":      "02/01/2023",
	"cargo_id":           "1",
	"departamento_id":    "2",
	"classificacao_id":   "3",
	"salario":            "3500.50",
	"carga_horaria":      "44",
	"regime_contratacao": "CLT",
	"turno":              "DIURNO",
	"vale_refeicao":      "25.50",
	"vale_transporte":    "8.80",
	"quantidade_onibus":  "2",
	"altura":             "1.65",
	"peso":               "60",
	"pis":                "12345678901",
	"ctps":               "1234567",
	"possui_deficiencia": "false",
	"banco":              "001",
	"agencia":            "1234",
	"conta":              "567890",
}

// testRow assembles a physical row in column order from the valid baseline
// plus overrides.
func testRow(number int, overrides map[string]string) excel.Row {
	cells := make([]string, len(Columns))
	for i, col := range Columns {
		if v, ok := overrides[col.Name]; ok {
			cells[i] = v
		} else {
			cells[i] = validCells[col.Name]
		}
	}
	return excel.Row{Number: number, Cells: cells}
}

func parseAndValidate(row excel.Row) (ParsedRow, *Collector) {
	c := &Collector{}
	parsed := ParseRow(row, c)
	ApplyRules(parsed, c)
	return parsed, c
}

func messagesFor(c *Collector, field string) []string {
	var out []string
	for _, v := range c.Sorted() {
		if v.Field == field {
			out = append(out, v.Message)
		}
	}
	return out
}
