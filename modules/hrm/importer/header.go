package importer

import "strings"

// HeaderContractMessage is the whole-request rejection for a bad header.
// No row-level detail is possible: field positions cannot be trusted.
const HeaderContractMessage = "required header is missing or incorrect"

// CheckHeader verifies the first row against the required ordered column
// set. Names are compared case-insensitively after trimming; missing,
// extra, misspelled or reordered columns all fail the contract.
func CheckHeader(header []string) bool {
	if len(header) != len(Columns) {
		return false
	}
	for i, col := range Columns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col.Name) {
			return false
		}
	}
	return true
}
