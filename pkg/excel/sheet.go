package excel

import (
	"bytes"
	"strings"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

var ErrEmptyWorkbook = errors.New("workbook has no sheets or no header row")

// Row is one physical spreadsheet row. Number is 1-based against the
// original file, so the header is row 1 and the first data row is row 2.
type Row struct {
	Number int
	Cells  []string
}

type Sheet struct {
	Header []string
	Rows   []Row
}

// OpenSheet reads the first worksheet of an xlsx file. Cells are returned
// raw (unformatted), so native dates arrive as serial numbers and native
// booleans as 1/0; Coerce handles both forms.
func OpenSheet(data []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read worksheet")
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	out := &Sheet{Header: rows[0]}
	for i, cells := range rows[1:] {
		out.Rows = append(out.Rows, Row{Number: i + 2, Cells: cells})
	}
	out.Rows = trimTrailingBlank(out.Rows)
	return out, nil
}

// trimTrailingBlank drops formatting residue below the data: rows where
// every cell is blank.
func trimTrailingBlank(rows []Row) []Row {
	end := len(rows)
	for end > 0 && isBlank(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func isBlank(r Row) bool {
	for _, c := range r.Cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
