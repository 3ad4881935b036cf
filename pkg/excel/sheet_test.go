package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows ...[]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func TestOpenSheet(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"a", "b"},
		[]string{"1", "2"},
		[]string{"3", "4"},
	)

	sheet, err := OpenSheet(data)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, sheet.Header)
	require.Len(t, sheet.Rows, 2)
	require.Equal(t, 2, sheet.Rows[0].Number, "first data row is physical row 2")
	require.Equal(t, 3, sheet.Rows[1].Number)
}

func TestOpenSheetTrimsTrailingBlankRows(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"a"},
		[]string{"1"},
		[]string{""},
		[]string{"  "},
	)

	sheet, err := OpenSheet(data)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)
}

func TestOpenSheetRejectsGarbage(t *testing.T) {
	_, err := OpenSheet([]byte("not a workbook"))
	require.Error(t, err)
}
