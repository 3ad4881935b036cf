package excel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCoerceText(t *testing.T) {
	v, err := Coerce("  Maria da Silva  ", TypeText)
	require.NoError(t, err)
	require.True(t, v.Present)
	require.Equal(t, "Maria da Silva", v.Text)
}

func TestCoerceBlankIsAbsent(t *testing.T) {
	for _, typ := range []Type{TypeText, TypeNumber, TypeBoolean, TypeDate} {
		for _, raw := range []string{"", "   ", "\t"} {
			v, err := Coerce(raw, typ)
			require.NoError(t, err)
			require.False(t, v.Present, "type %s raw %q", typ, raw)
		}
	}
}

func TestCoerceNumber(t *testing.T) {
	v, err := Coerce("1234.56", TypeNumber)
	require.NoError(t, err)
	require.Equal(t, "1234.56", v.Number.String())

	v, err = Coerce("-1", TypeNumber)
	require.NoError(t, err, "negative values pass coercion, range rules reject them later")
	require.Equal(t, "-1", v.Number.String())

	_, err = Coerce("1234,56", TypeNumber)
	require.Error(t, err, "comma decimal separators are not accepted")

	_, err = Coerce("abc", TypeNumber)
	require.Error(t, err)
}

func TestCoerceBoolean(t *testing.T) {
	for raw, want := range map[string]bool{
		"true": true, "TRUE": true, "False": false, "1": true, "0": false,
	} {
		v, err := Coerce(raw, TypeBoolean)
		require.NoError(t, err, raw)
		require.Equal(t, want, v.Bool, raw)
	}

	_, err := Coerce("yes", TypeBoolean)
	require.Error(t, err)
}

func TestCoerceDate(t *testing.T) {
	v, err := Coerce("25/12/1995", TypeDate)
	require.NoError(t, err)
	require.Equal(t, time.Date(1995, time.December, 25, 0, 0, 0, 0, time.UTC), v.Date)

	v, err = Coerce("1995-12-25", TypeDate)
	require.NoError(t, err)
	require.Equal(t, 1995, v.Date.Year())
}

func TestCoerceDateSerial(t *testing.T) {
	// 2023-01-01 is serial 44927 in the 1900 date system
	v, err := Coerce("44927", TypeDate)
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), v.Date)
}

func TestCoerceDateRejectsInvalidCalendarDates(t *testing.T) {
	for _, raw := range []string{"31/02/1996", "2023-02-31", "32/01/2000", "notadate"} {
		_, err := Coerce(raw, TypeDate)
		require.Error(t, err, raw)
	}
}
