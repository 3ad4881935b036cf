package excel

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Type declares how a column's raw cells are coerced.
type Type string

const (
	TypeText    Type = "text"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeDate    Type = "date"
)

var ErrCoercion = errors.New("cell value does not match column type")

// Value is a coerced cell. Present is false for blank cells; exactly one of
// the typed fields is meaningful, matching the column Type.
type Value struct {
	Raw     string
	Present bool

	Text   string
	Number decimal.Decimal
	Bool   bool
	Date   time.Time
}

const (
	dateLayoutBR  = "02/01/2006"
	dateLayoutISO = "2006-01-02"
)

// excel serial day 0 is 1899-12-30 in the 1900 date system
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Coerce converts a raw cell into a typed Value. Blank and whitespace-only
// cells coerce to an absent Value for every type. A non-nil error means the
// cell is present but not of the declared type; the caller reports exactly
// one type violation and skips further rules for the field.
func Coerce(raw string, t Type) (Value, error) {
	v := Value{Raw: raw}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return v, nil
	}
	v.Present = true

	switch t {
	case TypeText:
		v.Text = trimmed
		return v, nil
	case TypeNumber:
		num, err := coerceNumber(trimmed)
		if err != nil {
			return Value{Raw: raw, Present: true}, err
		}
		v.Number = num
		return v, nil
	case TypeBoolean:
		b, err := coerceBool(trimmed)
		if err != nil {
			return Value{Raw: raw, Present: true}, err
		}
		v.Bool = b
		return v, nil
	case TypeDate:
		d, err := coerceDate(trimmed)
		if err != nil {
			return Value{Raw: raw, Present: true}, err
		}
		v.Date = d
		return v, nil
	default:
		return Value{Raw: raw, Present: true}, errors.Wrapf(ErrCoercion, "unknown column type %q", t)
	}
}

func coerceNumber(s string) (decimal.Decimal, error) {
	// comma decimal separators are rejected, not converted
	if strings.Contains(s, ",") {
		return decimal.Decimal{}, ErrCoercion
	}
	num, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrCoercion
	}
	return num, nil
}

func coerceBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	// native workbook booleans arrive as 1/0 when cells are read raw
	case s == "1":
		return true, nil
	case s == "0":
		return false, nil
	}
	return false, ErrCoercion
}

func coerceDate(s string) (time.Time, error) {
	// time.Parse range-checks the calendar, so 31/02 fails here even
	// though it is syntactically well-formed
	if d, err := time.Parse(dateLayoutBR, s); err == nil {
		return d, nil
	}
	if d, err := time.Parse(dateLayoutISO, s); err == nil {
		return d, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		return dateFromSerial(serial), nil
	}
	return time.Time{}, ErrCoercion
}

func dateFromSerial(serial float64) time.Time {
	d := serialEpoch.AddDate(0, 0, int(serial))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
