package app

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"ip-twin.klederson.com/internal/config"
	"ip-twin.klederson.com/internal/ui"
)

type fieldID int

const (
	fieldCurrent fieldID = iota
	fieldZeroError
	fieldSpanError
	fieldZeroCal
	fieldSpanCal
	fieldCount
)

var fieldDefs = [fieldCount]struct {
	label   string
	section string
	initial string
}{
	fieldCurrent:   {"Current (mA)", "SETPOINT", "4.00"},
	fieldZeroError: {"Zero error (psi)", "FAULTS", "0.0"},
	fieldSpanError: {"Span error (%)", "", "0.0"},
	fieldZeroCal:   {"Zero @4mA (psi)", "CALIBRATION", fmt.Sprintf("%.1f", config.DefaultZeroCal)},
	fieldSpanCal:   {"Span @20mA (psi)", "", fmt.Sprintf("%.1f", config.DefaultSpanCal)},
}

// ErrNotNumber is returned for field text that is not a finite number.
var ErrNotNumber = errors.New("not a number")

func newFields() []textinput.Model {
	fields := make([]textinput.Model, fieldCount)
	for i, def := range fieldDefs {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 16
		in.Width = 10
		in.SetValue(def.initial)
		fields[i] = in
	}
	return fields
}

func fieldViews(fields []textinput.Model, focus int) []ui.FieldView {
	views := make([]ui.FieldView, len(fields))
	for i, f := range fields {
		views[i] = ui.FieldView{
			Label:   fieldDefs[i].label,
			Input:   f.View(),
			Focused: i == focus,
			Section: fieldDefs[i].section,
		}
	}
	return views
}

// parseValue reads a finite decimal number from field text.
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is %w", s, ErrNotNumber)
	}
	return v, nil
}
