package dosing

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Input is the raw text of the calculator form, as typed by the user.
type Input struct {
	Volume string
	NO3    string
	PO4    string
	Fe     string
	KH     string
	GH     string
}

// Measured parses the water test fields with leading-number semantics.
func (in Input) Measured() MeasuredValues {
	return MeasuredValues{
		NO3: ParseReading(in.NO3),
		PO4: ParseReading(in.PO4),
		Fe:  ParseReading(in.Fe),
		KH:  ParseReading(in.KH),
		GH:  ParseReading(in.GH),
	}
}

// ParseVolume parses the tank volume strictly: the whole trimmed field must be
// a finite number. A comma is accepted as decimal separator. Zero and negative
// values are numbers and therefore accepted.
func ParseVolume(s string) (float64, bool) {
	s = normalizeDecimal(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseReading reads the longest numeric prefix of s, ignoring leading
// whitespace and any trailing garbage ("7.5 mg/l" reads as 7.5). A field
// without a leading number is Absent.
func ParseReading(s string) Reading {
	s = normalizeDecimal(strings.TrimLeftFunc(s, unicode.IsSpace))
	n := numericPrefix(s)
	if n == 0 {
		return Absent
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil || math.IsInf(v, 0) {
		return Absent
	}
	return Value(v)
}

// numericPrefix returns the length of the decimal float literal at the start
// of s, or 0 if there is none.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			end = j
		}
	}
	return end
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// normalizeDecimal turns the first comma into a dot so "1,5" reads as 1.5.
func normalizeDecimal(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return strings.Replace(s, ",", ".", 1)
}
