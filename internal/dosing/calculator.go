package dosing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// IdealRatio is the Redfield NO3/PO4 mass ratio the calculator aims for.
	IdealRatio = 10.0
	// LowerBand and UpperBand bound the balanced range, both inclusive.
	LowerBand = 9.5
	UpperBand = 10.5

	// IronThreshold is the level below which iron is topped up to IronTarget (mg/l).
	IronThreshold = 0.03
	IronTarget    = 0.05
)

const (
	msgInvalidRatio = "⚠️ Insert valid values for NO3 and PO4."
	msgBalanced     = "✅ The NO₃/PO₄ ratio is already balanced."
)

var nutrientLabels = map[Effect]string{
	EffectNitrate:   "Nitrogen (NO₃⁻)",
	EffectPhosphate: "Phosphorus (PO₄³⁻)",
	EffectIron:      "Iron (Fe)",
}

// Calculate parses the raw form fields and runs Compute. It returns false,
// and no result, when the volume is empty or not a number; callers keep
// whatever they displayed before.
func Calculate(in Input, catalog Catalog) (Result, bool) {
	volume, ok := ParseVolume(in.Volume)
	if !ok {
		return Result{}, false
	}
	return Compute(volume, in.Measured(), catalog), true
}

// Compute returns the dosing advice for a tank of volume liters.
//
// The ratio branch yields at most one of the NO3-/PO4- corrections; the iron
// branch is evaluated independently and its recommendation, if any, always
// comes last. An absent Fe reading counts as zero.
func Compute(volume float64, m MeasuredValues, catalog Catalog) Result {
	var (
		lines []string
		recs  []DoseRecommendation
	)
	add := func(effect Effect, mg float64) {
		line, rec, ok := dose(effect, mg, volume, catalog)
		lines = append(lines, line)
		if ok {
			recs = append(recs, rec)
		}
	}

	if m.NO3.Valid && m.PO4.Valid && m.PO4.Value > 0 {
		no3, po4 := m.NO3.Value, m.PO4.Value
		ratio := no3 / po4
		lines = append(lines, fmt.Sprintf("🔎 Redfield ratio NO₃/PO₄ = %s (ideal ≈ %g)", FormatFixed(ratio, 1), IdealRatio))
		switch {
		case ratio < LowerBand:
			add(EffectNitrate, po4*IdealRatio-no3)
		case ratio > UpperBand:
			add(EffectPhosphate, no3/IdealRatio-po4)
		default:
			lines = append(lines, msgBalanced)
		}
	} else {
		lines = append(lines, msgInvalidRatio)
	}

	if fe := m.Fe.Or(0); fe < IronThreshold {
		add(EffectIron, IronTarget-fe)
	}

	return Result{
		Message:         strings.TrimSpace(strings.Join(lines, "\n")),
		Recommendations: recs,
	}
}

// dose converts a deficit in mg/l into ml of the catalog entry for effect.
func dose(effect Effect, mg, volume float64, catalog Catalog) (string, DoseRecommendation, bool) {
	f, ok := catalog.ByEffect(effect)
	if !ok {
		return fmt.Sprintf("⚠️ No fertilizer in the catalog corrects %s.", effect), DoseRecommendation{}, false
	}
	ml := Round2(mg * volume / f.Concentration)
	if math.IsInf(ml, 0) {
		return fmt.Sprintf("⚠️ The %s dose for this volume is out of range.", effect), DoseRecommendation{}, false
	}
	line := fmt.Sprintf("💡 Add **%s**: %s mg/l → **%s ml** of %s", nutrientLabels[effect], FormatFixed(mg, 2), FormatFixed(ml, 2), f.Name)
	return line, DoseRecommendation{FertilizerName: f.Name, DoseMl: ml, Effect: effect}, true
}

// Round2 rounds to two decimals the same way the message prints the value,
// so the number in a recommendation always matches its text.
func Round2(x float64) float64 {
	v, err := strconv.ParseFloat(FormatFixed(x, 2), 64)
	if err != nil {
		return x
	}
	return v
}

// FormatFixed prints x with the given number of decimals. Ties are rounded
// away from zero, judged on the exact binary value of x: 0.125 prints as
// 0.13 while 1.005 (stored as 1.00499...) prints as 1.00.
func FormatFixed(x float64, decimals int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) || decimals < 0 {
		return strconv.FormatFloat(x, 'f', decimals, 64)
	}

	// 1074 fractional digits hold any float64 exactly.
	exact := strconv.FormatFloat(math.Abs(x), 'f', 1074, 64)
	point := strings.IndexByte(exact, '.')
	digits := []byte(exact[:point] + exact[point+1:point+1+decimals])
	if exact[point+1+decimals] >= '5' {
		digits = roundUp(digits)
	}

	intLen := len(digits) - decimals
	var sb strings.Builder
	if x < 0 {
		sb.WriteByte('-')
	}
	sb.Write(digits[:intLen])
	if decimals > 0 {
		sb.WriteByte('.')
		sb.Write(digits[intLen:])
	}
	return sb.String()
}

// roundUp adds one to a string of decimal digits.
func roundUp(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}
