// Package dosing computes PMDD fertilizer doses from water test results.
//
// The calculation compares the measured NO3/PO4 mass ratio against the
// Redfield target of 10:1 and suggests the single fertilizer that moves the
// tank toward it, plus an independent iron top-up. Everything here is a pure
// function of its inputs: no I/O, no shared state, no goroutines.
package dosing

import (
	"fmt"
	"strings"
)

// Effect identifies the nutrient a fertilizer corrects.
type Effect string

const (
	EffectNitrate   Effect = "NO3-"
	EffectPhosphate Effect = "PO4-"
	EffectMagnesium Effect = "Mg+"
	EffectIron      Effect = "Fe"
)

// Effects lists every known effect in catalog order.
var Effects = []Effect{EffectNitrate, EffectMagnesium, EffectIron, EffectPhosphate}

// ParseEffect maps a user supplied effect name to an Effect.
func ParseEffect(s string) (Effect, error) {
	s = strings.TrimSpace(s)
	for _, e := range Effects {
		if strings.EqualFold(s, string(e)) {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown effect %q (valid: %v)", s, Effects)
}

// Fertilizer is one bottle of the dosing catalog.
type Fertilizer struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	// Concentration is mg/l of the tracked nutrient delivered by 1 ml in 1 l of water.
	Concentration float64 `yaml:"concentration" json:"concentration" validate:"gt=0"`
	Effect        Effect  `yaml:"effect" json:"effect" validate:"effect"`
}

// Reading is a measured value that may be absent.
type Reading struct {
	Value float64
	Valid bool
}

// Value returns a valid reading.
func Value(v float64) Reading { return Reading{Value: v, Valid: true} }

// Absent is the zero reading.
var Absent = Reading{}

// Or returns the reading's value, or def when the reading is absent.
func (r Reading) Or(def float64) float64 {
	if !r.Valid {
		return def
	}
	return r.Value
}

// MeasuredValues holds the water test results of one calculation.
// KH and GH are collected for completeness but no formula reads them.
type MeasuredValues struct {
	NO3 Reading
	PO4 Reading
	Fe  Reading
	KH  Reading
	GH  Reading
}

// DoseRecommendation is one fertilizer to add, with the dose already rounded
// to two decimals.
type DoseRecommendation struct {
	FertilizerName string  `json:"fertilizer_name"`
	DoseMl         float64 `json:"dose_ml"`
	Effect         Effect  `json:"effect"`
}

// Result is the output of one calculation.
type Result struct {
	Message         string               `json:"message"`
	Recommendations []DoseRecommendation `json:"recommendations"`
}

// Has reports whether the result carries a recommendation for effect.
func (r Result) Has(effect Effect) bool {
	_, ok := r.For(effect)
	return ok
}

// For returns the recommendation for effect, if any.
func (r Result) For(effect Effect) (DoseRecommendation, bool) {
	for _, rec := range r.Recommendations {
		if rec.Effect == effect {
			return rec, true
		}
	}
	return DoseRecommendation{}, false
}

// Lines splits the message into its display lines.
func (r Result) Lines() []string {
	if r.Message == "" {
		return nil
	}
	return strings.Split(r.Message, "\n")
}
