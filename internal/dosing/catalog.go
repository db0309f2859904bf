package dosing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Catalog is the ordered list of fertilizers available for dosing.
type Catalog []Fertilizer

// DefaultCatalog returns a fresh copy of the stock PMDD catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "Azoto NK Plus", Concentration: 23.98, Effect: EffectNitrate},
		{Name: "Magnesio PMDD", Concentration: 2.47, Effect: EffectMagnesium},
		{Name: "Ferro PMDD", Concentration: 20, Effect: EffectIron},
		{Name: "Cifo Fosforo (azoto ureico)", Concentration: 1.81, Effect: EffectPhosphate},
	}
}

// ByEffect returns the first fertilizer with the given effect.
func (c Catalog) ByEffect(effect Effect) (Fertilizer, bool) {
	for _, f := range c {
		if f.Effect == effect {
			return f, true
		}
	}
	return Fertilizer{}, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("effect", func(fl validator.FieldLevel) bool {
		_, err := ParseEffect(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks every entry: a name, a known effect and a positive
// concentration. All problems are reported together.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return errors.New("catalog is empty")
	}
	var errs []error
	for i, f := range c {
		err := validate.Struct(f)
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		for _, fe := range fieldErrs {
			errs = append(errs, entryError(i, f, fe))
		}
	}
	return errors.Join(errs...)
}

// entryError turns a validator failure into a message naming the entry.
func entryError(i int, f Fertilizer, fe validator.FieldError) error {
	switch fe.Field() {
	case "Name":
		return fmt.Errorf("entry %d: missing name", i)
	case "Effect":
		_, err := ParseEffect(string(f.Effect))
		return fmt.Errorf("entry %d (%s): %w", i, f.Name, err)
	case "Concentration":
		return fmt.Errorf("entry %d (%s): concentration must be > 0, got %v", i, f.Name, f.Concentration)
	default:
		return fmt.Errorf("entry %d (%s): %s fails %q", i, f.Name, fe.Field(), fe.Tag())
	}
}

// Normalize returns a copy with effect names canonicalized, so that
// hand-written config values like "fe" or "no3-" match the calculator.
func (c Catalog) Normalize() Catalog {
	out := make(Catalog, len(c))
	for i, f := range c {
		if e, err := ParseEffect(string(f.Effect)); err == nil {
			f.Effect = e
		}
		f.Name = strings.TrimSpace(f.Name)
		out[i] = f
	}
	return out
}
