package taguchi

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	maxFactorNameBytes = 63
	maxLevelValueBytes = 127
	maxFactors         = 41
	minLevels          = 2
	maxLevels          = 27
)

var arrayNamePattern = regexp.MustCompile(`^L[0-9]+$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("array_name", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return true
			}
			return arrayNamePattern.MatchString(s)
		})
	})
	return validate
}

// Factor is a named discrete input variable with an ordered list of level
// values (§3). Level values are opaque strings; the library never
// interprets them. Level indices are 0-based internally.
type Factor struct {
	Name   string   `validate:"required,max=63"`
	Levels []string `validate:"min=2,max=27,dive,max=127"`
}

// ExperimentDefinition is an ordered list of factors plus an optional array
// name (§3). Insertion order of Factors is part of the definition: column
// assignment in the design package proceeds in that order. Definitions are
// built once (via NewExperimentDefinition) and are immutable thereafter by
// convention — callers should not mutate Factors after construction.
type ExperimentDefinition struct {
	Factors   []Factor `validate:"required,min=1,max=41,dive"`
	ArrayName string   `validate:"omitempty,array_name"`
}

// NewExperimentDefinition validates factors and the optional array name and
// returns an immutable ExperimentDefinition. arrayName may be empty to
// request auto-selection (§4.3).
func NewExperimentDefinition(factors []Factor, arrayName string) (*ExperimentDefinition, error) {
	def := &ExperimentDefinition{
		Factors:   append([]Factor(nil), factors...),
		ArrayName: arrayName,
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// Validate checks the struct-level bounds via go-playground/validator and
// the cross-field invariants (non-empty level values, name uniqueness) that tags
// alone cannot express.
func (d *ExperimentDefinition) Validate() error {
	if len(d.Factors) == 0 {
		return ErrNoFactors
	}
	if len(d.Factors) > maxFactors {
		return fmt.Errorf("%w: got %d", ErrTooManyFactors, len(d.Factors))
	}
	if d.ArrayName != "" && !arrayNamePattern.MatchString(d.ArrayName) {
		return fmt.Errorf("%w: %q", ErrArrayNameInvalid, d.ArrayName)
	}

	if err := getValidator().Struct(d); err != nil {
		return translateValidationErr(err)
	}

	seen := make(map[string]struct{}, len(d.Factors))
	for _, f := range d.Factors {
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateFactorName, f.Name)
		}
		seen[f.Name] = struct{}{}
		for _, v := range f.Levels {
			if v == "" {
				return fmt.Errorf("%w: factor %q", ErrLevelValueEmpty, f.Name)
			}
		}
	}
	return nil
}

// translateValidationErr maps the first go-playground/validator field error
// to the matching package sentinel so callers can use errors.Is regardless
// of which bound tripped.
func translateValidationErr(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	// A diven slice element (a single Levels[i] string) reports Kind() as
	// reflect.String; the slice-length check itself reports Kind() Slice.
	elementLevel := fe.Kind().String() == "string" && strings.HasPrefix(fe.StructField(), "Levels[")
	switch {
	case fe.StructField() == "Name" && fe.Tag() == "required":
		return ErrFactorNameEmpty
	case fe.StructField() == "Name" && fe.Tag() == "max":
		return fmt.Errorf("%w: max %d bytes", ErrFactorNameTooLong, maxFactorNameBytes)
	case elementLevel && fe.Tag() == "max":
		return fmt.Errorf("%w: max %d bytes", ErrLevelValueTooLong, maxLevelValueBytes)
	case fe.StructField() == "Levels" && (fe.Tag() == "min" || fe.Tag() == "max"):
		return fmt.Errorf("%w: want %d-%d", ErrFactorLevelCount, minLevels, maxLevels)
	case fe.StructField() == "Factors":
		return fmt.Errorf("%w: %s", ErrNoFactors, fe.Tag())
	default:
		return fmt.Errorf("taguchi: validation failed on field %s (tag %s)", fe.Namespace(), fe.Tag())
	}
}

// MaxLevel returns the largest level count across all factors.
func (d *ExperimentDefinition) MaxLevel() int {
	max := 0
	for _, f := range d.Factors {
		if len(f.Levels) > max {
			max = len(f.Levels)
		}
	}
	return max
}
