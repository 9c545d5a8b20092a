package fixtures

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"fundsmart/internal/core"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(yamlFieldName)
	_ = validate.RegisterValidation("finite", isFinite)
	_ = validate.RegisterValidation("riskscore", isRiskScore)
}

// Validate checks the dataset preconditions that the formatting layer
// relies on: finite numbers, present dates, scores within range, and
// authored risk labels that agree with ClassifyRisk. All failures are
// reported together.
func Validate(d *Dataset) error {
	var problems []string

	if err := validate.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
		}
		for _, fe := range fieldErrs {
			problems = append(problems, fieldMessage(fe))
		}
	}

	for i, f := range d.Risk.Factors {
		if f.Impact == "" {
			continue
		}
		level, ok := core.ParseRiskLevel(f.Impact)
		if !ok {
			problems = append(problems, fmt.Sprintf("risk.factors[%d].impact: unknown level %q", i, f.Impact))
			continue
		}
		if want := core.ClassifyRisk(f.Score); level != want {
			problems = append(problems, fmt.Sprintf("risk.factors[%d].impact: %q does not match score %d (%s)", i, f.Impact, f.Score, want))
		}
	}

	width := len(d.AllocationHistory.Classes)
	for i, m := range d.AllocationHistory.Months {
		if len(m.Values) != width {
			problems = append(problems, fmt.Sprintf("allocation_history.months[%d]: %d values for %d classes", i, len(m.Values), width))
		}
	}

	seen := make(map[string]bool, len(d.Transactions))
	for i, tx := range d.Transactions {
		if seen[tx.ID] {
			problems = append(problems, fmt.Sprintf("transactions[%d].id: duplicate %q", i, tx.ID))
		}
		seen[tx.ID] = true
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrInvalidDataset, strings.Join(problems, "\n- "))
	}
	return nil
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		v := f.Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	return true
}

func isRiskScore(fl validator.FieldLevel) bool {
	return core.ValidateRiskScore(int(fl.Field().Int())) == nil
}

func yamlFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func fieldMessage(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", path)
	case "finite":
		return fmt.Sprintf("%s: must be a finite number", path)
	case "riskscore":
		return fmt.Sprintf("%s: must be between %d and %d", path, core.MinRiskScore, core.MaxRiskScore)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", path, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte", "gt", "lte", "lt":
		return fmt.Sprintf("%s: must be %s %s", path, fe.Tag(), fe.Param())
	case "len":
		return fmt.Sprintf("%s: must have length %s", path, fe.Param())
	default:
		return fmt.Sprintf("%s: failed validation: %s", path, fe.Tag())
	}
}
