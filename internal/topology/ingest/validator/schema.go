package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/observatory/internal/topology/ingest/parser"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// report paths the way they are spelled in the source document
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the basic shape of a parsed topology document: every record
// is named and every connection has a source and non-empty target names.
// Name uniqueness and connection resolution are left to the graph builder,
// which skips offending entries instead of rejecting the document.
func Validate(f *parser.YFile) error {
	if f == nil {
		return fmt.Errorf("topology document is nil")
	}
	if err := validate.Struct(f); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make([]error, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "YFile.")
		switch e.Tag() {
		case "required":
			out = append(out, fmt.Errorf("%s: field is required", field))
		default:
			out = append(out, fmt.Errorf("%s: validation failed (%s)", field, e.Tag()))
		}
	}
	return fmt.Errorf("invalid topology document: %w", errors.Join(out...))
}
