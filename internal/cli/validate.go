package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Use flag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("flag")
	})

	return v
}

// Validate checks the flags that only accept a fixed set of values
func (f *Flags) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("--%s must be one of: %s (got %q)",
				fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "), fmt.Sprint(fe.Value())))
		case "required":
			msgs = append(msgs, fmt.Sprintf("--%s must not be empty", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("--%s: invalid value %v", fe.Field(), fe.Value()))
		}
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}
