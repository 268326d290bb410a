package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bracurobu/traction-intake/internal/dtos"
	"github.com/bracurobu/traction-intake/internal/models"
)

// FieldErrors maps a form field name to one user-facing message. An empty map
// means every field passed.
type FieldErrors map[string]string

// Schema is the compiled registration-form validator. It is pure: no I/O, no
// mutation of the input, safe to re-run on every change.
type Schema struct {
	v *validator.Validate
}

// NewSchema compiles the field rules once, including the deployment-specific
// option sets (departments, RS batches, blood groups).
func NewSchema() *Schema {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Surface errors under the form's json field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Departments, fl.Field().String())
	}))
	must(v.RegisterValidation("rs_batch", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.RSBatches, fl.Field().String())
	}))
	must(v.RegisterValidation("blood_group", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.BloodGroups, fl.Field().String())
	}))

	return &Schema{v: v}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate runs every field rule and returns per-field messages. Errors never
// block unrelated fields; each failing field gets exactly one message.
func (s *Schema) Validate(req *dtos.RegistrationRequest) FieldErrors {
	fieldErrs := FieldErrors{}

	err := s.v.Struct(req)
	if err == nil {
		return fieldErrs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Should not happen for a well-formed struct; surface it somewhere
		// visible rather than swallowing.
		fieldErrs["_form"] = err.Error()
		return fieldErrs
	}

	for _, fe := range verrs {
		if _, seen := fieldErrs[fe.Field()]; !seen {
			fieldErrs[fe.Field()] = message(fe)
		}
	}
	return fieldErrs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case "name":
			return "Name is required."
		case "facebook_profile":
			return "Facebook profile url cannot be empty."
		}
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "url":
		return "Invalid url."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "datetime":
		return "Invalid date, expected YYYY-MM-DD."
	case "oneof":
		return "Invalid selection."
	case "department":
		return "Unknown department."
	case "rs_batch":
		return "Unknown RS batch."
	case "blood_group":
		return "Unknown blood group."
	}
	return "Invalid value."
}
