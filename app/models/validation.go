package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages reported to clients.
const (
	MsgEmpty      = "The field cannot be empty"
	MsgNotString  = "The field must be a string"
	MsgInvalidURL = "URL does not meet requirements"
)

// youtubeURLPattern accepts an optional scheme, a host with a dotted label,
// an optional path and an optional query string.
var youtubeURLPattern = regexp.MustCompile(`^(https?://)?([\w.]+)\.([a-z]{2,6}\.?)(/[\w.]*)*/?(\?[\w.~%&=+-]*)?$`)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("youtubeurl", func(fl validator.FieldLevel) bool {
		return youtubeURLPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// FieldError describes why a request was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError returns a FieldError for field.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// ValidURL reports whether s satisfies the youtubeUrl format.
func ValidURL(s string) bool {
	return youtubeURLPattern.MatchString(s)
}

// validateStruct runs the struct tags of s and converts the first failure,
// in field declaration order, into a FieldError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}
	fe := validationErrs[0]
	return NewFieldError(fe.Field(), messageFor(fe))
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "youtubeurl":
		return MsgInvalidURL
	case "required":
		if fe.Kind() == reflect.Ptr && fe.Type().Elem().Kind() == reflect.String {
			return MsgNotString
		}
		return MsgEmpty
	}
	return fmt.Sprintf("The field failed the '%s' check", fe.Tag())
}

// DecodeError converts a JSON decoding failure into a FieldError. Type
// mismatches name the offending field.
func DecodeError(err error) *FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return NewFieldError(typeErr.Field, fmt.Sprintf("The field must be of type %s", jsonKind(typeErr.Type)))
	}
	return NewFieldError("", "Invalid JSON body")
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	}
	return t.Kind().String()
}
