// Package inputval validates request DTOs with go-playground/validator.
//
// Handlers declare constraints with `validate` struct tags and call Struct;
// the first failing field is turned into the short client-facing message the
// API has always used ("Missing fields", "User ID required", ...), supplied
// per call site.
package inputval

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` tags. It returns nil when v is
// valid; otherwise the validator's error, which callers usually collapse to a
// fixed message.
func Struct(v any) error {
	return validate.Struct(v)
}
