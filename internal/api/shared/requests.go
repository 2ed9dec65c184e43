package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every request type; validator instances cache
// parsed struct metadata, so a single one is reused.
var validate = validator.New()

// Validatable is implemented by request types whose validation goes beyond
// what struct tags can express.
type Validatable interface {
	Validate() error
}

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// ValidateRequest validates a decoded request, preferring the type's own
// Validate method over struct-tag validation when it has one.
func ValidateRequest(v any) error {
	if val, ok := v.(Validatable); ok {
		return val.Validate()
	}
	return validate.Struct(v)
}
