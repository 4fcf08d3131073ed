package kernel

import (
	"encoding/json"

	"marketplace/internal/pkg/errs"
)

// maxJSONSpecLength bounds the serialized size of a product specification.
const maxJSONSpecLength = 10000

// JsonSpec is a value object holding a structured product specification as a
// validated JSON document. It is immutable and compared by its serialized form.
type JsonSpec struct {
	value string
}

// NewJsonSpec validates and wraps a JSON document.
// The document must be non-empty well-formed JSON of at most 10000 characters.
func NewJsonSpec(value string) (JsonSpec, error) {
	if value == "" {
		return JsonSpec{}, errs.NewValueIsRequiredError("jsonSpec")
	}
	if len(value) > maxJSONSpecLength {
		return JsonSpec{}, errs.NewValueIsOutOfRangeError("jsonSpec length", len(value), 1, maxJSONSpecLength)
	}
	if !json.Valid([]byte(value)) {
		return JsonSpec{}, errs.NewValueIsInvalidError("jsonSpec")
	}

	return JsonSpec{value: value}, nil
}

// String returns the serialized JSON document.
func (s JsonSpec) String() string {
	return s.value
}

// IsZero reports whether the spec is the absent zero value.
func (s JsonSpec) IsZero() bool {
	return s.value == ""
}

// IsEqual compares two specs by their serialized form.
func (s JsonSpec) IsEqual(other JsonSpec) bool {
	return s.value == other.value
}
