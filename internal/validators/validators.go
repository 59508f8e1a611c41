// Package validators checks incoming request bodies against the declared
// shape of each resource kind before the request reaches a handler.
//
// A validator never stops at the first problem: it collects every violation
// so the client gets the full picture in one response. Messages are written
// for API clients and name the offending field ("Title can not be empty").
package validators

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator checks a raw JSON request body.
//
// The returned slice holds one human-readable message per violation and is
// empty when the body is valid. A non-nil error means the body could not be
// decoded as JSON at all.
type Validator interface {
	Validate(body []byte) ([]string, error)
}

// Validators bundles one validator per validated route group.
type Validators struct {
	Auth       Validator
	Credential Validator
	Card       Validator
	Note       Validator
	Wifi       Validator
}

// NewValidators constructs the full validator set.
func NewValidators() *Validators {
	return &Validators{
		Auth:       &authValidator{},
		Credential: &credentialValidator{},
		Card:       &cardValidator{},
		Note:       &noteValidator{},
		Wifi:       &wifiValidator{},
	}
}

// decode unmarshals body into target, reporting malformed JSON as an error.
func decode(body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	return nil
}

// requiredString appends a violation when value is missing or blank after
// trimming. Returns the trimmed value and whether it is present. The field
// name is the client-facing display name ("Title", "Printed name").
func requiredString(violations *[]string, field string, value *string) (string, bool) {
	if value == nil {
		*violations = append(*violations, field+" is required")
		return "", false
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		*violations = append(*violations, field+" can not be empty")
		return "", false
	}

	return trimmed, true
}
