// Package validate provides configuration validation utilities for gns3util.
//
// This file implements common validation patterns shared by the config and
// handler packages.
package validate

import (
	"fmt"
	"time"
)

// ValidateRequiredString validates that a string field is not empty.
// Used for positional identifiers so that an empty id never turns an item
// lookup into a collection listing.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
