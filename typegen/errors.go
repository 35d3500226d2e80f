// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package typegen

// ValidationError reports malformed input: an OpenAPI document that does not
// have the expected shape, an invalid identifier, or an invalid option.
type ValidationError struct {
	Field string
	Err   error
}

func (err ValidationError) Error() string {
	if err.Field == "" {
		return "validation failed: " + err.Err.Error()
	}
	return err.Field + ": " + err.Err.Error()
}

func (err ValidationError) Unwrap() error {
	return err.Err
}
