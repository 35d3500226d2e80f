// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package directus

import "strconv"

// TransportError reports a failed request: a network failure, a non-2xx
// status or a malformed response body.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int // Zero if no response was received
	Err        error
}

func (err TransportError) Error() string {
	s := err.Op + " " + err.URL
	if err.StatusCode != 0 && err.Err == nil {
		s += ": status " + strconv.Itoa(err.StatusCode)
	}
	if err.Err != nil {
		s += ": " + err.Err.Error()
	}
	return s
}

func (err TransportError) Unwrap() error {
	return err.Err
}
