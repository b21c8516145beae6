// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package airtable

import "fmt"

// APIError reports a failure signalled by Airtable: either a non-2xx HTTP
// status or an error object embedded in an otherwise successful response.
type APIError struct {
	// Status is the HTTP status of the response (200 for embedded errors).
	Status int
	// Type is Airtable's error token, e.g. AUTHENTICATION_REQUIRED, or
	// HTTP_ERROR when the body carried none.
	Type string
	// Message is Airtable's message, or the raw response body.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("airtable API error (%d) %s: %s", e.Status, e.Type, e.Message)
}

// MalformedResponseError reports a response whose shape violates the list
// records contract, e.g. a missing or non-array "records" member.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "airtable response malformed: " + e.Reason
}
