// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"net/http"
	"strings"

	"github.com/pterm/pterm"
)

// APIErrorCategory groups Airtable failures by what the operator has to do.
type APIErrorCategory int

const (
	APIErrorUnknown APIErrorCategory = iota
	APIErrorAuth
	APIErrorPermission
	APIErrorNotFound
	APIErrorInvalidRequest
	APIErrorRateLimited
	APIErrorServer
)

// ClassifyAPIError categorizes an Airtable error by its type token, falling
// back to the HTTP status when the token is generic.
func ClassifyAPIError(status int, errType string) APIErrorCategory {
	t := strings.ToUpper(strings.TrimSpace(errType))

	switch {
	case t == "AUTHENTICATION_REQUIRED" || strings.Contains(t, "UNAUTHORIZED"):
		return APIErrorAuth
	case strings.HasPrefix(t, "INVALID_PERMISSIONS"):
		return APIErrorPermission
	case strings.Contains(t, "NOT_FOUND"):
		return APIErrorNotFound
	case strings.HasPrefix(t, "INVALID_") || strings.HasPrefix(t, "UNKNOWN_FIELD"):
		return APIErrorInvalidRequest
	case strings.Contains(t, "RATE_LIMIT"):
		return APIErrorRateLimited
	}

	switch {
	case status == http.StatusUnauthorized:
		return APIErrorAuth
	case status == http.StatusForbidden:
		return APIErrorPermission
	case status == http.StatusNotFound:
		return APIErrorNotFound
	case status == http.StatusUnprocessableEntity || status == http.StatusBadRequest:
		return APIErrorInvalidRequest
	case status == http.StatusTooManyRequests:
		return APIErrorRateLimited
	case status >= 500:
		return APIErrorServer
	}
	return APIErrorUnknown
}

// FormatAPIError renders an Airtable failure for a terminal.
func FormatAPIError(status int, errType, message string) string {
	var builder strings.Builder

	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Airtable request failed"))
	builder.WriteString("\n\n")

	switch ClassifyAPIError(status, errType) {
	case APIErrorAuth:
		builder.WriteString("Airtable did not accept the access token.\n")
		builder.WriteString("  • Check AIRTABLE_TOKEN, or run 'discovertrailraces login'\n")
		builder.WriteString("  • Personal access tokens start with 'pat'\n")
	case APIErrorPermission:
		builder.WriteString("The token cannot read this base or table.\n")
		builder.WriteString("  • Grant the token the data.records:read scope\n")
		builder.WriteString("  • Add the base to the token's access list\n")
	case APIErrorNotFound:
		builder.WriteString("The base, table or view does not exist.\n")
		builder.WriteString("  • Check AIRTABLE_BASE_ID (it starts with 'app')\n")
		builder.WriteString("  • Table and view names are case-sensitive\n")
	case APIErrorInvalidRequest:
		builder.WriteString("Airtable rejected the query.\n")
		builder.WriteString("  • A field used for sorting or filtering may have been renamed\n")
	case APIErrorRateLimited:
		builder.WriteString("Airtable is rate limiting this base (5 requests per second).\n")
		builder.WriteString("  • Wait 30 seconds before trying again\n")
	case APIErrorServer:
		builder.WriteString("Airtable is having problems on its side.\n")
		builder.WriteString("  • Try again in a few minutes\n")
	default:
		builder.WriteString("Airtable returned an unexpected response.\n")
	}

	if msg := strings.TrimSpace(message); msg != "" {
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(msg)))
	}
	return builder.String()
}
