// Package errors defines typed errors with categories for user-friendly reporting.
// Each error carries a machine-readable Kind so commands and handlers can decide
// how to present a failure (exit with a hint, render a page, log and continue)
// without string matching on messages.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// ConfigInvalid indicates a configuration file or flag failed validation.
	ConfigInvalid Kind = "config_invalid"
	// CredentialsMissing indicates the Airtable token or base ID could not be resolved.
	CredentialsMissing Kind = "credentials_missing"
	// ExportFailed indicates a snapshot could not be written to its sink.
	ExportFailed Kind = "export_failed"
	// RenderFailed indicates a page template could not be executed.
	RenderFailed Kind = "render_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Is reports whether any error in err's chain is an *E of the given kind.
func Is(err error, kind Kind) bool {
	var e *E
	for err != nil {
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
