package cmd

import (
	"errors"
	"net/url"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"

	"github.com/witoldexec80th12/discovertrailraces/internal/airtable"
	"github.com/witoldexec80th12/discovertrailraces/internal/httperrors"
	"github.com/witoldexec80th12/discovertrailraces/internal/logging"
)

var spinnerFrames = []string{"-", "\\", "|", "/"}

// startSpinner shows an animated status line until the returned function
// is called. The line is removed when stopped.
func startSpinner(text string) func() {
	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		cursor.Show()
		return func() {}
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		i := 0
		area.Update(spinnerFrames[0] + " " + text)
		for {
			select {
			case <-t.C:
				i++
				area.Update(spinnerFrames[i%len(spinnerFrames)] + " " + text)
			case <-stop:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
			_ = area.Stop()
			cursor.Show()
		})
	}
}

// explainAirtableError prints an operator-facing explanation of a failed
// Airtable call and returns the error to propagate.
func explainAirtableError(err error, context string) error {
	var apiErr *airtable.APIError
	if errors.As(err, &apiErr) {
		pterm.Println(logging.FormatAPIError(apiErr.Status, apiErr.Type, apiErr.Message))
		return err
	}
	var malformed *airtable.MalformedResponseError
	if errors.As(err, &malformed) {
		pterm.Error.Println("Airtable returned an unexpected response while " + context + ".")
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return httperrors.FormatNetworkError(err, context)
	}
	return err
}
