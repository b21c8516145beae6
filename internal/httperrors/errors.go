// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors explains outbound network failures to operators running
// CLI commands against Airtable (debug, export, login verification).
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/witoldexec80th12/discovertrailraces/internal/logging"
)

// Kind classifies a transport failure.
type Kind int

const (
	KindGeneric Kind = iota
	KindTimeout
	KindDNS
	KindConnectionRefused
	KindTLS
)

// FormatNetworkError prints a friendly explanation of err and returns it
// wrapped for the caller. context completes the sentence "... while <context>".
func FormatNetworkError(err error, context string) error {
	if err == nil {
		return nil
	}
	displayErrorMessage(err, context)
	return fmt.Errorf("network error: %w", err)
}

// Classify reports which kind of transport failure err is.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindGeneric
	case isTimeoutError(err):
		return KindTimeout
	case isDNSError(err):
		return KindDNS
	case isConnectionRefusedError(err):
		return KindConnectionRefused
	case isTLSError(err):
		return KindTLS
	}
	return KindGeneric
}

func displayErrorMessage(err error, context string) {
	host := hostFromError(err)

	switch Classify(err) {
	case KindTimeout:
		pterm.Printf("⏱️  Connection timeout while %s\n", context)
		pterm.Println()
		pterm.Printf("%s took too long to respond. Check your connection and try again.\n", host)
	case KindDNS:
		pterm.Printf("🌐 Cannot resolve server address while %s\n", context)
		pterm.Println()
		pterm.Printf("Unable to look up %s. Please check:\n", host)
		pterm.Println("  • Your internet connection is working")
		pterm.Println("  • DNS settings are correct")
	case KindConnectionRefused:
		pterm.Printf("🚫 Connection refused while %s\n", context)
		pterm.Println()
		pterm.Println("  • Check airtable.api_url in your config file")
		pterm.Println("  • A firewall may be blocking outbound HTTPS")
	case KindTLS:
		pterm.Printf("🔒 Secure connection failed while %s\n", context)
		pterm.Println()
		pterm.Println("  • Check your system date and time")
		pterm.Println("  • Verify network proxy settings")
	default:
		pterm.Printf("❌ Cannot reach %s while %s\n", host, context)
		pterm.Println()
		if details := logging.Mask(err.Error()); details != "" {
			if len(details) > 200 {
				details = details[:200] + "..."
			}
			pterm.Debug.Printf("Technical details: %s\n", details)
		}
	}
	pterm.Println()
}

func isTimeoutError(err error) bool {
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isTLSError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate")
}

// hostFromError pulls the host out of a *url.Error, defaulting to "Airtable".
func hostFromError(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ExtractHostFromURL(urlErr.URL)
	}
	return "Airtable"
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
