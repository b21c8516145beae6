// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers from a terminal or, when input is piped, from
// lines of the reader.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	fd     int
	isTerm bool
	lines  *bufio.Reader
}

// NewPrompter returns a Prompter on stdin/stdout.
func NewPrompter() *Prompter {
	fd := int(os.Stdin.Fd())
	return &Prompter{in: os.Stdin, out: os.Stdout, fd: fd, isTerm: term.IsTerminal(fd)}
}

// NewPipePrompter reads answers line by line from r. Used by tests and
// scripted logins.
func NewPipePrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: r, out: w, fd: -1}
}

// Ask prints prompt and returns the trimmed answer.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.readLine()
}

// AskSecret prints prompt and reads an answer without echoing it when
// attached to a terminal.
func (p *Prompter) AskSecret(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.isTerm {
		return p.readLine()
	}
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (p *Prompter) readLine() (string, error) {
	if p.lines == nil {
		p.lines = bufio.NewReader(p.in)
	}
	s, err := p.lines.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}
