package project

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user questions on behalf of the project.
type Prompter interface {
	Confirm(question string) bool
	Inform(message string)
}

// LinePrompter asks on a line-oriented stream. When the input is not
// interactive every question gets the default answer.
type LinePrompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	Default     bool
}

func NewLinePrompter(in io.Reader, out io.Writer, interactive bool) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, interactive: interactive}
}

// NewTerminalPrompter prompts on stdin/stdout, interactive only when stdin
// is a terminal.
func NewTerminalPrompter() *LinePrompter {
	return NewLinePrompter(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

func (p *LinePrompter) Confirm(question string) bool {
	if !p.interactive {
		return p.Default
	}
	for {
		fmt.Fprintf(p.out, "%s [y/n] ", question)
		line, err := p.in.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			return p.Default
		}
	}
}

func (p *LinePrompter) Inform(message string) {
	fmt.Fprintln(p.out, message)
}
