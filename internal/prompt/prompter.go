// Package prompt implements the line-oriented questions asked by install.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/samhoang/claude-notify/internal/errors"
	"github.com/samhoang/claude-notify/internal/ui"
)

// Prompter asks a question and returns the trimmed answer line
type Prompter interface {
	Ask(question string) (string, error)
}

// ReaderPrompter reads answers line by line from any reader
type ReaderPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReaderPrompter creates a prompter over in, writing questions to out
func NewReaderPrompter(in io.Reader, out io.Writer) *ReaderPrompter {
	return &ReaderPrompter{in: bufio.NewReader(in), out: out}
}

// Ask implements Prompter. A final line without newline is still returned;
// end of input with nothing read is ErrNoInput.
func (p *ReaderPrompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", errors.ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// TerminalPrompter reads answers with line editing when attached to a TTY
type TerminalPrompter struct{}

// NewTerminalPrompter creates a readline-backed prompter
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// Ask implements Prompter. Ctrl-C and Ctrl-D are reported as ErrNoInput.
func (p *TerminalPrompter) Ask(question string) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          question,
		InterruptPrompt: "^C",
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
	})
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", errors.ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Default returns a readline prompter on an interactive terminal and a plain
// stdin reader otherwise (pipes, CI).
func Default() Prompter {
	if ui.IsInteractive() {
		return NewTerminalPrompter()
	}
	return NewReaderPrompter(os.Stdin, os.Stdout)
}

// AskYesNo asks a yes/no question. Answers other than y/yes/n/no, including
// an empty line, return def.
func AskYesNo(p Prompter, question string, def bool) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return def, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}

// AskDefault asks a free-form question, returning def for an empty answer
func AskDefault(p Prompter, question, def string) (string, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
