package workflow

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// InteractivePrompter reads decisions and messages from standard input.
type InteractivePrompter struct {
	ErrWriter io.Writer
	Stdin     io.Reader
}

func (p *InteractivePrompter) stdin() io.Reader {
	if p.Stdin != nil {
		return p.Stdin
	}
	return os.Stdin
}

func (p *InteractivePrompter) checkTerminal() error {
	if f, ok := p.stdin().(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return errors.New("stdin is not a terminal, use --yes to skip interactive confirmation")
		}
	}
	return nil
}

// Confirm asks a single yes/no question. Anything other than y/yes (case
// insensitive) declines; an empty answer defaults to yes.
func (p *InteractivePrompter) Confirm(question string) (Decision, error) {
	if err := p.checkTerminal(); err != nil {
		return DecisionDeclined, err
	}

	fmt.Fprintf(p.ErrWriter, "%s [Y/n]: ", question)
	reader := bufio.NewReader(p.stdin())
	response, err := reader.ReadString('\n')
	if err != nil {
		return DecisionDeclined, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes", "":
		return DecisionConfirmed, nil
	default:
		return DecisionDeclined, nil
	}
}

// ReadMessage collects a multi-line commit message terminated by an empty
// line. The first line is the subject; subsequent lines become the body.
func (p *InteractivePrompter) ReadMessage(prompt string) (string, error) {
	if err := p.checkTerminal(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.ErrWriter, "%s (empty line to finish):\n", prompt)
	scanner := bufio.NewScanner(p.stdin())

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
