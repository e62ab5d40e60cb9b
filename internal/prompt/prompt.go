// Package prompt collects missing run parameters interactively. It is the
// only place that reads user input; the pipeline consumes the resolved
// configuration and never touches stdin.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/classkit/gradeport/pkg/errors"
	"github.com/classkit/gradeport/pkg/grades"
	"github.com/classkit/gradeport/pkg/platform"
)

// Prompter asks questions on Out and reads answers from In.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

// New creates a Prompter over stdin and stdout.
func New() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stdout}
}

func (p *Prompter) readLine(question string) (string, error) {
	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.In)
	}
	fmt.Fprint(p.Out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", errors.WrapIO("read", "stdin", err)
		}
		return "", errors.WrapIO("read", "stdin", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Platform asks which platform the grade export came from, re-prompting
// until the answer parses.
func (p *Prompter) Platform() (platform.ID, error) {
	for {
		answer, err := p.readLine("Is this for ProjectStem or CodeHS? (P/C): ")
		if err != nil {
			return "", err
		}
		if id, ok := platform.ParseID(answer); ok {
			return id, nil
		}
		fmt.Fprintln(p.Out, "Invalid input. Please enter 'P' for ProjectStem or 'C' for CodeHS.")
	}
}

// ExistingFile asks for a file path until one names an existing file.
func (p *Prompter) ExistingFile(question string) (string, error) {
	for {
		path, err := p.readLine(question)
		if err != nil {
			return "", err
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return path, nil
		}
		fmt.Fprintf(p.Out, "File not found: %s. Please try again.\n", path)
	}
}

// OutputFile asks for the output file name.
func (p *Prompter) OutputFile() (string, error) {
	for {
		path, err := p.readLine("Enter the name of the output file: ")
		if err != nil {
			return "", err
		}
		if path != "" {
			return path, nil
		}
	}
}

// Range asks for an assignment range, re-prompting until one parses. An
// empty answer means no range.
func (p *Prompter) Range(id platform.ID) (string, error) {
	question := "Enter the assignment range, or leave empty for all (eg 5.4-5.8): "
	if id == platform.CodeHS {
		question = "Enter the assignment range, or leave empty for all (eg 8.1.3-8.3.9): "
	}
	for {
		answer, err := p.readLine(question)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return "", nil
		}
		if _, parseErr := grades.ParseRange(answer); parseErr == nil {
			return answer, nil
		}
		fmt.Fprintln(p.Out, "Invalid format. Please enter the range like 5.4-5.8, first assignment not greater than the second.")
	}
}
