package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
)

const (
	DefaultMaxAttempts = 5

	maxQuantity = 99
)

var (
	// ErrInputClosed ends the session: there is nothing left to read.
	ErrInputClosed = errors.New("input closed")
	// ErrCancelled is returned when the actor enters 0 at a selection prompt.
	ErrCancelled = errors.New("cancelled")
	// ErrTooManyAttempts aborts a prompt after MaxAttempts invalid answers.
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

const invalidChoice = "Invalid choice. Please try again."

// Prompter reads one answer per line and re-asks, a bounded number of
// times, until the answer parses.
type Prompter struct {
	scanner     *bufio.Scanner
	out         io.Writer
	maxAttempts int
}

func NewPrompter(in io.Reader, out io.Writer, maxAttempts int) *Prompter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Prompter{
		scanner:     bufio.NewScanner(in),
		out:         out,
		maxAttempts: maxAttempts,
	}
}

func (p *Prompter) Println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// Line prints label and returns the next line with surrounding whitespace removed.
func (p *Prompter) Line(label string) (string, error) {
	p.Printf("%s", label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Text asks for a non-empty answer.
func (p *Prompter) Text(label string) (string, error) {
	return ask(p, label, "This field cannot be empty. Please try again.", func(s string) (string, error) {
		if s == "" {
			return "", errors.New("empty")
		}
		return s, nil
	})
}

// Choice asks for a number between 1 and maxChoice. 0 cancels.
func (p *Prompter) Choice(label string, maxChoice int) (int, error) {
	return ask(p, label, invalidChoice, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		switch {
		case err != nil:
			return 0, err
		case n == 0:
			return 0, ErrCancelled
		case n < 0 || n > maxChoice:
			return 0, fmt.Errorf("%d is not between 1 and %d", n, maxChoice)
		}
		return n, nil
	})
}

// Confirm asks a yes/no question answered with 1 or 0.
func (p *Prompter) Confirm(label string) (bool, error) {
	return ask(p, label, invalidChoice, func(s string) (bool, error) {
		switch s {
		case "1":
			return true, nil
		case "0":
			return false, nil
		}
		return false, fmt.Errorf("%q is not 1 or 0", s)
	})
}

// Quantity asks for a count between 1 and 99. 0 cancels.
func (p *Prompter) Quantity(label string) (int, error) {
	return ask(p, label, "Please enter a quantity between 1 and 99.", func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		switch {
		case err != nil:
			return 0, err
		case n == 0:
			return 0, ErrCancelled
		case n < 0 || n > maxQuantity:
			return 0, fmt.Errorf("%d is out of range", n)
		}
		return n, nil
	})
}

// Money asks for a non-negative amount with at most two decimals. A leading
// "$" is accepted.
func (p *Prompter) Money(label string) (kernel.Money, error) {
	return ask(p, label, "", func(s string) (kernel.Money, error) {
		return kernel.MoneyFromString(strings.TrimPrefix(s, "$"))
	})
}

// ask re-prompts until parse succeeds, the actor cancels or the attempts
// run out. An empty invalid message prints the parse error instead.
func ask[T any](p *Prompter, label, invalid string, parse func(string) (T, error)) (T, error) {
	var zero T
	for range p.maxAttempts {
		line, err := p.Line(label)
		if err != nil {
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		if errors.Is(err, ErrCancelled) {
			return zero, err
		}

		if invalid != "" {
			p.Println(invalid)
		} else {
			p.Printf("Invalid input: %v. Please try again.\n", err)
		}
	}
	return zero, ErrTooManyAttempts
}
