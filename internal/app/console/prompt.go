package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/gradebook/internal/pkg/helpers"
)

// prompter reads answers line by line. Every read returns io.EOF once the
// input is exhausted so that the menu can stop cleanly.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) nonEmpty(prompt string) (string, error) {
	for {
		s, err := p.line(prompt)
		if err != nil || s != "" {
			return s, err
		}
		fmt.Fprintln(p.out, "Input must not be empty, try again.")
	}
}

// optionalText maps a blank answer to nil
func (p *prompter) optionalText(prompt string) (*string, error) {
	s, err := p.line(prompt)
	if err != nil {
		return nil, err
	}
	return helpers.StringOrNil(s), nil
}

func (p *prompter) int64(prompt string) (int64, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		v, perr := strconv.ParseInt(s, 10, 64)
		if perr == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "Please enter a whole number.")
	}
}

func (p *prompter) intInRange(prompt string, min, max int) (int, error) {
	for {
		v, err := p.int64(prompt)
		if err != nil {
			return 0, err
		}
		if v >= int64(min) && v <= int64(max) {
			return int(v), nil
		}
		fmt.Fprintf(p.out, "Please enter a number from %d to %d.\n", min, max)
	}
}

// optionalInt maps a blank answer to nil
func (p *prompter) optionalInt(prompt string) (*int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		v, perr := strconv.Atoi(s)
		if perr == nil {
			return &v, nil
		}
		fmt.Fprintln(p.out, "Please enter a whole number or leave empty.")
	}
}

// optionalID maps 0 to nil
func (p *prompter) optionalID(prompt string) (*int64, error) {
	v, err := p.int64(prompt)
	if err != nil {
		return nil, err
	}
	return helpers.IDOrNil(v), nil
}

// float accepts both '.' and ',' as the decimal separator
func (p *prompter) float(prompt string) (float64, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		v, perr := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		if perr == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "Please enter a number.")
	}
}

// date maps a blank answer to nil, meaning today
func (p *prompter) date(prompt string) (*time.Time, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return nil, err
		}
		d, perr := helpers.ParseDate(s)
		if perr == nil {
			return d, nil
		}
		fmt.Fprintf(p.out, "Please enter a date as %s or leave empty.\n", helpers.DateLayout)
	}
}
