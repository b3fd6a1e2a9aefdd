// Package args turns the three positional tokens of the command line into
// validated numeric arguments.
package args

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

// Required is the number of positional tokens Parse needs.
const Required = 3

// MaxCount is the largest number of samples one run may generate. Every
// sample is held in memory until the average is printed.
const MaxCount = 10_000_000

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrMissingArguments = errors.New("missing arguments")
	ErrParse            = errors.New("argument is not an integer")
	ErrRange            = errors.New("argument out of range")
)

// Arguments are the validated inputs of one run.
// Invariant: 0 <= Minimum < Maximum and 0 <= Count <= MaxCount.
type Arguments struct {
	Minimum int
	Maximum int
	Count   int
}

// MissingArgumentsError reports that fewer than Required tokens were given.
type MissingArgumentsError struct {
	Got int
}

func (e *MissingArgumentsError) Error() string {
	return "Please provide two positive integers as the maximum and " +
		"minimum for this exercise and the number of integers to " +
		"generate."
}

func (e *MissingArgumentsError) Is(target error) bool {
	return target == ErrMissingArguments
}

// ParseError reports a token that is not a base-10 integer literal.
type ParseError struct {
	Position int // 1-based
	Token    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Trouble converting the %s argument to a number.", ordinal(e.Position))
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RangeKind tells which range rule a RangeError violated.
type RangeKind int

const (
	// RangeOrdering: maximum <= minimum, or either bound is negative.
	RangeOrdering RangeKind = iota
	// RangeCount: the number of samples is negative.
	RangeCount
	// RangeCountLimit: the number of samples exceeds MaxCount.
	RangeCountLimit
)

// RangeError reports converted values that break the argument invariants.
type RangeError struct {
	Kind    RangeKind
	Minimum int
	Maximum int
	Count   int
}

func (e *RangeError) Error() string {
	switch e.Kind {
	case RangeCount:
		return "Please make sure the number of integers to generate is " +
			"zero or a positive integer."
	case RangeCountLimit:
		return fmt.Sprintf("Please make sure the number of integers to "+
			"generate is no more than %d.", MaxCount)
	}
	return "Please make sure your first number is less than your second " +
		"number and that they are both positive integers."
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// Parse converts tokens into Arguments. Tokens past the third are ignored.
// Conversion errors are reported for the first bad token in order, before
// any range rule is checked.
func Parse(tokens []string) (Arguments, error) {
	if len(tokens) < Required {
		return Arguments{}, &MissingArgumentsError{Got: len(tokens)}
	}
	if len(tokens) > Required {
		slog.Debug("ignoring extra arguments", "extra", tokens[Required:])
	}

	var values [Required]int
	for i := range values {
		v, err := strconv.Atoi(tokens[i])
		if err != nil {
			return Arguments{}, &ParseError{Position: i + 1, Token: tokens[i], Err: err}
		}
		values[i] = v
	}

	a := Arguments{Minimum: values[0], Maximum: values[1], Count: values[2]}
	if err := a.Validate(); err != nil {
		return Arguments{}, err
	}

	slog.Debug("arguments parsed", "minimum", a.Minimum, "maximum", a.Maximum, "count", a.Count)
	return a, nil
}

// Validate checks the range rules on already converted values.
func (a Arguments) Validate() error {
	if a.Maximum <= a.Minimum || a.Maximum < 0 || a.Minimum < 0 {
		return &RangeError{Kind: RangeOrdering, Minimum: a.Minimum, Maximum: a.Maximum, Count: a.Count}
	}
	if a.Count < 0 {
		return &RangeError{Kind: RangeCount, Minimum: a.Minimum, Maximum: a.Maximum, Count: a.Count}
	}
	if a.Count > MaxCount {
		return &RangeError{Kind: RangeCountLimit, Minimum: a.Minimum, Maximum: a.Maximum, Count: a.Count}
	}
	return nil
}

func ordinal(position int) string {
	switch position {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	default:
		return strconv.Itoa(position) + "th"
	}
}
