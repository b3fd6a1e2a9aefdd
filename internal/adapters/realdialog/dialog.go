// Package realdialog provides a TUI-based DialogProvider using charmbracelet/huh.
//
// The form runs on the process's own terminal. Fields are validated as
// integers while typing; range rules are checked afterwards by args.Parse.
package realdialog

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/acolita/calc-average/internal/args"
	"github.com/acolita/calc-average/internal/ports"
)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("arguments form aborted")

// Provider implements ports.DialogProvider with a huh form.
type Provider struct{}

// New returns a new TUI dialog provider.
func New() *Provider {
	return &Provider{}
}

// ArgumentsForm shows the form pre-filled with prefill and returns the
// user's values.
func (p *Provider) ArgumentsForm(prefill ports.ArgumentsFormData) (ports.ArgumentsFormData, error) {
	result := prefill
	form := buildForm(&result)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return prefill, ErrAborted
		}
		return prefill, fmt.Errorf("arguments form: %w", err)
	}
	return result, nil
}

func buildForm(result *ports.ArgumentsFormData) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum").
				Description("Smallest value to generate (zero or more)").
				Validate(validateNonNegative).
				Value(&result.Minimum),

			huh.NewInput().
				Title("Maximum").
				Description("Largest value to generate, greater than the minimum").
				Validate(validateNonNegative).
				Value(&result.Maximum),

			huh.NewInput().
				Title("Count").
				Description("How many integers to generate").
				Validate(validateCount).
				Value(&result.Count),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate the numbers?").
				Value(&result.Confirmed),
		),
	)
}

func validateNonNegative(s string) error {
	_, err := parseNonNegative(s)
	return err
}

func validateCount(s string) error {
	v, err := parseNonNegative(s)
	if err != nil {
		return err
	}
	if v > args.MaxCount {
		return fmt.Errorf("must be no more than %d", args.MaxCount)
	}
	return nil
}

func parseNonNegative(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	if v < 0 {
		return 0, errors.New("must be zero or more")
	}
	return v, nil
}

var _ ports.DialogProvider = (*Provider)(nil)
