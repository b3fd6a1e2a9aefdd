package main

import (
	"errors"

	"github.com/acolita/calc-average/internal/ports"
)

var errNotConfirmed = errors.New("arguments form not confirmed")

// promptArguments pre-fills the form with whatever positional tokens were
// given and returns the three tokens the user settled on.
func promptArguments(dialog ports.DialogProvider, tokens []string) ([]string, error) {
	var prefill ports.ArgumentsFormData
	fields := []*string{&prefill.Minimum, &prefill.Maximum, &prefill.Count}
	for i, tok := range tokens {
		if i < len(fields) {
			*fields[i] = tok
		}
	}

	data, err := dialog.ArgumentsForm(prefill)
	if err != nil {
		return nil, err
	}
	if !data.Confirmed {
		return nil, errNotConfirmed
	}
	return []string{data.Minimum, data.Maximum, data.Count}, nil
}
