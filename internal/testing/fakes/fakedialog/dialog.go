// Package fakedialog provides a test fake for ports.DialogProvider.
package fakedialog

import "github.com/acolita/calc-average/internal/ports"

// Provider is a controllable fake DialogProvider for testing.
type Provider struct {
	// Result is the form data returned by ArgumentsForm.
	Result ports.ArgumentsFormData
	// Err is the error returned by ArgumentsForm.
	Err error
	// Called tracks whether ArgumentsForm was invoked.
	Called bool
	// ReceivedPrefill captures the prefill data passed to ArgumentsForm.
	ReceivedPrefill ports.ArgumentsFormData
}

// New returns a new fake dialog provider.
func New() *Provider {
	return &Provider{}
}

// ArgumentsForm returns the pre-configured Result and Err.
func (p *Provider) ArgumentsForm(prefill ports.ArgumentsFormData) (ports.ArgumentsFormData, error) {
	p.Called = true
	p.ReceivedPrefill = prefill
	if p.Err != nil {
		return prefill, p.Err
	}
	return p.Result, nil
}

var _ ports.DialogProvider = (*Provider)(nil)
