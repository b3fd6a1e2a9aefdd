package ports

// ArgumentsFormData holds the raw tokens collected by an arguments form.
// Values stay textual so they go through the same validation as argv.
type ArgumentsFormData struct {
	Minimum   string
	Maximum   string
	Count     string
	Confirmed bool
}

// DialogProvider abstracts interactive user dialogs.
// Implementations may use TUI forms or test fakes.
type DialogProvider interface {
	// ArgumentsForm shows a form to enter or edit the positional arguments.
	// Pre-filled values come from the input data; the user can modify them.
	// Returns the final form data with Confirmed=true if the user accepted.
	ArgumentsForm(prefill ArgumentsFormData) (ArgumentsFormData, error)
}
