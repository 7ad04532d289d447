// internal/errors/errors.go
package appErrors

// ErrMissingFile is a sentinel error for an upload with no file part
type ErrMissingFile struct{}

func (e *ErrMissingFile) Error() string {
    return "No file uploaded"
}

// Helper constructor
func NewMissingFile() error {
    return &ErrMissingFile{}
}

// ErrEmptyCSV means the uploaded file parsed to zero data rows
type ErrEmptyCSV struct{}

func (e *ErrEmptyCSV) Error() string {
    return "Empty CSV"
}

func NewEmptyCSV() error {
    return &ErrEmptyCSV{}
}

// ErrProviderNotConfigured means live dispatch was requested without Twilio
// credentials. The whole batch aborts before any call is placed.
type ErrProviderNotConfigured struct{}

func (e *ErrProviderNotConfigured) Error() string {
    return "Twilio keys missing"
}

func NewProviderNotConfigured() error {
    return &ErrProviderNotConfigured{}
}
