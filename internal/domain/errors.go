package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidOrigin indicates the input string cannot be parsed into an origin
	ErrInvalidOrigin = errors.New("invalid origin")

	// ErrInvalidJSON indicates a 2xx response body that is not valid JSON
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrEmptyOriginList indicates a batch input that yielded no origins
	ErrEmptyOriginList = errors.New("origin list is empty")

	// ErrManifestInvalid indicates a manifest that failed schema validation
	ErrManifestInvalid = errors.New("manifest failed schema validation")
)

// FetchError represents a transport or HTTP-level failure while
// retrieving a manifest. StatusCode is zero for transport failures.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// AsFetchError unwraps err into a FetchError, or returns nil
func AsFetchError(err error) *FetchError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}
