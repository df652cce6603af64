package catalog

import "fmt"

// LoadError represents an error while reading, parsing or checking a catalog document
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
