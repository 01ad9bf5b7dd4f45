package common

import (
	"github.com/crmarques/heckler-report/faults"
)

func ValidationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}

// BestEffortError marks a failure that is reported but must not change the
// process exit status.
type BestEffortError struct {
	Err error
}

func (e *BestEffortError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *BestEffortError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
