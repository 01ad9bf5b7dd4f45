package core

import "github.com/crmarques/heckler-report/faults"

func configValidationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}
