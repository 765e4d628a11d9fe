package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument is returned when a required script argument is not supplied by the host.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrUnknownScript is returned when the host asks for a script that is not registered.
	ErrUnknownScript = errors.New("unknown script")
)

// Operation labels for script failures
const (
	ParseArguments = "ParseArguments"
	DecodePolicy   = "DecodePolicy"
	AnalyzePolicy  = "AnalyzePolicy"
	StripAccents   = "StripAccents"
	ListPolicies   = "ListPolicies"
	RunScript      = "RunScript"
)

// AutomationError is the error surfaced to the host when a script fails.
type AutomationError struct {
	Script    string
	Operation string
	Err       error
}

// Error wraps err with the script and operation that produced it.
// A nil err yields nil so callers can wrap unconditionally.
func Error(script, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &AutomationError{
		Script:    script,
		Operation: operation,
		Err:       err,
	}
}

// Errorf is Error with a formatted message.
func Errorf(script, operation, format string, args ...interface{}) error {
	return &AutomationError{
		Script:    script,
		Operation: operation,
		Err:       fmt.Errorf(format, args...),
	}
}

func (a *AutomationError) Error() string {
	return fmt.Sprintf("script [%s] operation [%s] failed: %v", a.Script, a.Operation, a.Err)
}

func (a *AutomationError) Unwrap() error {
	return a.Err
}

// OperationOf returns the operation label carried by err, or "" if err is not an AutomationError.
func OperationOf(err error) string {
	var aerr *AutomationError
	if errors.As(err, &aerr) {
		return aerr.Operation
	}
	return ""
}
