package core

import "fmt"

// Error codes for OpError, categorizing the failure kinds of loader
// operations.
const (
	// CodeDispatchMiss indicates no handler/adapter was found for the
	// requested action and loader variant.
	CodeDispatchMiss = "DISPATCH_MISS"
	// CodeUnsupportedReset indicates the target loader cannot be recreated
	// or reset.
	CodeUnsupportedReset = "UNSUPPORTED_RESET"
	// CodeDuplicateName indicates two different bindings claimed the same
	// report name. Always fatal to the current walk; it signals a logic or
	// configuration defect, not an environmental condition.
	CodeDuplicateName = "DUPLICATE_NAME"
	// CodeMissingTarget indicates an operation required a resolved loader
	// that is absent.
	CodeMissingTarget = "MISSING_TARGET"
)

// OpError describes a failed loader operation with a categorized code.
type OpError struct {
	Ref     string `json:"ref"`     // Display name of the loader reference involved
	Message string `json:"message"` // Error message
	Code    string `json:"code"`    // Error code for categorization
}

func (e *OpError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("loader error [%s] for %s: %s", e.Code, e.Ref, e.Message)
	}
	return fmt.Sprintf("loader error [%s]: %s", e.Code, e.Message)
}

// NewOpError creates an OpError with the specified details.
func NewOpError(ref, message, code string) *OpError {
	return &OpError{
		Ref:     ref,
		Message: message,
		Code:    code,
	}
}
