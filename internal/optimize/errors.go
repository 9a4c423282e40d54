package optimize

import "fmt"

// ErrInvalidArgument is returned when a hyperparameter or input to the
// optimizer is outside its allowed range. Message is optional and is
// omitted from the error message if not provided.
type ErrInvalidArgument struct {
	Name    string      // Name of the offending parameter, e.g., "beta1"
	Value   interface{} // The invalid value that was provided
	Message string      // Optional explanation of why the value is invalid
}

func (err *ErrInvalidArgument) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %v is invalid for parameter %q", err.Value, err.Name)
	}
	return fmt.Sprintf("value %v is invalid for parameter %q; %s", err.Value, err.Name, err.Message)
}
