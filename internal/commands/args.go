package commands

import "fmt"

// InsufficientArgumentsError reports fewer positional arguments than needed.
// Count is the number of arguments after the program name.
type InsufficientArgumentsError struct {
	Count int
}

func (e *InsufficientArgumentsError) Error() string {
	return fmt.Sprintf("insufficient arguments: got %d, want 2 (category and amount); %d missing", e.Count, 2-e.Count)
}

// TooManyArgumentsError reports more positional arguments than allowed.
// Count is the number of arguments after the program name.
type TooManyArgumentsError struct {
	Count int
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many arguments: got %d, want 2 (category and amount)", e.Count)
}

// requireCategoryAndAmount accepts exactly two positional arguments.
func requireCategoryAndAmount(args []string) (category, amount string, err error) {
	switch {
	case len(args) < 2:
		return "", "", &InsufficientArgumentsError{Count: len(args)}
	case len(args) > 2:
		return "", "", &TooManyArgumentsError{Count: len(args)}
	}
	return args[0], args[1], nil
}
