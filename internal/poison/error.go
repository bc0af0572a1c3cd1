package poison

import (
	"errors"
	"fmt"
)

// Error is the panic value raised for any access to poisoned state.
// It names the state, carries the original panic value, and keeps the
// stack captured at the moment of poisoning.
type Error struct {
	name  string
	value interface{}
	stack []byte
}

func (pe *Error) Error() string {
	return fmt.Sprint(pe)
}

func (pe *Error) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "poisoned by panic: %v", pe.value)
	} else {
		fmt.Fprintf(f, "%v poisoned by panic: %v", pe.name, pe.value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe *Error) Unwrap() error {
	err, _ := pe.value.(error)
	return err
}

// IsPoisoned returns true if err indicates access to poisoned state.
func IsPoisoned(err error) bool {
	var pe *Error
	return errors.As(err, &pe)
}

// Stack returns a non-empty stacktrace string if err indicates access
// to poisoned state.
func Stack(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
