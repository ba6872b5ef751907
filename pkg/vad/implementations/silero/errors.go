package silero

import (
	"fmt"
)

type ErrInit struct {
	Path string
	Err  error
}

func (e ErrInit) Error() string {
	return fmt.Sprintf("unable to initialize the Silero VAD session with model '%s': %v", e.Path, e.Err)
}

func (e ErrInit) Unwrap() error {
	return e.Err
}

type ErrShapeMismatch struct {
	Expected string
	Actual   int
}

func (e ErrShapeMismatch) Error() string {
	return fmt.Sprintf("expected %s samples, but received %d", e.Expected, e.Actual)
}

type ErrInference struct {
	Err error
}

func (e ErrInference) Error() string {
	return fmt.Sprintf("unable to run the inference: %v", e.Err)
}

func (e ErrInference) Unwrap() error {
	return e.Err
}

type ErrClosed struct{}

func (ErrClosed) Error() string {
	return "the session is closed"
}
