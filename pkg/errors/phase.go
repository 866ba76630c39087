package errors

import (
	"errors"
)

// Phase denotes the registry configuration phase an error occurred in.
type Phase string

const (
	// PhaseUndefined is the phase of errors without phase annotation.
	PhaseUndefined Phase = ""

	// PhaseCustomize is the phase where registry customizers run.
	PhaseCustomize Phase = "customize"

	// PhaseBind is the phase where metric binders run.
	PhaseBind Phase = "bind"
)

type phaseAnnotation struct {
	wrapped error
	phase   Phase
}

// let compiler verify interface compliance
var _ error = (*phaseAnnotation)(nil)

func (a *phaseAnnotation) Error() string {
	return a.wrapped.Error()
}

func (a *phaseAnnotation) Unwrap() error {
	return a.wrapped
}

// errors.Is() would work without this method, but it
// provides a shortcut in case target is the wrapped error.
func (a *phaseAnnotation) Is(target error) bool {
	return errors.Is(a.wrapped, target)
}

// Classify annotates a given error with a configuration phase.
func Classify(err error, phase Phase) error {
	return &phaseAnnotation{
		wrapped: err,
		phase:   phase,
	}
}

// GetPhase returns the configuration phase of the error.
func GetPhase(err error) Phase {
	if err == nil {
		return PhaseUndefined
	}
	if annotation := (*phaseAnnotation)(nil); errors.As(err, &annotation) {
		return annotation.phase
	}
	return PhaseUndefined
}
