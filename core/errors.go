package core

import "errors"

// Contract violations reported by the engine. Callers match them with errors.Is.
var (
	ErrShapeMismatch         = errors.New("series length does not match dates")
	ErrInvalidDate           = errors.New("invalid date")
	ErrMissingVariableSeries = errors.New("variable has no contribution series")
	ErrDuplicateVariable     = errors.New("duplicate variable")
	ErrDuplicateSeries       = errors.New("duplicate series key")
	ErrMissingInput          = errors.New("missing required input")
	ErrUnknownGroup          = errors.New("unknown group")
)
