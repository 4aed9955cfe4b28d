package core

import "errors"

// Error taxonomy. Failures wrap one of these sentinels and carry the
// offending input in the message; callers match with errors.Is.
var (
	// ErrInvalidArgument reports bad generation or loading parameters.
	ErrInvalidArgument = errors.New("refinebench: invalid argument")

	// ErrMalformedExpression reports an expression the grammar rejects.
	ErrMalformedExpression = errors.New("refinebench: malformed expression")

	// ErrTypeMismatch reports an operator applied across incompatible types.
	ErrTypeMismatch = errors.New("refinebench: type mismatch")

	// ErrSchemaMismatch reports a feature the expression references but the
	// dataset does not carry.
	ErrSchemaMismatch = errors.New("refinebench: schema mismatch")
)
