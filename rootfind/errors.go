package rootfind

import "errors"

var (
	// ErrNoSignChange indicates the bracket endpoints have residuals of equal sign.
	ErrNoSignChange = errors.New("rootfind: residuals at bracket endpoints share sign")

	// ErrInvalidEndpoint indicates a bracket endpoint could not be evaluated.
	ErrInvalidEndpoint = errors.New("rootfind: bracket endpoint could not be evaluated")

	// ErrInvalidEvaluation indicates a bracketing method hit a point it could not evaluate.
	ErrInvalidEvaluation = errors.New("rootfind: objective could not be evaluated inside bracket")

	// ErrInvalidStart indicates the starting point of an open method could not be evaluated.
	ErrInvalidStart = errors.New("rootfind: starting point could not be evaluated")

	// ErrStalled indicates every shortened step was rejected or the iteration stopped moving.
	ErrStalled = errors.New("rootfind: search stalled")

	// ErrSingular indicates the Jacobian could not be inverted even after re-estimation.
	ErrSingular = errors.New("rootfind: singular jacobian")

	// ErrMaxIterations indicates the iteration cap was reached.
	ErrMaxIterations = errors.New("rootfind: iteration limit reached")
)
