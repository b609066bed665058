package poly

import "errors"

// Sentinel errors. Precondition failures are reported as *PreconditionError
// values that unwrap to one of these.
var (
	// ErrDegenerateTriangle is returned when a triangle repeats a vertex index.
	ErrDegenerateTriangle = errors.New("poly: degenerate triangle")

	// ErrMalformedIndices is returned when an index buffer does not fit its kind.
	ErrMalformedIndices = errors.New("poly: index buffer does not match geometry kind")

	// ErrWrongKind is returned when an operation receives geometry of a kind it cannot use.
	ErrWrongKind = errors.New("poly: unsupported geometry kind")

	// ErrUnsupported is returned for configurations an operation does not support.
	ErrUnsupported = errors.New("poly: unsupported configuration")

	// ErrNegativeWidth is returned when a stroke width is negative.
	ErrNegativeWidth = errors.New("poly: negative stroke width")

	// ErrIndexRange is returned by Validate when an index is out of bounds.
	ErrIndexRange = errors.New("poly: index out of range")

	// ErrCoordinateRange is returned by RobustExtruder when a scaled
	// coordinate does not fit the integer grid.
	ErrCoordinateRange = errors.New("poly: coordinate out of range for resolution")

	// ErrOffsetFailed is returned by RobustExtruder when the stroke outline
	// cannot be built or triangulated.
	ErrOffsetFailed = errors.New("poly: offset union failed")
)

// PreconditionError reports a call that was rejected before any work was done.
type PreconditionError struct {
	Op     string
	Err    error
	Detail string
}

func (e *PreconditionError) Error() string {
	msg := e.Op + ": " + e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func precondition(op string, err error, detail string) error {
	return &PreconditionError{Op: op, Err: err, Detail: detail}
}
