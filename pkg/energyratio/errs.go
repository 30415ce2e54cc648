package energyratio

import "errors"

var (
	// ErrLengthMismatch indicates that the four arrays of one regime do not
	// have the same number of rows.
	ErrLengthMismatch = errors.New("energyratio: regime arrays differ in length")

	// ErrNoBins indicates that no wind direction bin centers were supplied.
	ErrNoBins = errors.New("energyratio: no wind direction bins")

	// ErrBinSpacing indicates that the bin centers are not strictly
	// increasing with uniform spacing. The bin radius is derived from the
	// spacing, so irregular centers would silently misplace samples.
	ErrBinSpacing = errors.New("energyratio: bin centers not uniformly spaced")

	// ErrConfidence indicates a confidence level outside (0,100).
	ErrConfidence = errors.New("energyratio: confidence must be in (0,100)")

	// ErrBootstrap indicates a negative bootstrap iteration count.
	ErrBootstrap = errors.New("energyratio: negative bootstrap count")
)
