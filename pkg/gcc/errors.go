package gcc

import "errors"

// Sentinel error values covering the ways a propagator can fail. Call sites
// wrap these with fmt.Errorf("...: %w", ErrX) to attach context.
var (
	// ErrDomainEmpty means a variable's domain became empty as a side
	// effect of a mutator — the "infeasible-assignment" failure kind.
	ErrDomainEmpty = errors.New("gcc: domain became empty")

	// ErrCapacityOverflow means more variables are forced to a value than
	// its upper cardinality bound allows.
	ErrCapacityOverflow = errors.New("gcc: cardinality upper bound exceeded")

	// ErrCapacityUnderflow means fewer candidates remain for a value than
	// its lower cardinality bound requires.
	ErrCapacityUnderflow = errors.New("gcc: cardinality lower bound unreachable")

	// ErrCardInfeasible means an isView cardinality's own bounds became
	// inconsistent (lo > hi) after tightening.
	ErrCardInfeasible = errors.New("gcc: cardinality view bounds inconsistent")

	// ErrInvalidArgument means Post received a malformed specification
	// (duplicate values, negative counts, lo > hi), or a Config named an
	// unknown variant or could not be decoded.
	ErrInvalidArgument = errors.New("gcc: invalid argument")

	// ErrNoCompleteMatching means Dom's matching repair could not saturate
	// all variables (or meet all lower cardinality bounds).
	ErrNoCompleteMatching = errors.New("gcc: no complete b-matching exists")
)
