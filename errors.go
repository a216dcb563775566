package lighthouses

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned for bad caller input: N < 1, a
	// non-positive radius, a degenerate line.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain means a computation left its mathematical domain, such as
	// asin of a value outside [-1, 1] or a non-finite coordinate. Seeing it
	// from a layout built by NewLayout is a bug.
	ErrDomain = errors.New("domain error")

	// ErrNoValidIllumination is returned when a chain search runs out of
	// candidates under RaiseOnExhaustion.
	ErrNoValidIllumination = errors.New("no valid illumination")
)

// IsKind reports whether err was caused by the sentinel kind.
func IsKind(err, kind error) bool {
	return err != nil && errors.Cause(err) == kind
}
