// Package round provides deterministic fixed-precision rounding for values
// that feed canonical serialization and content hashing.
//
// Rounding is half-away-from-zero over a table-driven power-of-ten scale, so
// the result is bit-identical across repeated calls and across CPU
// architectures: no transcendental function and no locale-sensitive
// formatting touches the hashing path.
package round

import (
	"errors"
	"fmt"
	"math"
)

// Supported precision and magnitude envelope.
const (
	// MinDecimals is the smallest supported number of decimal places.
	MinDecimals = 0

	// MaxDecimals is the largest supported number of decimal places.
	MaxDecimals = 10

	// MaxMagnitude is the exclusive upper bound on |value|. Values at or
	// beyond it are a usage error, not a silent truncation.
	MaxMagnitude = 1e9

	// CoordDecimals is the precision applied to coordinates and
	// measurements crossing the serialization boundary.
	CoordDecimals = 4
)

// Sentinel errors for rounding precondition failures.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrDecimals indicates a decimal count outside MinDecimals..MaxDecimals.
	ErrDecimals = errors.New("decimals out of range")

	// ErrMagnitude indicates |value| at or beyond MaxMagnitude, or a
	// non-finite value.
	ErrMagnitude = errors.New("value out of range")
)

// pow10 maps a decimal count to its scale factor. A fixed table keeps the
// scale bit-identical everywhere; math.Pow can drift in the least
// significant bit between platforms.
var pow10 = [MaxDecimals + 1]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// To rounds value to the given number of decimal places using
// half-away-from-zero semantics.
//
// Preconditions: decimals must be within MinDecimals..MaxDecimals and
// |value| must be below MaxMagnitude (which also excludes NaN and the
// infinities). Violating either returns a distinct error identifying the
// offending input; use errors.Is with ErrDecimals or ErrMagnitude to tell
// them apart.
func To(value float64, decimals int) (float64, error) {
	if decimals < MinDecimals || decimals > MaxDecimals {
		return 0, fmt.Errorf("%w: %d (supported: %d to %d)", ErrDecimals, decimals, MinDecimals, MaxDecimals)
	}
	if !(math.Abs(value) < MaxMagnitude) {
		return 0, fmt.Errorf("%w: %v (|value| must be less than %v)", ErrMagnitude, value, MaxMagnitude)
	}

	scale := pow10[decimals]
	scaled := value * scale
	if scaled >= 0 {
		scaled += 0.5
	} else {
		scaled -= 0.5
	}

	result := math.Trunc(scaled) / scale
	if result == 0 {
		// Collapse IEEE negative zero so everything that rounds to zero
		// shares one canonical textual form.
		return 0, nil
	}
	return result, nil
}

// Safe rounds value like To but never fails: when either precondition is
// violated it returns value unchanged. Used wherever a best-effort value is
// preferable to propagating an error.
func Safe(value float64, decimals int) float64 {
	rounded, err := To(value, decimals)
	if err != nil {
		return value
	}
	return rounded
}

// Coord rounds value to CoordDecimals places, best-effort. This is the
// projection every coordinate and measurement passes through before
// canonical encoding.
func Coord(value float64) float64 {
	return Safe(value, CoordDecimals)
}
