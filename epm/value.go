package epm

import (
	"fmt"
	"math"
	"strconv"
)

// Value pairs a measured nominal value with its uncertainty. The zero Value
// is an exact 0. Values are immutable once created.
type Value struct {
	Nominal     float64
	Uncertainty float64
}

// New assembles a Value from an already-determined nominal value and
// uncertainty, e.g. fit parameters. No rounding is applied; the
// uncertainty's sign is discarded.
func New(nominal, uncertainty float64) Value {
	return Value{Nominal: nominal, Uncertainty: math.Abs(uncertainty)}
}

// FromRounded builds a Value by rounding stdDev up per the EPM convention
// and the nominal value to the decimal position of the rounded uncertainty's
// least-significant digit. A stdDev of 0 leaves the nominal untouched.
func FromRounded(nominal, stdDev float64) Value {
	_, exponent, rounded := Resolve(stdDev)
	if rounded == 0 {
		return Value{Nominal: nominal}
	}
	return Value{
		Nominal:     roundTo(nominal, -exponent),
		Uncertainty: rounded,
	}
}

// roundTo rounds x half away from zero to the given number of decimal
// places. Negative decimals round to positions left of the decimal point.
func roundTo(x float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(x*shift) / shift
}

// Exact reports whether the value carries no uncertainty.
func (v Value) Exact() bool {
	return v.Uncertainty == 0
}

// String renders the canonical "<nominal> +/- <uncertainty>" form with both
// sides at the decimal precision of the uncertainty's least-significant
// digit. Exact values print at full precision.
func (v Value) String() string {
	if v.Uncertainty == 0 {
		return strconv.FormatFloat(v.Nominal, 'g', -1, 64) + " +/- 0"
	}

	// Resolve is idempotent on the stored rounded uncertainty, so the
	// display precision always matches the stored fields.
	_, exponent, _ := Resolve(v.Uncertainty)
	prec := 0
	if exponent < 0 {
		prec = -exponent
	}
	return fmt.Sprintf("%.*f +/- %.*f", prec, v.Nominal, prec, v.Uncertainty)
}

// Separate splits values into parallel nominal and uncertainty slices, e.g.
// for plotting points with error bands.
func Separate(values []Value) (nominals, uncertainties []float64) {
	nominals = make([]float64, len(values))
	uncertainties = make([]float64, len(values))
	for i, v := range values {
		nominals[i] = v.Nominal
		uncertainties[i] = v.Uncertainty
	}
	return nominals, uncertainties
}
