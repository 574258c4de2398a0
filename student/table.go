package student

// Student-t correction factors for the uncertainty of a mean, from
// "Einfuehrung in die physikalischen Messmethoden", table 2, completed by
// interpolation. Indexed by sample size n starting at tMinN; one column per
// confidence level (1, 2 or 3 standard deviations).
const (
	tMinN = 2
	tMaxN = 50
)

var tFactors = [3][tMaxN - tMinN + 1]float64{
	// sigma = 1
	{
		1.84, 1.32, 1.2, 1.15, 1.11, 1.09, 1.08, 1.07, 1.06, 1.051,
		1.045, 1.04, 1.036, 1.033, 1.032, 1.031, 1.03, 1.03, 1.029, 1.028,
		1.027, 1.026, 1.025, 1.024, 1.022, 1.021, 1.02, 1.019, 1.018, 1.017,
		1.016, 1.016, 1.015, 1.014, 1.014, 1.013, 1.013, 1.012, 1.012, 1.012,
		1.011, 1.011, 1.011, 1.011, 1.01, 1.01, 1.01, 1.01, 1.01,
	},
	// sigma = 2
	{
		13.97, 4.53, 3.31, 2.87, 2.65, 2.53, 2.43, 2.364, 2.32, 2.285,
		2.255, 2.23, 2.209, 2.191, 2.177, 2.165, 2.155, 2.147, 2.14, 2.133,
		2.127, 2.121, 2.116, 2.111, 2.106, 2.102, 2.097, 2.094, 2.09, 2.087,
		2.083, 2.08, 2.078, 2.075, 2.072, 2.07, 2.068, 2.066, 2.064, 2.062,
		2.06, 2.059, 2.057, 2.056, 2.055, 2.053, 2.052, 2.051, 2.05,
	},
	// sigma = 3
	{
		235.8, 19.21, 9.22, 6.62, 5.51, 5.02, 4.53, 4.31, 4.09, 4.026,
		3.962, 3.898, 3.834, 3.77, 3.706, 3.642, 3.578, 3.514, 3.45, 3.433,
		3.416, 3.399, 3.382, 3.365, 3.348, 3.331, 3.314, 3.297, 3.28, 3.274,
		3.268, 3.262, 3.256, 3.25, 3.244, 3.238, 3.232, 3.226, 3.22, 3.214,
		3.208, 3.202, 3.196, 3.19, 3.184, 3.178, 3.172, 3.166, 3.16,
	},
}

// lookup returns the t-factor for sample size n at the given confidence
// level. Outside the tabulated range of n the sample is treated as normally
// distributed and the factor degenerates to sigma itself. sigma must already
// be validated to 1, 2 or 3.
func lookup(n, sigma int) float64 {
	if n < tMinN || n > tMaxN {
		return float64(sigma)
	}
	return tFactors[sigma-1][n-tMinN]
}
