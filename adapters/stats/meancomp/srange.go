package meancomp

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// Studentized range distribution, the adjustment behind Tukey's HSD.
//
// P(Q <= q | k, v) is the classic double integral: the range of k standard
// normals, scaled by an independent chi-based standard deviation estimate
// with v degrees of freedom. Both integrals are evaluated with fixed
// Gauss-Legendre quadrature; the critical value is recovered by bisection.
// Accuracy was checked against published critical-value tables
// (q(0.95,3,10)=3.877, q(0.95,2,10)=3.151, q(0.95,4,20)=3.958).

const (
	srangeOuterNodes = 64
	srangeInnerNodes = 128
	// Beyond this many degrees of freedom the scale estimate is treated as
	// exact (s = 1), as tabulations do for the infinite-df row.
	srangeLargeDF = 2000
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// rangeCDFUnitScale is P(range of k iid standard normals <= w), integrating
// over the position of the maximum.
func rangeCDFUnitScale(w float64, k int) float64 {
	if w <= 0 {
		return 0
	}
	f := func(u float64) float64 {
		return stdNormal.Prob(u) * math.Pow(stdNormal.CDF(u)-stdNormal.CDF(u-w), float64(k-1))
	}
	// The integrand is weighted by the normal density; mass outside +/-8 is
	// below double precision.
	return float64(k) * quad.Fixed(f, -8, 8, srangeInnerNodes, quad.Legendre{}, 0)
}

// StudentizedRangeCDF evaluates P(Q <= q) for k groups and v within-group
// degrees of freedom.
func StudentizedRangeCDF(q float64, k int, v int) float64 {
	if q <= 0 || k < 2 || v < 1 {
		return 0
	}
	df := float64(v)
	if df > srangeLargeDF {
		return clamp01(rangeCDFUnitScale(q, k))
	}

	// Density of s = sqrt(chi2_v / v), via lgamma to stay finite at large v.
	lg, _ := math.Lgamma(df / 2)
	scaleDensity := func(s float64) float64 {
		lnf := math.Ln2 + (df/2)*math.Log(df) + (df-1)*math.Log(s) -
			df*s*s/2 - (df/2)*math.Ln2 - lg
		return math.Exp(lnf)
	}

	// s concentrates around 1 with spread ~1/sqrt(2v); ten spreads cover it.
	spread := 10 / math.Sqrt(2*df)
	lo := math.Max(0, 1-spread)
	hi := 1 + spread

	g := func(s float64) float64 {
		return scaleDensity(s) * rangeCDFUnitScale(q*s, k)
	}
	return clamp01(quad.Fixed(g, lo, hi, srangeOuterNodes, quad.Legendre{}, 0))
}

// StudentizedRangeQuantile inverts the CDF by bisection: the smallest q with
// P(Q <= q) >= p. Used for the HSD critical value q(1-alpha, k, v).
func StudentizedRangeQuantile(p float64, k int, v int) float64 {
	lo, hi := 0.0, 100.0
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if StudentizedRangeCDF(mid, k, v) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
