package collusion

import "math"

// binomSF is the binomial survival function P(X >= k) for
// X ~ Binomial(n, p), computed as the exact tail sum. Terms are
// accumulated in log space so the exact coefficients stay finite for n
// in the hundreds; no normal approximation is used because class sizes
// are small.
func binomSF(k, n int, p float64) float64 {
	if n <= 0 || k <= 0 {
		return 1.0
	}
	if k > n {
		return 0.0
	}
	if p <= 0 {
		return 0.0
	}
	if p >= 1 {
		return 1.0
	}

	logP := math.Log(p)
	log1mP := math.Log1p(-p)

	var sum float64
	for i := k; i <= n; i++ {
		logTerm := logChoose(n, i) + float64(i)*logP + float64(n-i)*log1mP
		sum += math.Exp(logTerm)
	}
	if sum > 1.0 {
		return 1.0
	}
	return sum
}

// logChoose returns log C(n, k) via the log-gamma function.
func logChoose(n, k int) float64 {
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return a - b - c
}
