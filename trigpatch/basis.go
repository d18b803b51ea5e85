package trigpatch

import (
	"fmt"
	"math"
)

// Basis holds the four second order trigonometric blending functions for a
// fixed shape parameter α.
type Basis struct {
	alpha  float64
	k1, k2 float64 // coefficients of F2, divided by sin⁴(α/2)
	norm   float64 // 1/sin⁴(α/2)
}

// NewBasis creates the blending functions for shape parameter alpha, which
// must be in (0,π).
func NewBasis(alpha float64) (Basis, error) {
	if !(alpha > 0 && alpha < math.Pi) {
		return Basis{}, fmt.Errorf("%w: α = %g", ErrInvalidShape, alpha)
	}
	s := math.Sin(alpha / 2)
	c := math.Cos(alpha / 2)
	norm := 1 / (s * s * s * s)
	return Basis{
		alpha: alpha,
		k1:    4 * c * norm,
		k2:    (1 + 2*c*c) * norm,
		norm:  norm,
	}, nil
}

// Alpha returns the shape parameter, which is also the length of the domain.
func (b Basis) Alpha() float64 {
	return b.alpha
}

// Value returns the order-th derivative of blending function i at t.
// i must be in [0,3], order in [0,2].
func (b Basis) Value(i int, t float64, order int) float64 {
	switch i {
	case 0:
		return sign(order) * b.f3(b.alpha-t, order)
	case 1:
		return sign(order) * b.f2(b.alpha-t, order)
	case 2:
		return b.f2(t, order)
	case 3:
		return b.f3(t, order)
	}
	panic(fmt.Sprintf("blending function index %d out of range", i))
}

// Values returns the order-th derivatives of all four blending functions at t.
func (b Basis) Values(t float64, order int) [4]float64 {
	return [4]float64{
		b.Value(0, t, order),
		b.Value(1, t, order),
		b.Value(2, t, order),
		b.Value(3, t, order),
	}
}

func (b Basis) f3(t float64, order int) float64 {
	a, s := b.halfAngles(t)
	return b.norm * monomial(0, 4, a, s, order)
}

func (b Basis) f2(t float64, order int) float64 {
	a, s := b.halfAngles(t)
	return b.k1*monomial(1, 3, a, s, order) + b.k2*monomial(2, 2, a, s, order)
}

// halfAngles returns sin((α−t)/2) and sin(t/2), each with its first and
// second derivative with respect to t.
func (b Basis) halfAngles(t float64) (a, s [3]float64) {
	sa, ca := math.Sincos((b.alpha - t) / 2)
	st, ct := math.Sincos(t / 2)
	a = [3]float64{sa, -ca / 2, -sa / 4}
	s = [3]float64{st, ct / 2, -st / 4}
	return
}

// monomial differentiates A^m⋅B^n, where A and B carry their own
// derivatives up to second order.
func monomial(m, n int, a, b [3]float64, order int) float64 {
	fm, fn := float64(m), float64(n)
	switch order {
	case 0:
		return ipow(a[0], m) * ipow(b[0], n)
	case 1:
		return fm*ipow(a[0], m-1)*a[1]*ipow(b[0], n) +
			fn*ipow(a[0], m)*ipow(b[0], n-1)*b[1]
	case 2:
		return fm*(fm-1)*ipow(a[0], m-2)*a[1]*a[1]*ipow(b[0], n) +
			fm*ipow(a[0], m-1)*a[2]*ipow(b[0], n) +
			2*fm*fn*ipow(a[0], m-1)*a[1]*ipow(b[0], n-1)*b[1] +
			fn*(fn-1)*ipow(a[0], m)*ipow(b[0], n-2)*b[1]*b[1] +
			fn*ipow(a[0], m)*ipow(b[0], n-1)*b[2]
	}
	panic(fmt.Sprintf("derivative order %d not supported", order))
}

// ipow is x^k for small k; negative exponents only occur in terms which
// carry a zero factor and yield 0.
func ipow(x float64, k int) float64 {
	if k < 0 {
		return 0
	}
	r := 1.0
	for ; k > 0; k-- {
		r *= x
	}
	return r
}

// sign of the order-th derivative of a reflected function f(α−t).
func sign(order int) float64 {
	if order%2 == 1 {
		return -1
	}
	return 1
}
