// Package trigpatch evaluates second order trigonometric tensor product
// patches and derives renderable images from them.
/*
A patch is defined by 16 control points p(i,j), arranged in a 4×4 grid, and
by two shape parameters αu, αv ∈ (0,π). Its surface is

	S(u,v) = Σ Σ F(i,αu)(u) ⋅ F(j,αv)(v) ⋅ p(i,j),    (u,v) ∈ [0,αu]×[0,αv]

The blending functions on [0,α] are

	F3(t) = sin⁴(t/2) / sin⁴(α/2)
	F2(t) = ( 4cos(α/2)⋅sin((α−t)/2)⋅sin³(t/2) + (1+2cos²(α/2))⋅sin²((α−t)/2)⋅sin²(t/2) ) / sin⁴(α/2)
	F1(t) = F2(α−t)
	F0(t) = F3(α−t)

They form a partition of unity, so the surface is affine invariant and
interpolates its four corner control points. At the boundary of the
parameter domain the derivative only depends on the two outermost control
rows: S'(0) = c⋅(p1 − p0) and S'(α) = c⋅(p3 − p2), with the same constant c.
Continuing a patch by extrapolating its boundary rows therefore yields a
C1 join, as long as both patches share the same shape parameter.

Images

A patch produces two kinds of images: a triangulated mesh of its surface
(see GenerateImage) and sets of iso-parametric lines (see GenerateUIsoLines
and GenerateVIsoLines), which carry derivatives up to second order for
drawing tangent and curvature hints.

Interpolation

Interpolate computes a control grid whose surface passes through 16 given
data points at uniformly spaced parameter values. The collocation system is
separable and solved with gonum's dense matrix routines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package trigpatch
