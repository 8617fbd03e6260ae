// Package activation defines the scalar activation strategies used by the
// network package, and their element-wise application over a matrix.
//
// A Func is stateless: a single value may be shared by any number of
// networks for their whole lifetime. Two variants are provided:
//
//   - ModReLU, a clipped identity with a 0.01 leak on both sides of [0,1]:
//     f(x) = 0.01x for x<0, x for 0≤x≤1, 1+0.01(x-1) for x>1.
//   - Sigmoid, the logistic function f(x) = 1/(1+e^-x).
//
// ApplyTo and DerivativeTo have no logic of their own; they map the scalar
// methods over a *matrix.Dense through matrix.Map, so the matrix form and
// the scalar form cannot disagree.
package activation
