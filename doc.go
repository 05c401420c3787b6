// Package chembalance is a chemical equation balancer built on exact
// rational linear algebra.
//
// 🚀 What is inside?
//
//	• formula/: molecular formula parser: Ca(OH)2 → {Ca:1, O:2, H:2}
//	• matrix/: exact rational Dense matrix, Gauss–Jordan RREF, null space
//	• balancer/: equation splitting, stoichiometric matrix, integer coefficients
//	• fallback/: local-first chain with an external solver and localized failures
//
// ✨ Why exact arithmetic?
//
//   - No tolerances: a pivot is zero or it is not
//   - Coefficients are the unique minimal positive integers, or a typed error
//   - Pure functions, safe for concurrent use
//
// Quick example:
//
//	Al + O2 -> Al2O3
//
//	      Al  O2  Al2O3
//	Al  [  1   0   -2 ]
//	O   [  0   2   -3 ]
//
//	null space (2, 3/2, 1) → 4Al + 3O2 → 2Al2O3
//
// The chembalance command wraps the library:
//
//	go install github.com/katalvlaran/chembalance/cmd/chembalance@latest
package chembalance

// Version is the release of this module.
const Version = "0.3.0"
