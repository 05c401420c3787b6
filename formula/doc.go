// Package formula parses molecular formulas into element counts.
//
// A formula is a sequence of element symbols (one uppercase letter, optionally
// followed by one lowercase letter), optional positive integer counts, and
// balanced groups delimited by ( ) or [ ] with an optional trailing multiplier:
//
//	H2O        → {H:2, O:1}
//	Ca(OH)2    → {Ca:1, O:2, H:2}
//	Al2(SO4)3  → {Al:2, S:3, O:12}
//	K4[Fe(CN)6] → {K:4, Fe:1, C:6, N:6}
//
// Group multipliers apply transitively to nested groups. Malformed input is
// rejected with a *FormatError (matching ErrMalformed); the parser never
// guesses.
//
// A term is a formula with an optional leading coefficient, e.g. "2H2O".
// ParseTerm separates the two.
//
// All functions are pure and safe for concurrent use.
package formula
