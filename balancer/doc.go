// Package balancer balances chemical equations by exact linear algebra.
//
// Given "Al + O2 -> Al2O3" the balancer
//
//  1. splits the equation on its reaction separator and on '+';
//  2. parses every term with package formula;
//  3. builds the stoichiometric matrix: one row per element (first-seen
//     order across reactants then products), one column per formula,
//     reactant cells positive and product cells negated;
//  4. reduces it with exact Gauss–Jordan elimination (package matrix);
//  5. takes the one-dimensional null space, scales it to the smallest
//     positive integers, and renders "4Al + 3O2 \rightarrow 2Al2O3".
//
// Failures are *Error values of four kinds (format, parse, unbalanceable,
// degenerate), each matched by its sentinel through errors.Is, so callers can
// tell them apart and decide whether to fall back to another solver.
//
// Every call allocates its own matrix; all functions are safe for concurrent use.
package balancer
