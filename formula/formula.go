// SPDX-License-Identifier: MIT
// Package formula: stack-based formula scanner.
//
// Purpose:
//   - Convert one molecular formula into an ElementCount in a single
//     left-to-right pass, expanding ( ) and [ ] groups and their multipliers.
//
// Implementation:
//   - A stack of accumulators holds one frame per open group; the root frame
//     is pushed before scanning. Elements add to the top frame. A closing
//     bracket pops the top frame, scales it by the trailing multiplier and
//     merges it into the enclosing frame, which makes nested multipliers
//     compose transitively.
//
// Determinism:
//   - Molecule.Order records element symbols in first-seen textual order, so
//     callers never depend on map iteration.

package formula

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxCount bounds every count token and every accumulated element total.
const MaxCount = 1<<31 - 1

// ElementCount maps an element symbol (case-sensitive, e.g. "Na") to its atom count.
type ElementCount map[string]int

// Symbols returns the element symbols in lexicographic order.
func (ec ElementCount) Symbols() []string {
	out := make([]string, 0, len(ec))
	for sym := range ec {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// String renders the counts as "{Al:2, O:12, S:3}" in lexicographic order.
func (ec ElementCount) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, sym := range ec.Symbols() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sym)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(ec[sym]))
	}
	sb.WriteByte('}')

	return sb.String()
}

// Molecule pairs a formula string with its resolved element counts.
type Molecule struct {
	Formula string       // formula text as parsed (no leading coefficient)
	Counts  ElementCount // atoms per element
	Order   []string     // element symbols in first-seen textual order
}

// frame is one accumulator on the group stack.
type frame struct {
	counts ElementCount
	open   byte // '(' or '['; zero for the root frame
	pos    int  // offset of the opening bracket
}

// Parse converts a formula such as "Al2(SO4)3" into its element counts.
// It is shorthand for ParseMolecule(formula).Counts.
func Parse(formula string) (ElementCount, error) {
	m, err := ParseMolecule(formula)
	if err != nil {
		return nil, err
	}

	return m.Counts, nil
}

// ParseMolecule scans formula once, left to right, and returns the resolved Molecule.
//
// Errors (all *FormatError, matching ErrMalformed):
//   - empty formula;
//   - a lowercase letter, digit or other character where an element or group must start;
//   - an unmatched or mismatched closing bracket, an unclosed group, an empty group;
//   - a zero count or a count above MaxCount (including after multiplication).
//
// Complexity:
//   - Time O(n + g·e) for n bytes, g groups and e distinct elements per group.
func ParseMolecule(formula string) (Molecule, error) {
	if formula == "" {
		return Molecule{}, formatErrorf(formula, 0, "empty formula")
	}

	stack := []frame{{counts: ElementCount{}}}
	var order []string
	seen := make(map[string]struct{})

	i := 0
	for i < len(formula) {
		ch := formula[i]
		switch {
		case isUpper(ch):
			start := i
			i++
			if i < len(formula) && isLower(formula[i]) {
				i++
			}
			sym := formula[start:i]
			n, next, err := readCount(formula, i)
			if err != nil {
				return Molecule{}, err
			}
			top := stack[len(stack)-1].counts
			if top[sym] > MaxCount-n {
				return Molecule{}, formatErrorf(formula, start, "count of %s exceeds %d", sym, MaxCount)
			}
			top[sym] += n
			if _, ok := seen[sym]; !ok {
				seen[sym] = struct{}{}
				order = append(order, sym)
			}
			i = next

		case ch == '(' || ch == '[':
			stack = append(stack, frame{counts: ElementCount{}, open: ch, pos: i})
			i++

		case ch == ')' || ch == ']':
			if len(stack) == 1 {
				return Molecule{}, formatErrorf(formula, i, "unmatched %q", ch)
			}
			group := stack[len(stack)-1]
			if closerOf(group.open) != ch {
				return Molecule{}, formatErrorf(formula, i, "%q closes %q opened at offset %d", ch, group.open, group.pos)
			}
			if len(group.counts) == 0 {
				return Molecule{}, formatErrorf(formula, group.pos, "empty group")
			}
			mult, next, err := readCount(formula, i+1)
			if err != nil {
				return Molecule{}, err
			}
			stack = stack[:len(stack)-1]
			outer := stack[len(stack)-1].counts
			for sym, c := range group.counts {
				if c > MaxCount/mult || outer[sym] > MaxCount-c*mult {
					return Molecule{}, formatErrorf(formula, i, "count of %s exceeds %d", sym, MaxCount)
				}
				outer[sym] += c * mult
			}
			i = next

		case isLower(ch):
			return Molecule{}, formatErrorf(formula, i, "lowercase letter %q does not start an element", ch)

		case isDigit(ch):
			return Molecule{}, formatErrorf(formula, i, "count without a preceding element or group")

		default:
			r, _ := utf8.DecodeRuneInString(formula[i:])
			return Molecule{}, formatErrorf(formula, i, "unexpected character %q", r)
		}
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1]
		return Molecule{}, formatErrorf(formula, open.pos, "unclosed %q", open.open)
	}

	return Molecule{Formula: formula, Counts: stack[0].counts, Order: order}, nil
}

// readCount reads an optional run of digits starting at i.
// Absent digits mean 1. Returns the count and the offset after the digits.
func readCount(formula string, i int) (int, int, error) {
	j := i
	for j < len(formula) && isDigit(formula[j]) {
		j++
	}
	if j == i {
		return 1, i, nil
	}
	n, err := strconv.Atoi(formula[i:j])
	if err != nil || n > MaxCount {
		return 0, 0, formatErrorf(formula, i, "count %s exceeds %d", formula[i:j], MaxCount)
	}
	if n == 0 {
		return 0, 0, formatErrorf(formula, i, "zero count")
	}

	return n, j, nil
}

func closerOf(open byte) byte {
	if open == '[' {
		return ']'
	}

	return ')'
}

func isUpper(ch byte) bool { return 'A' <= ch && ch <= 'Z' }
func isLower(ch byte) bool { return 'a' <= ch && ch <= 'z' }
func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
