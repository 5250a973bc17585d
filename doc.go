/*
Package bignum implements arbitrary-precision arithmetic over three
cooperating numeric kinds:

  - an unsigned decimal magnitude stored as little-endian "declets" of 9
    digits per 32 bits word (the internal nat type),
  - Int, a signed arbitrary-precision binary integer in base 2**32,
  - Dec, an arbitrary-precision decimal number of the form

      (-1)**sign × coefficient × 10**(-scale)

    where the coefficient is a decimal magnitude and the scale is a signed
    32-bit integer. A positive scale denotes fractional digits, a negative
    scale denotes trailing integer zeros kept in exponent form.

All arithmetic on Dec is performed directly in base 10**9 without conversion
to or from binary, so decimal results are exact wherever the operation is
exact (addition, subtraction, multiplication) and correctly scale-aware where
it is not (division to a requested number of significant digits). Int carries
the operations for which base-2 density matters: bit shifts, bitwise
operations with two's-complement semantics for negative operands, and integer
square roots of very large values.

Decimals are finite only: there are no NaNs, infinities or subnormals.
Output of (*Dec).String matches Python's decimal.Decimal.__str__ digit for
digit.

Setters, numeric operations and predicates are represented as methods of the
form:

	func (z *Dec) SetV(v V) *Dec                // z = v
	func (z *Dec) Unary(x *Dec) *Dec            // z = unary x
	func (z *Dec) Binary(x, y *Dec) *Dec        // z = x binary y
	func (x *Dec) Pred() P                      // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z
in that case); if it is one of the operands x or y it may be safely
overwritten (and its memory reused), so

	sum.Add(sum, x)

accumulates values x in sum in place.

Operations whose failure can only be a programming error (division by a zero
divisor, domain violations such as the logarithm of a negative number, or a
non-positive requested precision) panic with an *Error carrying one of the
Kind values. Fallible conversions (ParseDec, ParseInt, (*Dec).Int64, ...)
return an error instead.

The package holds no ambient mutable state: given identical inputs and
precisions, every operation produces bit-identical results across runs.
Transcendental functions live in the math subpackage and thread their shared
constants through an explicit, caller-owned cache.
*/
package bignum
