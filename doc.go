// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mpfloat implements arbitrary-precision binary floating-point
arithmetic with correct rounding.

The implementation follows the multiple-precision model of MPFR: every
operation computes its result as if with unbounded precision, then rounds
it once to the destination precision using the destination rounding mode.
The Accuracy of the result describes the direction of the rounding error
(the ternary value), and sticky status flags record exceptional events.

The API is modeled after big.Float. A Float value is a multi-precision
floating-point number with a mantissa of configurable precision (in bits),
a rounding mode, and an accuracy. Unlike big.Float, the package supports
NaN values, keeps IEEE-754 style status flags (Underflow, Overflow,
DivByZero, NaN, Inexact, ERange) in a package-wide register, and operates
within a configurable exponent range; results whose exponent falls outside
the range [emin, emax] overflow to infinity or underflow to zero according
to the rounding mode.

The zero value for a Float corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	x := new(Float)  // x is a *Float of value 0

Alternatively, new Float values can be allocated and initialized with the
functions

	func New(prec uint) (*Float, error)
	func NewDefault() *Float
	func NewFloat(mant int64, exp int) *Float

New and NewDefault return a Float initialized to NaN, the MPFR
convention, so that reading a variable before setting it surfaces as a
NaN result rather than a silent zero. More flexibility is provided with
explicit setters, for instance:

	z := new(Float).SetUint64(123)    // z := 123.0

Setters, numeric operations and predicates are represented as methods of
the form:

	func (z *Float) SetV(v V) *Float          // z = v
	func (z *Float) Unary(x *Float) *Float    // z = unary x
	func (z *Float) Binary(x, y *Float) *Float // z = x binary y
	func (x *Float) Pred() P                  // p = pred(x)

For unary and binary operations, the result is the receiver (usually
named z in that case; see below); if it is one of the operands x or y it
may be safely overwritten (and its memory reused).

Arithmetic expressions are typically written as a sequence of individual
method calls, with each call corresponding to an operation. The receiver
denotes the result and the method arguments are the operation's operands.
For instance, given three *Float values a, b and c, the invocation

	c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever
value was held in c before. Unless specified otherwise, operations permit
aliasing of parameters, so it is perfectly ok to write

	sum.Add(sum, x)

to accumulate values x in a sum.

(By always passing in a result value via the receiver, memory use can be
much better controlled. Instead of having to allocate new memory for each
result, an operation can reuse the space allocated for the result value,
and overwrite that value with the new result in the process.)

Notational convention: Incoming method parameters (including the
receiver) are named consistently in the API to clarify their use.
Incoming operands are usually named x, y, a, b, and so on, but never z. A
parameter specifying the result is named z (typically the receiver).

For instance, the arguments for (*Float).Add are named x and y, and
because the receiver specifies the result destination, it is called z:

	func (z *Float) Add(x, y *Float) *Float

Methods of this form typically return the incoming receiver as well, to
enable simple call chaining.

Methods which don't require a result value to be passed in (for instance,
Float.Sign), simply return the result. In this case, the receiver is
typically the first operand, named x:

	func (x *Float) Sign() int

Various methods support conversions between strings and corresponding
numeric values, and vice versa: Float implements the Stringer interface
for a (default) string representation of the value, but also provides
SetString methods to initialize a Float value from a string in a variety
of supported formats (see the SetString documentation), including any
base between 2 and 62 via AppendBase and Parse.

Finally, *Float satisfies the fmt package's Scanner interface for
scanning and the Formatter interface for formatted printing.

The status flags and the exponent range live in a single package-wide
register, like the control word of a hardware FPU. Programs that need
isolated flag scopes or per-computation precision management can use the
context subpackage, and the math subpackage provides correctly rounded
elementary functions (Exp, Log, trigonometric and hyperbolic functions,
Pow, Gamma) as well as random distribution sampling.
*/
package mpfloat
