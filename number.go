// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Number is the value-typed layer on top of the mantissa engine,
// generalizing decimal.go's Decimal (sign + exponent + mantissa +
// precision + rounding mode + accuracy) from decimal to binary
// exponent bookkeeping. Unlike the teacher, whose fallible paths
// surface through a panic-carrying ErrNaN recovered by the context
// package, every Number method here returns its error explicitly: the
// mantissa engine never panics, so there is nothing for a caller to
// recover.
package bigfloat

// A Number represents a signed, arbitrary-but-bounded-precision binary
// floating point value: sign × mantissa × 2**exponent. The zero value
// is ready to use and represents +0 at precision 64, rounding to
// nearest even.
type Number struct {
	neg  bool
	mant Mantissa // nil for zero
	exp  int32    // value lies in [2**(exp-1), 2**exp) when mant != nil
	prec uint32
	mode RoundingMode
	acc  Accuracy
}

// defaultPrec is used by NewNumber and by the zero value of Number.
const defaultPrec = 64

// NewNumber returns a new Number set to +0 at the default precision.
func NewNumber() *Number {
	return &Number{prec: defaultPrec, mode: ToNearestEven}
}

func (z *Number) ensureDefaults() {
	if z.prec == 0 {
		z.prec = defaultPrec
	}
}

// Prec returns the target precision of z, in bits.
func (z *Number) Prec() uint32 { z.ensureDefaults(); return z.prec }

// SetPrec sets z's target precision and reports z. It does not
// immediately round z's current value; the next arithmetic result
// computed into z observes the new precision.
func (z *Number) SetPrec(prec uint32) *Number {
	if prec == 0 {
		prec = defaultPrec
	}
	z.prec = prec
	return z
}

// Mode returns z's rounding mode.
func (z *Number) Mode() RoundingMode { return z.mode }

// SetMode sets z's rounding mode and reports z.
func (z *Number) SetMode(mode RoundingMode) *Number {
	z.mode = mode
	return z
}

// Acc returns the accuracy of the most recent operation that produced z.
func (z *Number) Acc() Accuracy { return z.acc }

// Sign returns -1, 0 or +1 depending on whether z is negative, zero or
// positive.
func (z *Number) Sign() int {
	if z.mant == nil {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// Signbit reports whether z is negative or negative zero.
func (z *Number) Signbit() bool { return z.neg }

// IsZero reports whether z == 0 (either sign).
func (z *Number) IsZero() bool { return z.mant == nil }

// Clone returns an independent copy of z.
func (z *Number) Clone() *Number {
	z.ensureDefaults()
	c := &Number{neg: z.neg, exp: z.exp, prec: z.prec, mode: z.mode, acc: z.acc}
	if z.mant != nil {
		c.mant = Mantissa(limbs(z.mant).clone())
	}
	return c
}

// Set sets z to x and reports z. z takes on x's precision and rounding
// mode, and the value is copied without rounding.
func (z *Number) Set(x *Number) *Number {
	if z == x {
		return z
	}
	z.neg, z.exp, z.acc = x.neg, x.exp, Exact
	if x.prec != 0 {
		z.prec = x.prec
	}
	z.ensureDefaults()
	z.mode = x.mode
	if x.mant == nil {
		z.mant = nil
	} else {
		z.mant = Mantissa(limbs(x.mant).clone())
	}
	return z
}

// SetInt64 sets z to the value of x, with a precision sufficient to
// hold x exactly, and reports z.
func (z *Number) SetInt64(x int64) *Number {
	z.ensureDefaults()
	neg := x < 0
	u := uint64(x)
	if neg {
		u = uint64(-x)
	}
	return z.setUint64(u, neg)
}

// SetUint64 sets z to the value of x and reports z.
func (z *Number) SetUint64(x uint64) *Number {
	z.ensureDefaults()
	return z.setUint64(x, false)
}

func (z *Number) setUint64(u uint64, neg bool) *Number {
	if u == 0 {
		z.neg, z.mant, z.exp, z.acc = neg, nil, 0, Exact
		return z
	}
	mag := limbs{Word(u), Word(u >> _W)}.norm()
	m, shift := normalize(mag)
	z.mant = m
	z.neg = neg
	z.exp = int32(mag.bitLen())
	z.acc = Exact
	_ = shift
	return z
}

// Cmp compares z and y and returns -1, 0 or +1 depending on whether
// z < y, z == y or z > y.
func (z *Number) Cmp(y *Number) int {
	zz, yz := z.IsZero(), y.IsZero()
	switch {
	case zz && yz:
		return 0
	case zz:
		if y.neg {
			return 1
		}
		return -1
	case yz:
		if z.neg {
			return -1
		}
		return 1
	}
	if z.neg != y.neg {
		if z.neg {
			return -1
		}
		return 1
	}
	c := cmpMagnitude(z, y)
	if z.neg {
		c = -c
	}
	return c
}

func cmpMagnitude(z, y *Number) int {
	if z.exp != y.exp {
		if z.exp < y.exp {
			return -1
		}
		return 1
	}
	return z.mant.cmp(y.mant)
}

// Neg sets z = -x and reports z.
func (z *Number) Neg(x *Number) *Number {
	z.Set(x)
	if z.mant != nil {
		z.neg = !z.neg
	}
	return z
}

// Abs sets z = |x| and reports z.
func (z *Number) Abs(x *Number) *Number {
	z.Set(x)
	z.neg = false
	return z
}

// scale returns s such that x's value equals mant (as an integer) times
// 2**s; x must be non-zero.
func (x *Number) scale() int {
	return int(x.exp) - x.mant.bitLen()
}

// round stores into z the value mag * 2**scale, rounded to z's current
// precision and mode, and reports z and any ExponentOverflow error.
// Regardless of how the rounded mantissa ends up aligned in storage,
// the resulting exponent is always scale + rawBits(mag) + bump: bump is
// 1 exactly when rounding carried the value into the next power-of-two
// bracket, 0 otherwise, since normalize's internal word-alignment shift
// cancels against the padding it introduces.
func (z *Number) round(op string, mag limbs, scale int, neg bool) (*Number, error) {
	z.ensureDefaults()
	mag = mag.norm()
	if len(mag) == 0 {
		z.neg, z.mant, z.exp, z.acc = neg, nil, 0, Exact
		return z, nil
	}
	rawBits := mag.bitLen()
	if z.mode == None {
		m, _ := normalize(mag)
		z.mant, z.neg, z.acc = m, neg, Exact
		z.exp = int32(scale + rawBits)
		return z, z.checkExpRange(op)
	}
	m, bump, acc := roundMagnitude(mag, z.prec, z.mode, neg)
	z.mant = m
	z.neg = neg
	z.acc = acc
	z.exp = int32(scale + rawBits + bump)
	return z, z.checkExpRange(op)
}

// checkExpRange reports an ExponentOverflow error (signed to match z's
// sign) when z's exponent has drifted outside [MinExp, MaxExp], the
// binary counterpart of decimal.go's exponent-range check in setExp.
func (z *Number) checkExpRange(op string) error {
	switch {
	case z.exp > MaxExp:
		return errExponentOverflow(op, signOf(z.neg))
	case z.exp < MinExp:
		return errExponentOverflow(op, signOf(z.neg))
	default:
		return nil
	}
}

func signOf(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// roundMagnitude rounds a non-zero magnitude to prec significant bits
// under the given mode, reporting the rounded Mantissa, an exponent
// bump (0 or 1, applied when rounding carries out into a new top bit)
// and the resulting Accuracy.
func roundMagnitude(mag limbs, prec uint32, mode RoundingMode, neg bool) (Mantissa, int, Accuracy) {
	rawBits := mag.bitLen()
	if uint32(rawBits) <= prec {
		out, _ := normalize(mag)
		return out, 0, Exact
	}
	drop := rawBits - int(prec)
	kept := mag.shr(uint(drop))
	guard, sticky := guardAndSticky(mag, drop)
	roundUp := decideRoundUp(mode, neg, kept, guard, sticky)
	bump := 0
	if roundUp {
		kept = uaddWord(kept, 1)
		if kept.bitLen() > int(prec) {
			kept = kept.shr(1)
			bump = 1
		}
	}
	out, _ := normalize(kept)
	acc := Exact
	if guard || sticky {
		acc = makeAcc(roundUp != neg)
	}
	return out, bump, acc
}

func guardAndSticky(mag limbs, drop int) (guard, sticky bool) {
	if drop <= 0 {
		return false, false
	}
	wordIdx := (drop - 1) / _W
	bitIdx := uint((drop - 1) % _W)
	guard = mag[wordIdx]&(1<<bitIdx) != 0
	for i := 0; i < wordIdx; i++ {
		if mag[i] != 0 {
			sticky = true
			break
		}
	}
	if !sticky && bitIdx > 0 {
		mask := Word(1<<bitIdx - 1)
		if mag[wordIdx]&mask != 0 {
			sticky = true
		}
	}
	return
}

func decideRoundUp(mode RoundingMode, neg bool, kept limbs, guard, sticky bool) bool {
	switch mode {
	case ToZero, Down:
		return false
	case Up:
		return guard || sticky
	case ToPosInf:
		return !neg && (guard || sticky)
	case ToNegInf:
		return neg && (guard || sticky)
	case ToNearestAway:
		return guard
	case None:
		return false
	case ToNearestEven:
		fallthrough
	default:
		if !guard {
			return false
		}
		if sticky {
			return true
		}
		if len(kept) == 0 {
			return false
		}
		return kept[0]&1 == 1
	}
}

// Add sets z = x + y, rounded to z's precision, and reports z and any
// error (ExponentOverflow if the result's exponent falls outside
// [MinExp, MaxExp]).
func (z *Number) Add(x, y *Number) (*Number, error) {
	if x.IsZero() {
		return z.roundExisting("Add", y)
	}
	if y.IsZero() {
		return z.roundExisting("Add", x)
	}
	sx, sy := x.scale(), y.scale()
	sCommon := sx
	if sy < sCommon {
		sCommon = sy
	}
	xs := snat{neg: x.neg, abs: limbs(x.mant).shl(uint(sx - sCommon))}
	ys := snat{neg: y.neg, abs: limbs(y.mant).shl(uint(sy - sCommon))}
	sum := xs.add(ys)
	if sum.isZero() {
		z.neg, z.mant, z.exp, z.acc = false, nil, 0, Exact
		return z, nil
	}
	return z.round("Add", sum.abs, sCommon, sum.neg)
}

// Sub sets z = x - y, rounded to z's precision, and reports z and any
// error (ExponentOverflow if the result's exponent falls outside
// [MinExp, MaxExp]).
func (z *Number) Sub(x, y *Number) (*Number, error) {
	ny := y.Clone()
	if ny.mant != nil {
		ny.neg = !ny.neg
	}
	zz, err := z.Add(x, ny)
	if e, ok := err.(*Error); ok {
		e.Op = "Sub"
	}
	return zz, err
}

func (z *Number) roundExisting(op string, x *Number) (*Number, error) {
	z.ensureDefaults()
	if x.IsZero() {
		z.neg, z.mant, z.exp, z.acc = x.neg, nil, 0, Exact
		return z, nil
	}
	return z.round(op, limbs(x.mant), x.scale(), x.neg)
}

// Mul sets z = x * y, rounded to z's precision, and reports z and any
// error (ExponentOverflow if the result's exponent falls outside
// [MinExp, MaxExp]).
func (z *Number) Mul(x, y *Number) (*Number, error) {
	z.ensureDefaults()
	if x.IsZero() || y.IsZero() {
		z.neg, z.mant, z.exp, z.acc = x.neg != y.neg, nil, 0, Exact
		return z, nil
	}
	if _, err := makeLimbs("Mul", len(x.mant)+len(y.mant)); err != nil {
		return z, err
	}
	p := mulDispatch(limbs(x.mant), limbs(y.mant))
	scale := x.scale() + y.scale()
	return z.round("Mul", p, scale, x.neg != y.neg)
}

// Quo sets z = x / y, rounded to z's precision, and reports z and any
// error (DivisionByZero when y is zero, ExponentOverflow if the
// result's exponent falls outside [MinExp, MaxExp]).
func (z *Number) Quo(x, y *Number) (*Number, error) {
	z.ensureDefaults()
	if y.IsZero() {
		return z, errDivisionByZero("Quo")
	}
	if x.IsZero() {
		z.neg, z.mant, z.exp, z.acc = x.neg != y.neg, nil, 0, Exact
		return z, nil
	}
	// Scale the dividend left by prec+2 guard bits plus the divisor's
	// own width, so the integer quotient carries enough bits below its
	// binary point for correct rounding; a nonzero remainder is folded
	// back in as a sticky bit rather than dropped.
	guard := int(z.prec) + 2
	yBits := len(y.mant) * _W
	numLen := len(x.mant) + (guard+yBits)/_W + 1
	if _, err := makeLimbs("Quo", numLen); err != nil {
		return z, err
	}
	num := limbs(x.mant).shl(uint(guard + yBits))
	q, r := divDispatch(num, limbs(y.mant))
	if !r.norm().isZero() {
		if len(q) == 0 {
			q = limbs{1}
		} else {
			q = q.clone()
			q[0] |= 1
		}
	}
	scale := x.scale() - y.scale() - guard - yBits
	return z.round("Quo", q, scale, x.neg != y.neg)
}

// Ldexp sets z = x * 2**e, exactly (e may be negative), and reports z
// and any error (ExponentOverflow if the shifted exponent falls
// outside [MinExp, MaxExp]). The scaling itself is a pure exponent
// adjustment: no rounding or reallocation of the mantissa is needed,
// since a binary mantissa scales exactly by any power of two.
func (z *Number) Ldexp(x *Number, e int) (*Number, error) {
	z.ensureDefaults()
	if x.IsZero() {
		z.neg, z.mant, z.exp, z.acc = x.neg, nil, 0, Exact
		return z, nil
	}
	mant := Mantissa(limbs(x.mant).clone())
	neg, acc := x.neg, x.acc
	exp := int(x.exp) + e
	z.mant, z.neg, z.acc, z.exp = mant, neg, acc, int32(exp)
	return z, z.checkExpRange("Ldexp")
}

// MantExp breaks x into a normalized mantissa and a power-of-two
// exponent in the math/big.Float sense: it sets mant to x scaled so
// that |mant| lies in [0.5, 1), and returns exp such that
// x == mant * 2**exp. If mant is nil, x is left untouched and only the
// exponent is returned. The zero value of x reports a mant of zero and
// an exponent of 0.
func (x *Number) MantExp(mant *Number) int {
	if x.IsZero() {
		if mant != nil {
			mant.Set(x)
		}
		return 0
	}
	if mant != nil {
		mant.ensureDefaults()
		mant.neg = x.neg
		mant.mant = Mantissa(limbs(x.mant).clone())
		mant.acc = x.acc
		mant.exp = 0
	}
	return int(x.exp)
}

// SetMantExp sets z = mant * 2**exp and reports z and any error, the
// exact inverse of MantExp: z.SetMantExp(m, e) where e, m =
// x.MantExp(new(Number)) reconstructs x.
func (z *Number) SetMantExp(mant *Number, exp int) (*Number, error) {
	zz, err := z.Ldexp(mant, exp)
	if e, ok := err.(*Error); ok {
		e.Op = "SetMantExp"
	}
	return zz, err
}

// LeadingOnes returns the number of consecutive 1 bits at the top of
// x's mantissa (0 for zero), the same "how close is the normalized
// mantissa to the top of its bracket" measure ln uses to size its
// extra-precision guard against cancellation when the argument is
// near 1.
func (x *Number) LeadingOnes() int {
	if x.IsZero() {
		return 0
	}
	m := limbs(x.mant)
	n := 0
	for i := len(m) - 1; i >= 0; i-- {
		w := m[i]
		for b := _W - 1; b >= 0; b-- {
			if w&(Word(1)<<uint(b)) == 0 {
				return n
			}
			n++
		}
	}
	return n
}

// FMA sets z = x*y + u, computed with only one rounding (the exact
// product is formed before it is ever aligned against u or rounded),
// and reports z and any error (ExponentOverflow if the result's
// exponent falls outside [MinExp, MaxExp]).
func (z *Number) FMA(x, y, u *Number) (*Number, error) {
	z.ensureDefaults()
	if x.IsZero() || y.IsZero() {
		return z.roundExisting("FMA", u)
	}
	if u.IsZero() {
		zz, err := z.Mul(x, y)
		if e, ok := err.(*Error); ok {
			e.Op = "FMA"
		}
		return zz, err
	}
	if _, err := makeLimbs("FMA", len(x.mant)+len(y.mant)); err != nil {
		return z, err
	}
	p := mulDispatch(limbs(x.mant), limbs(y.mant))
	pScale := x.scale() + y.scale()
	pNeg := x.neg != y.neg

	su := u.scale()
	sCommon := pScale
	if su < sCommon {
		sCommon = su
	}
	ps := snat{neg: pNeg, abs: p.shl(uint(pScale - sCommon))}
	us := snat{neg: u.neg, abs: limbs(u.mant).shl(uint(su - sCommon))}
	sum := ps.add(us)
	if sum.isZero() {
		z.neg, z.mant, z.exp, z.acc = false, nil, 0, Exact
		return z, nil
	}
	return z.round("FMA", sum.abs, sCommon, sum.neg)
}

// Sqrt sets z = sqrt(x), rounded to z's precision, and reports z and
// any error (InvalidArgument for a negative x).
func (z *Number) Sqrt(x *Number) (*Number, error) {
	z.ensureDefaults()
	if x.neg && !x.IsZero() {
		return z, errInvalidArgument("Sqrt", "square root of negative number")
	}
	if x.IsZero() {
		z.neg, z.mant, z.exp, z.acc = false, nil, 0, Exact
		return z, nil
	}
	// sqrt(m * 2**s) = sqrt(m * 2**(s mod 2)) * 2**((s - s mod 2)/2);
	// reduce to an even scale first so the final division by two is
	// exact, then shift in 2*extra guard bits before taking the
	// integer square root.
	sx := x.scale()
	mag := limbs(x.mant).clone()
	if sx&1 != 0 {
		mag = mag.shl(1)
		sx--
	}
	extra := int(z.prec) + 2
	if _, err := makeLimbs("Sqrt", len(mag)+2*extra/_W+1); err != nil {
		return z, err
	}
	mag = mag.shl(uint(2 * extra))
	s := isqrt(mag)
	scale := sx/2 - extra
	return z.round("Sqrt", s, scale, false)
}
