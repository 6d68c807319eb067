package dashu

// Repr is the unsigned magnitude container every integer and float
// significand is built from: values of at most two words live inline
// with no heap allocation; longer values live in a heap buffer with
// explicit length.
//
// Unlike a bare `[]Word` slice (already a three-word heap descriptor
// with no small-value path), Repr is a struct: the `small` array carries
// the inline fast path, and `heap` is nil exactly when the value fits
// inline. See DESIGN.md for the reasoning.
type Repr struct {
	small [2]Word
	heap  []Word // nil iff the value is inline (len <= 2)
	n     int    // significant word count
}

// zeroRepr is the canonical representation of 0: inline, length 0.
var zeroRepr = Repr{}

// oneRepr is the canonical representation of 1.
var oneRepr = Repr{small: [2]Word{1, 0}, n: 1}

// IsZero reports whether r encodes the value 0.
func (r Repr) IsZero() bool { return r.n == 0 }

// IsOne reports whether r encodes the value 1.
func (r Repr) IsOne() bool { return r.n == 1 && r.words()[0] == 1 }

// Len returns the number of significant words.
func (r Repr) Len() int { return r.n }

// isInline reports whether r uses the no-allocation fast path.
func (r Repr) isInline() bool { return r.heap == nil }

// words returns the canonical, leading-zero-trimmed view of r's magnitude.
func (r Repr) words() []Word {
	if r.heap != nil {
		return r.heap[:r.n]
	}
	return r.small[:r.n]
}

// capacity returns the usable capacity of r's backing storage.
func (r Repr) capacity() int {
	if r.heap != nil {
		return cap(r.heap)
	}
	return len(r.small)
}

// normLen returns the length of ws after trimming high (most-significant)
// zero words, per invariant 1: a heap buffer's top word is never zero.
func normLen(ws []Word) int {
	n := len(ws)
	for n > 0 && ws[n-1] == 0 {
		n--
	}
	return n
}

// maxReprWords caps buffer length so that a doubled-length buffer never
// overflows int. On a 64-bit host this is far beyond any reachable
// value; it exists so recursive doubling (e.g. repeated squaring)
// cannot wrap.
const maxReprWords = (1 << 60) &^ 1

func checkReprLen(n int) {
	if n > maxReprWords {
		panic("dashu: number too large, exceeds representation size cap")
	}
}

// reprFromOwned builds a Repr taking ownership of ws (which must not be
// aliased elsewhere), trimming leading zero words and choosing the inline
// representation when the trimmed length is <= 2.
func reprFromOwned(ws []Word) Repr {
	n := normLen(ws)
	checkReprLen(n)
	if n <= 2 {
		var r Repr
		r.n = n
		copy(r.small[:], ws[:n])
		return r
	}
	return Repr{heap: ws[:n], n: n}
}

// reprFromStaticSlice builds a Repr from a slice whose backing array the
// caller guarantees is never mutated again (e.g. a package-level literal).
// For the heap case it aliases ws directly instead of copying, so the
// resulting Repr must never be handed to a mutating builder.
func reprFromStaticSlice(ws []Word) Repr {
	n := normLen(ws)
	checkReprLen(n)
	if n <= 2 {
		var r Repr
		r.n = n
		copy(r.small[:], ws[:n])
		return r
	}
	return Repr{heap: ws[:n], n: n}
}

// reprFromWord builds a Repr from a single word.
func reprFromWord(w Word) Repr {
	if w == 0 {
		return zeroRepr
	}
	return Repr{small: [2]Word{w, 0}, n: 1}
}

// reprFromDoubleWord builds a Repr from a (lo, hi) double-word pair.
func reprFromDoubleWord(lo, hi Word) Repr {
	if hi == 0 {
		return reprFromWord(lo)
	}
	return Repr{small: [2]Word{lo, hi}, n: 2}
}

// CloneInto copies src's value into *r, following the capacity policy of
// invariant 3: when r's existing heap buffer has capacity in [m, 4m] (m
// the source length) it is reused in place; otherwise a fresh buffer
// reserving m + growthConst words is allocated. Values copy-on-write in
// this package (results are always built fresh by the operations below),
// so CloneInto exists for callers that want to explicitly reuse an
// existing allocation, e.g. accumulating into a loop-local variable.
func (r *Repr) CloneInto(src Repr) {
	m := src.n
	if m <= 2 {
		r.heap = nil
		r.n = m
		copy(r.small[:], src.words())
		return
	}
	if r.heap != nil {
		c := cap(r.heap)
		if c >= m && c <= 4*m {
			r.heap = r.heap[:m]
			copy(r.heap, src.words())
			r.n = m
			return
		}
	}
	r.heap = cloneReserve(src.words())
	r.n = m
}

const growthConst = 2

// cloneReserve allocates a fresh buffer sized m + growthConst (m the
// source length) and copies src into it, per invariant 3's clone policy.
func cloneReserve(src []Word) []Word {
	m := len(src)
	buf := make([]Word, m, m+growthConst)
	copy(buf, src)
	return buf
}

// buffer is a growable word vector: allocate, push, pushZeros, truncate,
// a slice/mutable-slice view, and a conversion into a normalized Repr.
// It backs every arithmetic routine that produces a result of a priori
// unknown (but boundable) length.
type buffer struct {
	words []Word
}

// allocateBuffer reserves capacity for at least n words without setting
// any length.
func allocateBuffer(n int) *buffer {
	checkReprLen(n)
	return &buffer{words: make([]Word, 0, n)}
}

// push appends w, growing the backing array by the n+n/8+const formula
// from invariant 3 when capacity is exhausted.
func (b *buffer) push(w Word) {
	if len(b.words) == cap(b.words) {
		b.growTo(len(b.words) + 1)
	}
	b.words = append(b.words, w)
}

// pushZeros appends n zero words.
func (b *buffer) pushZeros(n int) {
	need := len(b.words) + n
	if need > cap(b.words) {
		b.growTo(need)
	}
	for i := 0; i < n; i++ {
		b.words = append(b.words, 0)
	}
}

// growTo ensures capacity for at least minLen words.
func (b *buffer) growTo(minLen int) {
	checkReprLen(minLen)
	newCap := minLen + minLen/8 + growthConst
	nb := make([]Word, len(b.words), newCap)
	copy(nb, b.words)
	b.words = nb
}

// truncate shortens the buffer to n words. n must not exceed the current
// length.
func (b *buffer) truncate(n int) {
	b.words = b.words[:n]
}

// asSlice returns the buffer's current contents.
func (b *buffer) asSlice() []Word { return b.words }

// asMutSlice returns a mutable view of the buffer's current contents.
func (b *buffer) asMutSlice() []Word { return b.words }

// len reports the buffer's current length.
func (b *buffer) len() int { return len(b.words) }

// intoRepr consumes the buffer, producing a normalized Repr.
func (b *buffer) intoRepr() Repr {
	return reprFromOwned(b.words)
}

// cmpWords compares two leading-zero-trimmed word slices, most
// significant word first (panics on an unnormalized leading zero, since
// the caller has misrepresented the magnitude).
func cmpWords(x, y []Word) int {
	if len(x) > 0 && x[len(x)-1] == 0 {
		panic("dashu: unnormalized operand (leading zero word)")
	}
	if len(y) > 0 && y[len(y)-1] == 0 {
		panic("dashu: unnormalized operand (leading zero word)")
	}
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares r and s as unsigned magnitudes.
func (r Repr) Cmp(s Repr) int {
	return cmpWords(r.words(), s.words())
}
