package dashu

import (
	"encoding/binary"
	"fmt"
)

// Ambient: binary wire form and encoding.Text{M,Unm}arshaler, using a
// fixed little-endian layout: a sign flag, then the magnitude as
// little-endian 64-bit words (zero-length for zero).

// MarshalBinary encodes x as: 1 byte sign flag (1 == negative), then
// len(words)*8 little-endian bytes of significand.
func (x *Int) MarshalBinary() ([]byte, error) {
	ws := x.abs.words()
	buf := make([]byte, 1+len(ws)*_S)
	if x.neg {
		buf[0] = 1
	}
	for i, w := range ws {
		binary.LittleEndian.PutUint64(buf[1+i*_S:], w)
	}
	return buf, nil
}

// UnmarshalBinary decodes the format MarshalBinary produces.
func (z *Int) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		*z = Int{}
		return nil
	}
	neg := data[0] != 0
	rest := data[1:]
	if len(rest)%_S != 0 {
		return fmt.Errorf("dashu: UnmarshalBinary: malformed length %d", len(data))
	}
	n := len(rest) / _S
	ws := make([]Word, n)
	for i := 0; i < n; i++ {
		ws[i] = binary.LittleEndian.Uint64(rest[i*_S:])
	}
	*z = *newIntFromWords(neg, ws)
	return nil
}

// MarshalText implements encoding.TextMarshaler, rendering x in base 10.
func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	v, err := ParseInt(string(text), 10)
	if err != nil {
		return err
	}
	*z = *v
	return nil
}

// MarshalBinary encodes a ConstDivisor as its original modulus.
func (cd *ConstDivisor) MarshalBinary() ([]byte, error) {
	return newIntFromWords(false, cd.Modulus().words()).MarshalBinary()
}

// MarshalBinary encodes a Reduced value as its encoded residue followed
// by its modulus.
func (r Reduced) MarshalBinary() ([]byte, error) {
	valBytes, err := newIntFromWords(false, r.val.words()).MarshalBinary()
	if err != nil {
		return nil, err
	}
	modBytes, err := r.ctx.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(valBytes)+len(modBytes))
	binary.LittleEndian.PutUint64(out, uint64(len(valBytes)))
	copy(out[8:], valBytes)
	copy(out[8+len(valBytes):], modBytes)
	return out, nil
}

// MarshalBinary encodes a FloatRepr as its significand's binary form,
// the exponent as a signed little-endian 64-bit integer, and a trailing
// precision placeholder of 0 (precision is a FloatContext concern, kept
// separate from the value).
func (f *FloatRepr) MarshalBinary() ([]byte, error) {
	sigBytes, err := f.sig.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(sigBytes)+8+8)
	copy(out, sigBytes)
	binary.LittleEndian.PutUint64(out[len(sigBytes):], uint64(f.exp))
	binary.LittleEndian.PutUint64(out[len(sigBytes)+8:], 0)
	return out, nil
}
