package seed

import "encoding/binary"

// g is the G function: S-box substitution of each byte followed by the masked linear layer.
func g(x uint32) uint32 {
	return ss0[byte(x)] ^ ss1[byte(x>>8)] ^ ss2[byte(x>>16)] ^ ss3[byte(x>>24)]
}

// f is the round function on the two words of the right half.
func f(c, d, k0, k1 uint32) (uint32, uint32) {
	t0 := c ^ k0
	t1 := d ^ k1

	t1 = g(t0 ^ t1)
	t0 = g(t0 + t1)
	t1 = g(t1 + t0)
	t0 += t1

	return t0, t1
}

// Mix applies the round function to an 8-byte right half with one round's subkey pair.
func Mix(right [8]byte, k0, k1 uint32) [8]byte {
	var out [8]byte

	c, d := f(binary.BigEndian.Uint32(right[0:4]), binary.BigEndian.Uint32(right[4:8]), k0, k1)

	binary.BigEndian.PutUint32(out[0:4], c)
	binary.BigEndian.PutUint32(out[4:8], d)

	return out
}
