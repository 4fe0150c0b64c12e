package seed

import "testing"

func TestRoundFunction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		c, d, k0, k1 uint32
		want0, want1 uint32
	}{
		{name: "zero", want0: 0xab30a730, want1: 0xf456f057},
		{
			name:  "first subkeys of the zero key",
			c:     0x01234567,
			d:     0x89abcdef,
			k0:    0x7c8f8c7e,
			k1:    0xc737a22c,
			want0: 0x2125acb5,
			want1: 0x3297b30c,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got0, got1 := f(tt.c, tt.d, tt.k0, tt.k1)
			if got0 != tt.want0 || got1 != tt.want1 {
				t.Errorf("f = (%#08x, %#08x), want (%#08x, %#08x)", got0, got1, tt.want0, tt.want1)
			}
		})
	}
}

func TestMixMatchesWords(t *testing.T) {
	t.Parallel()

	right := [8]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
	want := [8]byte{0x21, 0x25, 0xac, 0xb5, 0x32, 0x97, 0xb3, 0x0c}

	if got := Mix(right, 0x7c8f8c7e, 0xc737a22c); got != want {
		t.Errorf("Mix = %x, want %x", got, want)
	}
}

func TestG(t *testing.T) {
	t.Parallel()

	if got := g(0); got != 0xb829b829 {
		t.Errorf("g(0) = %#08x, want 0xb829b829", got)
	}

	if got := g(0x01020304); got != 0xaa562818 {
		t.Errorf("g(0x01020304) = %#08x, want 0xaa562818", got)
	}

	if ss0[0] != 0x2989a1a8 || ss1[0] != 0x38380830 || ss2[0] != 0xa1a82989 || ss3[0] != 0x08303838 {
		t.Error("derived lookup tables do not match RFC 4269")
	}
}
