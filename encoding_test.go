package dzcobs

import "testing"

func TestMaxEncodedLen_KnownValues(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 3},
		{1, 4},
		{127, 130},
		{128, 132},
		{254, 258},
	}
	for _, c := range cases {
		if got := MaxEncodedLen(c.n); got != c.want {
			t.Errorf("MaxEncodedLen(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestEncoding_String(t *testing.T) {
	cases := []struct {
		e    Encoding
		want string
	}{
		{Plain, "PLAIN"},
		{Dict1, "DICT_1"},
		{Dict2, "DICT_2"},
		{reserved, "RESERVED"},
		{Encoding(99), "UNKNOWN"},
	}
	for _, c := range cases {
		if got := c.e.String(); got != c.want {
			t.Errorf("Encoding(%d).String() = %q, want %q", c.e, got, c.want)
		}
	}
}
