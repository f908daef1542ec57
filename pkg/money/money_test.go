package money

import "testing"

func TestRound2_HalfUp(t *testing.T) {
	cases := []struct{ in, want string }{
		{"110.005", "110.01"},
		{"110.004", "110.00"},
		{"0.125", "0.13"},
		{"1319.999", "1320.00"},
		{"100", "100.00"},
	}
	for _, tc := range cases {
		got := Round2(MustParse(tc.in))
		if got.StringFixed(2) != tc.want {
			t.Fatalf("Round2(%s) = %s, want %s", tc.in, got.StringFixed(2), tc.want)
		}
	}
}

func TestRound4(t *testing.T) {
	cases := []struct{ in, want string }{
		{"0.12345", "0.1235"},
		{"0.10", "0.1000"},
		{"0.99995", "1.0000"},
	}
	for _, tc := range cases {
		got := Round4(MustParse(tc.in))
		if got.StringFixed(4) != tc.want {
			t.Fatalf("Round4(%s) = %s, want %s", tc.in, got.StringFixed(4), tc.want)
		}
	}
}

func TestMustParse_PanicsOnGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for malformed input")
		}
	}()
	MustParse("not-a-number")
}
