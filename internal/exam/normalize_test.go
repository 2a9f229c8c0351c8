package exam

import "testing"

func TestNormalize_Strings(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"a", "A"},
		{" b ", "B"},
		{"AB", "AB"},
		{"", Blank},
		{"-", Blank},
		{"*", Blank},
		{" ", Blank},
		{"  -  ", Blank},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_LooseTypes(t *testing.T) {
	if got := Normalize(nil); got != Blank {
		t.Errorf("Normalize(nil) = %q, want blank", got)
	}
	if got := Normalize(3.0); got != "3" {
		t.Errorf("Normalize(3.0) = %q, want 3", got)
	}
	if got := Normalize(7); got != "7" {
		t.Errorf("Normalize(7) = %q, want 7", got)
	}
	if got := Normalize(int64(12)); got != "12" {
		t.Errorf("Normalize(int64 12) = %q, want 12", got)
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank(Normalize("-")) {
		t.Error("dash should normalize to blank")
	}
	if IsBlank("A") {
		t.Error("A should not be blank")
	}
}
