package naming

import (
	"reflect"
	"testing"
)

func TestResolveTemplate(t *testing.T) {
	r := NewResolver("", "{name}_{N}")

	// 2 rows x 2 cols in row-major order yields base_1 .. base_4.
	want := []string{"base_1", "base_2", "base_3", "base_4"}
	i := 0
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if got := r.Resolve("base", row, col, 2); got != want[i] {
				t.Errorf("Resolve(%d,%d) = %q, want %q", row, col, got, want[i])
			}
			i++
		}
	}
}

func TestResolveTemplatePlaceholders(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"{name}_{row}_{col}", "photo_1_2"},
		{"{name}-{n}", "photo-5"},
		{"{name}_{N}", "photo_6"},
		{"fixed", "fixed"},
		{"{name}{unknown}", "photo{unknown}"}, // literal braces pass through
	}
	for _, tt := range tests {
		r := NewResolver("", tt.template)
		if got := r.Resolve("photo", 1, 2, 3); got != tt.want {
			t.Errorf("template %q = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestResolveSuffixListCycles(t *testing.T) {
	r := NewResolver("_a,_b", "")

	want := []string{"base_a", "base_b", "base_a", "base_b"}
	for n, w := range want {
		if got := r.Resolve("base", 0, n, 4); got != w {
			t.Errorf("slice %d = %q, want %q", n, got, w)
		}
	}
}

func TestResolveCyclicProperty(t *testing.T) {
	// resolve(n) and resolve(n+m) produce the same suffix for a list
	// of length m.
	r := NewResolver("_x,_y,_z", "")
	m := 3
	for n := 0; n < 9; n++ {
		a := r.Resolve("b", 0, n, 100)
		b := r.Resolve("b", 0, n+m, 100)
		if a != b {
			t.Errorf("index %d and %d differ: %q vs %q", n, n+m, a, b)
		}
	}
}

func TestCyclesOver(t *testing.T) {
	r := NewResolver("_a,_b", "")
	if r.CyclesOver(2) {
		t.Error("list length equal to slice count should not cycle")
	}
	if !r.CyclesOver(3) {
		t.Error("list shorter than slice count should cycle")
	}
	if (NewResolver("", "{name}_{n}")).CyclesOver(100) {
		t.Error("template mode never cycles")
	}
}

func TestParseSuffixList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"_a,_b,_c", []string{"_a", "_b", "_c"}},
		{"_a, _b , _c", []string{"_a", "_b", "_c"}},
		{"_a _b _c", []string{"_a", "_b", "_c"}},
		{"-foo,-bar", []string{"-foo", "-bar"}},
	}
	for _, tt := range tests {
		if got := ParseSuffixList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseSuffixList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateExclusivity(t *testing.T) {
	r := NewResolver("_a,_b", "{name}_{n}")
	if err := r.Validate(true); err == nil {
		t.Error("suffixes plus explicit template should fail validation")
	}
	if err := r.Validate(false); err != nil {
		t.Errorf("suffixes with default template should validate: %v", err)
	}
	if err := NewResolver("", "{name}_{n}").Validate(true); err != nil {
		t.Errorf("template alone should validate: %v", err)
	}
}
