package phasediag_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/phasehull/chem"
	"github.com/katalvlaran/phasehull/phasediag"
)

// ternaryEntries fabricates a deterministic A-B-C entry set: three
// references plus a grid of binary and ternary compounds at varying
// depths below the reference plane.
func ternaryEntries() []chem.Entry {
	a, b, c := chem.Elem("A"), chem.Elem("B"), chem.Elem("C")
	entries := []chem.Entry{
		chem.NewEntry("A", chem.MustComposition(map[chem.Species]float64{a: 1}), -1),
		chem.NewEntry("B", chem.MustComposition(map[chem.Species]float64{b: 1}), -1),
		chem.NewEntry("C", chem.MustComposition(map[chem.Species]float64{c: 1}), -1),
	}
	pairs := [][2]chem.Species{{a, b}, {b, c}, {a, c}}
	for p, pair := range pairs {
		for i := 1; i <= 3; i++ {
			name := fmt.Sprintf("P%d_%d", p, i)
			comp := chem.MustComposition(map[chem.Species]float64{
				pair[0]: float64(i),
				pair[1]: float64(4 - i),
			})
			depth := 0.2 + 0.1*float64(i)
			entries = append(entries, chem.NewEntry(name, comp, -4*(1+depth)))
		}
	}
	entries = append(entries,
		chem.NewEntry("ABC", chem.MustComposition(map[chem.Species]float64{a: 1, b: 1, c: 1}), -4.2))

	return entries
}

// BenchmarkBuild_Ternary measures full diagram construction with the
// in-process hull provider over a 13-entry ternary set.
func BenchmarkBuild_Ternary(b *testing.B) {
	entries := ternaryEntries()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := phasediag.Build(entries, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_Binary measures the minimal binary construction path.
func BenchmarkBuild_Binary(b *testing.B) {
	a, bb := chem.Elem("A"), chem.Elem("B")
	entries := []chem.Entry{
		chem.NewEntry("A", chem.MustComposition(map[chem.Species]float64{a: 1}), -1),
		chem.NewEntry("B", chem.MustComposition(map[chem.Species]float64{bb: 1}), -1),
		chem.NewEntry("AB", chem.MustComposition(map[chem.Species]float64{a: 1, bb: 1}), -3),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := phasediag.Build(entries, nil); err != nil {
			b.Fatal(err)
		}
	}
}
