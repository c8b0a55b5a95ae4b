package lattice_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/kaleido/lattice"
)

func BenchmarkBuild(b *testing.B) {
	for _, depth := range []int{7, 12} {
		b.Run(fmt.Sprintf("depth=%02d", depth), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := lattice.Build(depth); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCacheGet(b *testing.B) {
	var c lattice.Cache
	if _, err := c.Get(7); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Get(7); err != nil {
			b.Fatal(err)
		}
	}
}
