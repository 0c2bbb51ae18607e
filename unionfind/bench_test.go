package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/partition/unionfind"
)

const benchN = 1 << 16

// randomPairs returns m deterministic element pairs in [1, n].
func randomPairs(n, m int) [][2]int {
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, m)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n) + 1, r.Intn(n) + 1}
	}

	return pairs
}

// BenchmarkUnion measures building a partition from 2N random unions.
func BenchmarkUnion(b *testing.B) {
	pairs := randomPairs(benchN, 2*benchN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := unionfind.New(benchN)
		for _, pr := range pairs {
			_ = p.Union(pr[0], pr[1])
		}
	}
}

// BenchmarkFind compares plain union-by-size with path halving.
func BenchmarkFind(b *testing.B) {
	pairs := randomPairs(benchN, benchN)
	for _, tc := range []struct {
		name string
		opts []unionfind.Option
	}{
		{"BySize", nil},
		{"PathHalving", []unionfind.Option{unionfind.WithPathCompression()}},
	} {
		b.Run(tc.name, func(b *testing.B) {
			p := unionfind.New(benchN, tc.opts...)
			mustUnion(b, p, pairs...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = p.Find(i%benchN + 1)
			}
		})
	}
}

// BenchmarkCountSets measures the full O(N) scan behind CountSets.
func BenchmarkCountSets(b *testing.B) {
	p := unionfind.New(benchN)
	mustUnion(b, p, randomPairs(benchN, benchN/2)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.CountSets()
	}
}
