package linkedlist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// go test -bench=. -cpuprofile profile.out
// go tool pprof -http="localhost:8000" pprofbin ./profile.out

func BenchmarkList(b *testing.B) {
	const count = 1000

	requireT := require.New(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := New[int]()
		for j := 0; j < count; j++ {
			l.Add(j)
		}
		for j := 0; j < count; j++ {
			requireT.NoError(l.Insert(j, rand.Intn(l.Size())))
		}
		for l.Size() > 0 {
			requireT.NoError(l.Delete(rand.Intn(l.Size())))
		}
	}
	b.StopTimer()
}
