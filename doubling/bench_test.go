package doubling_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lqdouble/doubling"
)

// benchmarkSum runs Sum on a random stable n×n pair. The transition is
// scaled to spectral radius well under 1 so every call converges; the rng
// seed is fixed for reproducible inputs. Fails on unexpected errors.
func benchmarkSum(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	aData := make([]float64, n*n)
	bData := make([]float64, n*n)
	for i := range aData {
		aData[i] = rng.Float64() * 0.5 / float64(n) // row sums < 0.5 → radius < 0.5
		bData[i] = rng.Float64()
	}
	a1 := mat.NewDense(n, n, aData)
	b1 := mat.NewDense(n, n, bData)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := doubling.Sum(a1, b1); err != nil {
			b.Fatalf("Sum failed: %v", err)
		}
	}
}

// BenchmarkSum_Small benchmarks the doubling sum on 4×4 matrices.
func BenchmarkSum_Small(b *testing.B) {
	benchmarkSum(b, 4)
}

// BenchmarkSum_Medium benchmarks the doubling sum on 32×32 matrices.
func BenchmarkSum_Medium(b *testing.B) {
	benchmarkSum(b, 32)
}

// BenchmarkSum_Large benchmarks the doubling sum on 128×128 matrices.
func BenchmarkSum_Large(b *testing.B) {
	benchmarkSum(b, 128)
}
