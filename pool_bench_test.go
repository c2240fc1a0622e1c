//go:build bench

package reportpdf

import (
	"context"
	"fmt"
	"runtime"
	"testing"
)

// benchConverter is a no-op pdfConverter so pool benchmarks measure
// pool mechanics rather than browser work.
type benchConverter struct{}

func (benchConverter) ToPDF(_ context.Context, _ string, _ *pdfOptions) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func (benchConverter) Close() error { return nil }

func benchFactory() pdfConverter { return benchConverter{} }

// prewarmPool builds every converter up front so the steady state is
// what gets measured.
func prewarmPool(p *converterPool) {
	convs := make([]pdfConverter, p.Size())
	for i := range convs {
		convs[i] = p.Acquire()
	}
	for _, conv := range convs {
		p.Release(conv)
	}
}

// Uncontended checkout cost across pool sizes.
func BenchmarkConverterPool_Checkout(b *testing.B) {
	for _, size := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			pool := newConverterPool(size, benchFactory)
			defer pool.Close()
			prewarmPool(pool)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pool.Release(pool.Acquire())
			}
		})
	}
}

// Checkout cost when goroutines outnumber converters. SetParallelism
// multiplies GOMAXPROCS, so a pool of 2 sees heavy queueing.
func BenchmarkConverterPool_Contended(b *testing.B) {
	pool := newConverterPool(2, benchFactory)
	defer pool.Close()
	prewarmPool(pool)

	b.SetParallelism(16)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			pool.Release(pool.Acquire())
		}
	})
}

// Checkout cost when the pool matches the CPU count, the production
// default.
func BenchmarkConverterPool_Parallel(b *testing.B) {
	pool := newConverterPool(runtime.GOMAXPROCS(0), benchFactory)
	defer pool.Close()
	prewarmPool(pool)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			pool.Release(pool.Acquire())
		}
	})
}
