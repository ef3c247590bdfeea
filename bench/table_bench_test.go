// Package schash_test holds benchmarks for the chained hash table.
//
// The standard benchmarks here scale with b.N. The scale benchmarks in
// scale_keys_test.go run once over a fixed working set and log rates.
package schash_test

import (
	"testing"

	"github.com/theflywheel/schash"
)

func BenchmarkInsert(b *testing.B) {
	tbl := schash.New[intKey]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tbl.Insert(intKey(i))
	}
}

func BenchmarkContains(b *testing.B) {
	const n = 100_000
	tbl := schash.New[intKey]()
	for i := 0; i < n; i++ {
		tbl.Insert(intKey(i))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !tbl.Contains(intKey(i % n)) {
			b.Fatalf("Key %d not found", i%n)
		}
	}
}

func BenchmarkContainsMiss(b *testing.B) {
	const n = 100_000
	tbl := schash.New[intKey]()
	for i := 0; i < n; i++ {
		tbl.Insert(intKey(i))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if tbl.Contains(intKey(n + i)) {
			b.Fatalf("Key %d should be absent", n+i)
		}
	}
}

func BenchmarkInsertRemove(b *testing.B) {
	tbl := schash.New[intKey]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tbl.Insert(intKey(i))
		tbl.Remove(intKey(i))
	}
}

func BenchmarkCollidingChains(b *testing.B) {
	const n = 10_000
	tbl := schash.New[mixedKey]()
	for i := 0; i < n; i++ {
		tbl.Insert(mixedKey(i))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tbl.Contains(mixedKey(i % n))
	}
}

func BenchmarkHashString(b *testing.B) {
	const key = "a player name of typical length"
	for i := 0; i < b.N; i++ {
		schash.HashString(key, schash.DefaultSize)
	}
}
