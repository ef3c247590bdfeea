package schash_test

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// intKey hashes to itself.
type intKey int

func (k intKey) Hash() int               { return int(k) }
func (k intKey) Equal(other intKey) bool { return k == other }

// uuidKey spreads random UUIDs with xxhash.
type uuidKey uuid.UUID

func (k uuidKey) Hash() int {
	return int(xxhash.Sum64(k[:]))
}

func (k uuidKey) Equal(other uuidKey) bool { return k == other }

// mixedKey hashes only the high half of a counter, so runs of 256 keys collide.
type mixedKey uint64

func (k mixedKey) Hash() int {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(k)>>8)
	return int(xxhash.Sum64(buf[:]))
}

func (k mixedKey) Equal(other mixedKey) bool { return k == other }

// getMemoryUsage returns the current memory stats as a formatted string
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// reportRate attaches an operations-per-second metric to the benchmark result.
func reportRate(b *testing.B, ops int, seconds float64, unit string) float64 {
	rate := float64(ops) / seconds
	b.ReportMetric(rate, unit)
	return rate
}
