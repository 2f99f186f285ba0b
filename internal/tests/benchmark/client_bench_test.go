package benchmark

import (
	"context"
	"testing"
)

// BenchmarkClientHealth measures a full health round trip against the
// in-process simulator.
func BenchmarkClientHealth(b *testing.B) {
	ts, client := newBenchServer(b)
	defer ts.Close()

	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if env := client.Health(ctx); !env.OK() {
			b.Fatalf("health failed: %v", env.Err)
		}
	}
}

// BenchmarkClientQuery measures the query round trip, including answer
// synthesis on the simulator side.
func BenchmarkClientQuery(b *testing.B) {
	ts, client := newBenchServer(b)
	defer ts.Close()

	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if env := client.Query(ctx, "benchmark query"); !env.OK() {
			b.Fatalf("query failed: %v", env.Err)
		}
	}

	b.StopTimer()
	reportMemory(b, "mem")
}

// BenchmarkClientStatus measures the status poll, the request the wait
// loop issues repeatedly.
func BenchmarkClientStatus(b *testing.B) {
	ts, client := newBenchServer(b)
	defer ts.Close()

	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if env := client.Status(ctx); !env.OK() {
			b.Fatalf("status failed: %v", env.Err)
		}
	}
}
