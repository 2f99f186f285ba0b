// Package benchmark measures the hot paths shared by seekctl and seeksim:
// client round-trips against an in-process server, printer rendering and
// the simulated agent's submit path.
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Five repetitions give benchstat enough samples to compare two runs:
//
//	go test -bench=. -benchmem -count=5 ./internal/tests/benchmark/... | tee new.txt
//	benchstat old.txt new.txt
package benchmark
