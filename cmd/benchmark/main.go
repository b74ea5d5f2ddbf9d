// Command benchmark measures live round-trip latency against the Statsig
// Console and evaluation APIs. It needs real credentials in the environment
// and is meant for manual runs, not CI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/statsig-community/statsig-mcp-server/internal/console"
	"github.com/statsig-community/statsig-mcp-server/internal/evaluate"
)

func main() {
	fmt.Println("Statsig MCP Server - Performance Measurements")
	fmt.Println("==============================================")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	measureConsoleLatency(logger)
	measureEvaluationLatency(logger)

	fmt.Println("=== Notes ===")
	fmt.Println()
	fmt.Println("• The second console call reuses the pooled HTTP connection, so the")
	fmt.Println("  difference against the first call is the TLS handshake cost.")
	fmt.Println("• Evaluation endpoints are served from Statsig's edge and are")
	fmt.Println("  typically faster than console reads.")
}

func measureConsoleLatency(logger *slog.Logger) {
	cfg, err := console.LoadConfig()
	if err != nil {
		fmt.Printf("Console config error: %v\n", err)
		return
	}
	client := console.NewClient(cfg, logger)
	if err := client.Initialize(); err != nil {
		fmt.Printf("Console init error: %v\n", err)
		return
	}
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Console API Latency ===")
	fmt.Println()

	fmt.Println("1. Connection Reuse (list_gates):")
	start := time.Now()
	if _, err := client.ListGatesMCP(ctx, console.ListGatesArgs{Limit: 10}); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	coldCall := time.Since(start)
	fmt.Printf("   First call (cold connection): %v\n", coldCall)

	start = time.Now()
	_, _ = client.ListGatesMCP(ctx, console.ListGatesArgs{Limit: 10})
	warmCall := time.Since(start)
	fmt.Printf("   Second call (warm connection): %v\n", warmCall)
	if warmCall > 0 {
		fmt.Printf("   Handshake overhead: %v\n", coldCall-warmCall)
	}
	fmt.Println()

	fmt.Println("2. Read Latency Per Resource:")
	reads := []struct {
		name string
		call func() error
	}{
		{"list_gates", func() error {
			_, err := client.ListGatesMCP(ctx, console.ListGatesArgs{Limit: 10})
			return err
		}},
		{"list_experiments", func() error {
			_, err := client.ListExperimentsMCP(ctx, console.ListExperimentsArgs{Limit: 10})
			return err
		}},
		{"list_dynamic_configs", func() error {
			_, err := client.ListDynamicConfigsMCP(ctx, console.ListDynamicConfigsArgs{Limit: 10})
			return err
		}},
		{"list_segments", func() error {
			_, err := client.ListSegmentsMCP(ctx, console.ListSegmentsArgs{Limit: 10})
			return err
		}},
	}
	for _, read := range reads {
		start := time.Now()
		if err := read.call(); err != nil {
			fmt.Printf("   %-22s: error: %v\n", read.name, err)
			continue
		}
		fmt.Printf("   %-22s: %v\n", read.name, time.Since(start))
	}
	fmt.Println()
}

func measureEvaluationLatency(logger *slog.Logger) {
	cfg, err := evaluate.LoadConfig()
	if err != nil {
		fmt.Printf("Evaluation config error: %v (set STATSIG_SERVER_SECRET_KEY)\n", err)
		return
	}
	client := evaluate.NewClient(cfg, logger)
	if err := client.Initialize(); err != nil {
		fmt.Printf("Evaluation init error: %v\n", err)
		return
	}
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Evaluation API Latency ===")
	fmt.Println()

	user := evaluate.UserAttributes{UserID: "benchmark_user"}

	fmt.Println("3. Single Evaluation:")
	start := time.Now()
	result, err := client.CheckGate(ctx, user, "benchmark_gate")
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   check_gate: %v (value=%v, rule=%s)\n", time.Since(start), result.Value, result.RuleID)
	fmt.Println()

	// Sequential vs concurrent checks over the same connection pool.
	const checks = 10

	fmt.Printf("4. %d Sequential Gate Checks:\n", checks)
	start = time.Now()
	for i := 0; i < checks; i++ {
		_, _ = client.CheckGate(ctx, user, "benchmark_gate")
	}
	sequential := time.Since(start)
	fmt.Printf("   Total: %v (avg %v)\n", sequential, sequential/checks)
	fmt.Println()

	fmt.Printf("5. %d Concurrent Gate Checks:\n", checks)
	start = time.Now()
	var wg sync.WaitGroup
	for i := 0; i < checks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = client.CheckGate(ctx, user, "benchmark_gate")
		}()
	}
	wg.Wait()
	concurrent := time.Since(start)
	fmt.Printf("   Total: %v\n", concurrent)
	if concurrent > 0 {
		fmt.Printf("   Speedup: %.1fx over sequential\n", float64(sequential)/float64(concurrent))
	}
	fmt.Println()
}
