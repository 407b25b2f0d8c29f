// vecbench measures vector.Vector[int] operation throughput across a range
// of element counts and writes a markdown report.
//
// Usage:
//
//	vecbench [flags]
//
// Scenario sizes and repeat counts can be overridden via a JSONC config
// file (see -config); CLI flags take precedence over the config file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"github.com/pzaino/vector/pkg/vector"
)

// scenarioConfig is the JSONC-decodable shape of the -config file. The file
// may contain comments and trailing commas, and is standardized to plain
// JSON before unmarshalling.
type scenarioConfig struct {
	Sizes   []int `json:"sizes"`
	Repeats int   `json:"repeats"`
}

func defaultScenarioConfig() scenarioConfig {
	return scenarioConfig{
		Sizes:   []int{1_000, 100_000},
		Repeats: 5,
	}
}

func loadScenarioConfig(path string) (scenarioConfig, error) {
	cfg := defaultScenarioConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is an operator-supplied CLI flag
	if err != nil {
		return scenarioConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return scenarioConfig{}, fmt.Errorf("invalid JSONC in %s: %w", path, err)
	}

	var fileCfg scenarioConfig
	if err := json.Unmarshal(standardized, &fileCfg); err != nil {
		return scenarioConfig{}, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	if len(fileCfg.Sizes) > 0 {
		cfg.Sizes = fileCfg.Sizes
	}

	if fileCfg.Repeats > 0 {
		cfg.Repeats = fileCfg.Repeats
	}

	return cfg, nil
}

// result holds one benchmark measurement.
type result struct {
	Label string
	Size  int
	Mean  time.Duration
	Min   time.Duration
	Max   time.Duration
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	outDir := flag.String("out", ".benchmarks", "output directory for the report")
	configPath := flag.String("config", "", "optional JSONC scenario config file")
	sizesStr := flag.String("sizes", "", "comma-separated element counts (overrides -config and defaults)")
	repeats := flag.Int("repeats", 0, "measurement repeats per scenario (overrides -config and defaults)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "Usage: vecbench [flags]\n\n")
		fmt.Fprint(os.Stderr, "Benchmarks vector.Vector[int] push, insert, search and sort throughput.\n\n")
		fmt.Fprint(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	cfg, err := loadScenarioConfig(*configPath)
	if err != nil {
		return err
	}

	if *sizesStr != "" {
		sizes, parseErr := parseSizes(*sizesStr)
		if parseErr != nil {
			return parseErr
		}

		cfg.Sizes = sizes
	}

	if *repeats > 0 {
		cfg.Repeats = *repeats
	}

	if err := os.MkdirAll(*outDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	results, err := runAll(cfg)
	if err != nil {
		return err
	}

	report := formatReport(cfg, results)

	timestamp := time.Now().UTC().Format("20060102-150405")
	outFile := filepath.Join(*outDir, fmt.Sprintf("vecbench_%s.md", timestamp))

	// Written atomically so a concurrently-running report reader never
	// observes a half-written file.
	if err := atomic.WriteFile(outFile, strings.NewReader(report)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Println(outFile)

	return nil
}

func parseSizes(raw string) ([]int, error) {
	var sizes []int

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}

		sizes = append(sizes, n)
	}

	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes specified")
	}

	return sizes, nil
}

func runAll(cfg scenarioConfig) ([]result, error) {
	var results []result

	for _, size := range cfg.Sizes {
		pushBack, err := measure(cfg.Repeats, func() error {
			v, buildErr := vector.New[int](vector.WithCapacity[int](uint64(size)))
			if buildErr != nil {
				return buildErr
			}

			for i := 0; i < size; i++ {
				if err := v.PushBack(i); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		results = append(results, result{Label: "PushBack", Size: size, Mean: pushBack.mean, Min: pushBack.min, Max: pushBack.max})

		insertFront, err := measure(cfg.Repeats, func() error {
			v, buildErr := vector.New[int](vector.WithCapacity[int](uint64(size)))
			if buildErr != nil {
				return buildErr
			}

			for i := 0; i < size; i++ {
				if err := v.InsertAt(0, i, vector.ModeStrict); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		results = append(results, result{Label: "InsertAt(0)", Size: size, Mean: insertFront.mean, Min: insertFront.min, Max: insertFront.max})

		sorted, sortBase, err := buildSorted(size)
		if err != nil {
			return nil, err
		}

		search, err := measure(cfg.Repeats, func() error {
			_, _, searchErr := sorted.Search(size/2, intCmp)

			return searchErr
		})
		if err != nil {
			return nil, err
		}

		results = append(results, result{Label: "Search", Size: size, Mean: search.mean, Min: search.min, Max: search.max})

		sortBench, err := measure(cfg.Repeats, func() error {
			v, copyErr := vector.New[int](vector.WithCapacity[int](uint64(size)))
			if copyErr != nil {
				return copyErr
			}

			for i := 0; i < size; i++ {
				if err := v.PushBack(sortBase[i]); err != nil {
					return err
				}
			}

			return v.Sort(intCmp)
		})
		if err != nil {
			return nil, err
		}

		results = append(results, result{Label: "Sort", Size: size, Mean: sortBench.mean, Min: sortBench.min, Max: sortBench.max})
	}

	return results, nil
}

func buildSorted(size int) (*vector.Vector[int], []int, error) {
	v, err := vector.New[int](vector.WithCapacity[int](uint64(size)))
	if err != nil {
		return nil, nil, err
	}

	base := make([]int, size)
	for i := 0; i < size; i++ {
		// A fixed, reversed fill keeps every repeat deterministic and
		// exercises the worst case for the insertion-sort fallback.
		base[i] = size - i
		if err := v.PushBack(base[i]); err != nil {
			return nil, nil, err
		}
	}

	if err := v.Sort(intCmp); err != nil {
		return nil, nil, err
	}

	return v, base, nil
}

func intCmp(a, b int) int { return a - b }

type timing struct {
	mean time.Duration
	min  time.Duration
	max  time.Duration
}

func measure(repeats int, fn func() error) (timing, error) {
	if repeats <= 0 {
		repeats = 1
	}

	var total time.Duration

	minD := time.Duration(1<<63 - 1)

	var maxD time.Duration

	for i := 0; i < repeats; i++ {
		start := time.Now()
		if err := fn(); err != nil {
			return timing{}, err
		}

		elapsed := time.Since(start)
		total += elapsed

		if elapsed < minD {
			minD = elapsed
		}

		if elapsed > maxD {
			maxD = elapsed
		}
	}

	return timing{mean: total / time.Duration(repeats), min: minD, max: maxD}, nil
}

func formatReport(cfg scenarioConfig, results []result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Run %s\n\n", time.Now().UTC().Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- %s/%s, repeats=%d\n\n", runtime.GOOS, runtime.GOARCH, cfg.Repeats))
	sb.WriteString("| operation | size | mean | min | max |\n")
	sb.WriteString("|---|---|---|---|---|\n")

	for _, r := range results {
		sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s |\n", r.Label, r.Size, r.Mean, r.Min, r.Max))
	}

	return sb.String()
}
