// Package main provides a performance benchmarking tool for the ransomready CLI.
// It measures end-to-end scoring times for every output format,
// running each case multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - ransomready binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for the generated answers file and exports
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Profile  string
	Format   string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Formats  []string
	Profiles map[string]string // profile name -> answer value
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Timeout: 30 * time.Second,
		Runs:    5,
		Formats: []string{"text", "json", "csv", "parquet"},
		Profiles: map[string]string{
			"critical":  "0",
			"moderate":  "2",
			"excellent": "4",
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results, config.Formats)
}

// checkPrerequisites verifies that the ransomready binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("ransomready"); err != nil {
		return fmt.Errorf("ransomready binary not found in PATH")
	}
	if info, err := os.Stat(config.WorkDir); err != nil || !info.IsDir() {
		return fmt.Errorf("work directory %s not found", config.WorkDir)
	}
	return nil
}

// prepareAnswers writes a template and fills every answer with value.
func prepareAnswers(config BenchmarkConfig, profile, value string) (string, error) {
	path := filepath.Join(config.WorkDir, fmt.Sprintf("answers_%s.yaml", profile))
	out, err := exec.Command("ransomready", "template", path).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("template failed: %v\n%s", err, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	filled := strings.ReplaceAll(string(data), "value: null", "value: "+value)
	if err := os.WriteFile(path, []byte(filled), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// runBenchmarks executes all formats for every answer profile
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d profiles, %d formats, %v timeout, %d runs\n",
		len(config.Profiles), len(config.Formats), config.Timeout, config.Runs)

	for _, profile := range []string{"critical", "moderate", "excellent"} {
		answers, err := prepareAnswers(config, profile, config.Profiles[profile])
		if err != nil {
			return nil, err
		}
		fmt.Printf("Benchmarking %s profile\n", profile)

		for _, format := range config.Formats {
			args := []string{"score", answers, "--output", format, "--color", "no"}
			if format != "text" {
				args = append(args, "--output-file", filepath.Join(config.WorkDir, fmt.Sprintf("report_%s.%s", profile, format)))
			}
			cold, warm := runBenchmark(config, args)
			fmt.Printf("  %-8s: Cold: %s, Warm: %s\n", format, cold, warm)
			results = append(results, BenchmarkResult{Profile: profile, Format: format, ColdTime: cold, WarmTime: warm})
		}
	}

	return results, nil
}

// runBenchmark executes a ransomready command multiple times and returns cold time and warm average
func runBenchmark(config BenchmarkConfig, args []string) (coldTime, warmAvg string) {
	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("ransomready", args...)
		cmd.Dir = config.WorkDir

		done := make(chan error, 1)
		go func() {
			_, err := cmd.CombinedOutput()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	coldTime, warmAvg = "TIMEOUT", "TIMEOUT"
	if len(times) > 0 {
		coldTime = fmt.Sprintf("%.3fs", times[0])
	}
	if len(times) > 1 {
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(times)-1))
	}
	return coldTime, warmAvg
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("ransomready_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"profile", "format", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Profile, result.Format, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results grouped by format
func printSummary(results []BenchmarkResult, formats []string) {
	fmt.Printf("Benchmark complete\n")
	for _, format := range formats {
		fmt.Printf("%s output:\n", format)
		for _, result := range results {
			if result.Format == format {
				fmt.Printf("  %-10s: Cold: %s, Warm: %s\n", result.Profile, result.ColdTime, result.WarmTime)
			}
		}
	}
}
