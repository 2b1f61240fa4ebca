// Command report analyzes call-report files in batch. For every input file
// it writes a normalized table CSV and a summary statistics CSV next to the
// requested output directory, and prints the generated insights.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"callpulse/internal/config"
	"callpulse/internal/exporter"
	"callpulse/internal/infrastructure"
	"callpulse/internal/services"
	"callpulse/internal/validation"
)

func main() {
	outDir := flag.String("out", "reports", "output directory for generated CSV files")
	workers := flag.Int("workers", 4, "number of files to process concurrently")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: report [flags] <file-or-directory>...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	logger, err := infrastructure.InitializeLogger(config.LoggingConfig{
		Level:  *logLevel,
		Format: "json",
		Output: "console",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), logger, flag.Args(), *outDir, *workers); err != nil {
		logger.Error("batch processing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, inputs []string, outDir string, workers int) error {
	validator := validation.NewFileValidator(logger)

	files, err := validator.ExpandInputs(inputs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no report files found in %s", strings.Join(inputs, ", "))
	}

	if err := validator.ValidateOutputDirectory(outDir); err != nil {
		return err
	}

	service := services.NewReportService(logger, nil)
	csvExporter := exporter.NewCSVExporter(logger)

	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, file := range files {
		g.Go(func() error {
			if err := processFile(ctx, service, csvExporter, file, outDir); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("batch processing complete",
		slog.Int("files", len(files)),
		slog.String("output", outDir))
	return nil
}

func processFile(ctx context.Context, service *services.ReportService, csvExporter *exporter.CSVExporter, path, outDir string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	filename := filepath.Base(path)
	analysis, err := service.Analyze(ctx, filename, f)
	if err != nil {
		return err
	}

	printAnalysis(filename, analysis.Warnings, analysis.Insights)

	// Re-read for each export; the pipeline is stream-based and stateless.
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	if err := writeExport(ctx, filepath.Join(outDir, base+"_processed.csv"), path, filename, service, csvExporter, exportTable); err != nil {
		return err
	}
	return writeExport(ctx, filepath.Join(outDir, base+"_summary.csv"), path, filename, service, csvExporter, exportSummary)
}

type exportKind int

const (
	exportTable exportKind = iota
	exportSummary
)

func writeExport(ctx context.Context, outPath, inPath, filename string, service *services.ReportService, csvExporter *exporter.CSVExporter, kind exportKind) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	switch kind {
	case exportTable:
		table, err := service.NormalizedTable(ctx, filename, in)
		if err != nil {
			return err
		}
		return csvExporter.WriteTable(out, table)
	default:
		stats, err := service.DescribeTable(ctx, filename, in)
		if err != nil {
			return err
		}
		return csvExporter.WriteColumnStats(out, stats)
	}
}

func printAnalysis(filename string, warnings, insights []string) {
	fmt.Printf("== %s ==\n", filename)
	for _, w := range warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	for _, insight := range insights {
		fmt.Printf("  - %s\n", insight)
	}
}
