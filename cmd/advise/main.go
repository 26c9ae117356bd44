// Package main runs the engine offline: rows in from a JSON or CSV file,
// recommendations out as a markdown report plus CSV.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"campaign-budget-engine/internal/domain"
	"campaign-budget-engine/internal/engine"
	"campaign-budget-engine/internal/reporting"
)

func main() {
	input := flag.String("input", "", "Input file: .json (engine request or rows array) or .csv")
	outputDir := flag.String("output-dir", "output", "Output directory for the report files")
	focus := flag.String("focus", "demo", "Scoring focus: demo, enrollment or hybrid")
	variant := flag.String("variant", "A", "Experiment weight-table variant: A or B")
	timeframe := flag.Int("timeframe", 28, "Selected window length in days")
	seasonality := flag.Float64("seasonality", 1.0, "Seasonality multiplier")

	flag.Parse()

	logger := log.New(os.Stdout, "[advise] ", log.LstdFlags|log.Lshortfile)

	if *input == "" {
		logger.Fatal("--input is required")
	}

	req, err := loadRequest(*input)
	if err != nil {
		logger.Fatalf("Failed to load input: %v", err)
	}
	if req.Focus == "" {
		req.Focus = *focus
	}
	if req.ExperimentVariant == "" {
		req.ExperimentVariant = *variant
	}
	if req.TimeframeSelection == 0 {
		req.TimeframeSelection = *timeframe
	}
	if req.SeasonalityMultiplier == 0 {
		req.SeasonalityMultiplier = *seasonality
	}

	res, err := engine.New().Run(req)
	if err != nil {
		logger.Fatalf("Engine run failed: %v", err)
	}
	logger.Printf("Scored %d campaigns from %d rows", res.CampaignCount, res.RowCount)

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		logger.Fatalf("Failed to create output dir: %v", err)
	}

	report := reporting.Build(res, time.Now())
	mdPath := filepath.Join(*outputDir, "RECOMMENDATIONS.md")
	if err := os.WriteFile(mdPath, []byte(reporting.RenderMarkdown(report)), 0o644); err != nil {
		logger.Fatalf("Failed to write markdown report: %v", err)
	}
	csvPath := filepath.Join(*outputDir, "recommendations.csv")
	if err := os.WriteFile(csvPath, []byte(reporting.RenderCSV(res.Recommendations)), 0o644); err != nil {
		logger.Fatalf("Failed to write CSV: %v", err)
	}

	logger.Printf("Wrote %s and %s", mdPath, csvPath)
}

// loadRequest reads an engine request from disk. JSON files may contain
// either a full request object or a bare rows array; CSV files carry
// rows only.
func loadRequest(path string) (*engine.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(f)
	case ".csv":
		rows, err := loadCSV(f)
		if err != nil {
			return nil, err
		}
		return &engine.Request{Rows: rows, FileName: filepath.Base(path)}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

func loadJSON(r io.Reader) (*engine.Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var req engine.Request
	if err := json.Unmarshal(data, &req); err == nil && len(req.Rows) > 0 {
		return &req, nil
	}

	var rows []domain.PerformanceRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse json input: %w", err)
	}
	return &engine.Request{Rows: rows}, nil
}

// loadCSV parses header-keyed rows. Unknown columns are ignored; missing
// numeric cells read as zero.
func loadCSV(r io.Reader) ([]domain.PerformanceRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	num := func(record []string, name string) float64 {
		v, _ := strconv.ParseFloat(cell(record, name), 64)
		return v
	}

	var rows []domain.PerformanceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rows = append(rows, domain.PerformanceRow{
			Date:              cell(record, "date"),
			Campaign:          cell(record, "campaign"),
			Spend:             num(record, "spend"),
			Leads:             num(record, "leads"),
			Demos:             num(record, "demos"),
			Enrollments:       num(record, "enrollments"),
			Conversions:       num(record, "conversions"),
			Impressions:       num(record, "impressions"),
			Clicks:            num(record, "clicks"),
			Budget:            num(record, "budget"),
			BidStrategy:       cell(record, "bid_strategy"),
			TCPA:              num(record, "tcpa"),
			BudgetUtilization: num(record, "budget_utilization"),
		})
	}
	return rows, nil
}
