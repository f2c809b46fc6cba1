package xlsx

import (
	"fmt"
	"time"

	"github.com/etnz/rocksling"
	"github.com/etnz/rocksling/date"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the output workbook.
const (
	PositionsSheet = "Positions"
	TargetsSheet   = "Strategy Targets"
	RunSheet       = "Run"
)

// TemplateFile is the RockSling input template expected next to the export.
const TemplateFile = "RockSling-Input-Template - Secondaries.xlsx"

// Run describes how an output workbook was produced.
type Run struct {
	ID            ulid.ULID
	GeneratedAt   time.Time
	InvestorID    string
	InvestorName  string
	Strategy      string // the commitment strategy lookup, e.g. "pe"
	Portfolio     string
	Underwriting  rocksling.Underwriting
	ValuationDate date.Date
	Source        string // the fund performance export
}

// NewRun returns a run with a fresh identifier generated now.
func NewRun() Run {
	now := time.Now()
	return Run{ID: ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()), GeneratedAt: now}
}

// WriteOutput writes the RockSling rows, their strategy targets and the run
// description to a new workbook at path.
func WriteOutput(path string, rows rocksling.Rows, targets []rocksling.Target, run Run) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PositionsSheet); err != nil {
		return err
	}
	if err := writePositions(f, rows); err != nil {
		return fmt.Errorf("cannot write %s: %w", PositionsSheet, err)
	}
	if _, err := f.NewSheet(TargetsSheet); err != nil {
		return err
	}
	if err := writeTargets(f, targets, run.Underwriting); err != nil {
		return fmt.Errorf("cannot write %s: %w", TargetsSheet, err)
	}
	if _, err := f.NewSheet(RunSheet); err != nil {
		return err
	}
	if err := writeRun(f, run); err != nil {
		return fmt.Errorf("cannot write %s: %w", RunSheet, err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save %q: %w", path, err)
	}
	return nil
}

// setRow writes values on row r (starting at 1) of sheet.
func setRow(f *excelize.File, sheet string, r int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// number converts a numeric cell to a float, other cells are kept as text.
func number(cell string) any {
	if cell == "" {
		return ""
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return cell
	}
	return d.InexactFloat64()
}

func writePositions(f *excelize.File, rows rocksling.Rows) error {
	t := rows.Table()
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := setRow(f, PositionsSheet, 1, header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		values := make([]any, len(row))
		for j, cell := range row {
			if rocksling.NumericColumns[t.Header[j]] {
				values[j] = number(cell)
			} else {
				values[j] = cell
			}
		}
		if err := setRow(f, PositionsSheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeTargets(f *excelize.File, targets []rocksling.Target, u rocksling.Underwriting) error {
	header := []any{"FUND ID", "Fund", "Preqin Strategy", "RockSling Strategy", "Target Net IRR", "Target Net MoIC", "Underwriting Target (" + string(u) + ")"}
	if err := setRow(f, TargetsSheet, 1, header); err != nil {
		return err
	}
	for i, t := range targets {
		values := []any{t.FundID, t.Fund, t.FundStrategy}
		if t.Mapped {
			values = append(values,
				t.Rocksling,
				t.TargetNetIRR.InexactFloat64(),
				t.TargetNetMoIC.InexactFloat64(),
				t.Selected.InexactFloat64())
		}
		if err := setRow(f, TargetsSheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeRun(f *excelize.File, run Run) error {
	valuation := ""
	if !run.ValuationDate.IsZero() {
		valuation = run.ValuationDate.String()
	}
	fields := [][]any{
		{"Run ID", run.ID.String()},
		{"Generated At", run.GeneratedAt.Format(time.RFC3339)},
		{"Investor ID", run.InvestorID},
		{"Investor", run.InvestorName},
		{"Strategy Lookup", run.Strategy},
		{"Portfolio", run.Portfolio},
		{"Underwriting", string(run.Underwriting)},
		{"Valuation Date", valuation},
		{"Source", run.Source},
	}
	for i, field := range fields {
		if err := setRow(f, RunSheet, i+1, field); err != nil {
			return err
		}
	}
	return nil
}
