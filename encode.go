package rebalance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mpelletier/rebalance/date"
	"github.com/shopspring/decimal"
)

// This file handles the persisted tabular format for holdings and model.
// Both are plain CSV with a header row, addressed by column name so the
// files stay hand-editable and column order is free.

var holdingsColumns = []string{"ticker", "exchange", "quantity", "closing_price", "currency", "update_date"}

// DecodeHoldings reads a holdings table from CSV. Extra columns are
// ignored; missing required columns, unparseable cells and duplicate
// tickers are errors.
func DecodeHoldings(r io.Reader) (*Holdings, error) {
	records, header, err := readCSV(r, holdingsColumns)
	if err != nil {
		return nil, fmt.Errorf("holdings: %w", err)
	}

	var rows []Holding
	for i, record := range records {
		line := i + 2 // header is line 1
		quantity, err := strconv.ParseInt(record[header["quantity"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("holdings line %d: invalid quantity %q: %w", line, record[header["quantity"]], err)
		}
		price, err := decimal.NewFromString(record[header["closing_price"]])
		if err != nil {
			return nil, fmt.Errorf("holdings line %d: invalid closing_price %q: %w", line, record[header["closing_price"]], err)
		}
		updated, err := date.Parse(record[header["update_date"]])
		if err != nil {
			return nil, fmt.Errorf("holdings line %d: %w", line, err)
		}
		rows = append(rows, Holding{
			Ticker:       record[header["ticker"]],
			Exchange:     record[header["exchange"]],
			Quantity:     quantity,
			ClosingPrice: price,
			Currency:     record[header["currency"]],
			UpdateDate:   updated,
		})
	}
	return NewHoldings(rows...)
}

// EncodeHoldings writes the holdings table as canonical CSV: the six
// persisted columns, rows in ticker order. Derived value columns are never
// persisted; they are recomputed on load.
func EncodeHoldings(w io.Writer, h *Holdings) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(holdingsColumns); err != nil {
		return err
	}
	for _, row := range h.Rows() {
		record := []string{
			row.Ticker,
			row.Exchange,
			strconv.FormatInt(row.Quantity, 10),
			row.ClosingPrice.String(),
			row.Currency,
			row.UpdateDate.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeModel reads the target model from CSV and validates it.
func DecodeModel(r io.Reader) (*Model, error) {
	records, header, err := readCSV(r, []string{"ticker", "target_allocation"})
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	var rows []ModelAllocation
	for i, record := range records {
		target, err := decimal.NewFromString(record[header["target_allocation"]])
		if err != nil {
			return nil, fmt.Errorf("model line %d: invalid target_allocation %q: %w", i+2, record[header["target_allocation"]], err)
		}
		rows = append(rows, ModelAllocation{
			Ticker:           record[header["ticker"]],
			TargetAllocation: target,
		})
	}
	return NewModel(rows...)
}

// readCSV reads all records and maps the required column names to indices.
func readCSV(r io.Reader, required []string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty file, want a header row with columns %v", required)
	}
	header := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		header[name] = i
	}
	for _, name := range required {
		if _, ok := header[name]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return all[1:], header, nil
}
