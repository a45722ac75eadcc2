// Package bank reads French bank CSV exports and produces transaction
// params. The statement layout is auto-detected by matching column headers
// against known profiles, so account statements and card exports both work.
package bank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/MrJamesThe3rd/pillars/internal/encoding"
	"github.com/MrJamesThe3rd/pillars/internal/financial"
)

// importCategory is stamped on every imported transaction; the user
// recategorizes afterwards.
const importCategory = "Import bancaire"

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Montant" holding "-10,00").
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// profile describes the column layout of one export format.
type profile struct {
	name       string
	dateCol    string
	descCol    string
	amountMode amountMode
	amountCol  string // amountSingle
	debitCol   string // amountSplit
	creditCol  string // amountSplit
}

func (p profile) requiredCols() []string {
	cols := []string{p.dateCol, p.descCol}

	switch p.amountMode {
	case amountSingle:
		cols = append(cols, p.amountCol)
	case amountSplit:
		cols = append(cols, p.debitCol, p.creditCol)
	}

	return cols
}

// profiles is ordered most-specific first to avoid false matches.
var profiles = []profile{
	{
		name:       "carte",
		dateCol:    "Date",
		descCol:    "Libellé",
		amountMode: amountSplit,
		debitCol:   "Débit",
		creditCol:  "Crédit",
	},
	{
		name:       "relevé",
		dateCol:    "Date",
		descCol:    "Libellé",
		amountMode: amountSingle,
		amountCol:  "Montant",
	},
}

// Parser reads bank CSV exports.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]financial.TransactionParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	matched, cols, headerIdx := detectProfile(rows)
	if matched == nil {
		return nil, fmt.Errorf("no matching statement format: expected columns for carte or relevé")
	}

	return parseRows(matched, cols, rows[headerIdx+1:])
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans for a header row matching a known profile. Bank files
// carry preamble rows (account holder, balances) before the real header.
func detectProfile(rows [][]string) (*profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			cols[strings.TrimSpace(cell)] = i
		}

		for i := range profiles {
			if matchesProfile(profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, -1
}

func matchesProfile(p profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(p *profile, cols colIndex, rows [][]string) ([]financial.TransactionParams, error) {
	var txs []financial.TransactionParams

	for _, row := range rows {
		date, ok := parseDate(row, cols[p.dateCol])
		if !ok {
			// Footer or blank row.
			continue
		}

		amount, txType, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		txs = append(txs, financial.TransactionParams{
			Date:        date,
			Type:        txType,
			Category:    importCategory,
			Amount:      amount,
			Description: cellValue(row, cols[p.descCol]),
		})
	}

	return txs, nil
}

// parseDate reads a dd/mm/yyyy cell, reporting false for empty or
// unparseable values.
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func parseAmount(p *profile, cols colIndex, row []string) (int64, financial.TransactionType, bool) {
	switch p.amountMode {
	case amountSingle:
		return parseSingleAmount(row, cols[p.amountCol])
	case amountSplit:
		return parseSplitAmount(row, cols[p.debitCol], cols[p.creditCol])
	}

	return 0, "", false
}

func parseSingleAmount(row []string, idx int) (int64, financial.TransactionType, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return 0, "", false
	}

	cents, err := parseEuropeanAmount(s)
	if err != nil || cents == 0 {
		return 0, "", false
	}

	if cents < 0 {
		return -cents, financial.TypeExpense, true
	}

	return cents, financial.TypeIncome, true
}

func parseSplitAmount(row []string, debitIdx, creditIdx int) (int64, financial.TransactionType, bool) {
	if s := cellValue(row, debitIdx); s != "" {
		cents, err := parseEuropeanAmount(s)
		if err == nil && cents != 0 {
			return abs(cents), financial.TypeExpense, true
		}
	}

	if s := cellValue(row, creditIdx); s != "" {
		cents, err := parseEuropeanAmount(s)
		if err == nil && cents != 0 {
			return abs(cents), financial.TypeIncome, true
		}
	}

	return 0, "", false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
