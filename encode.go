package compound

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodePortfolio reads a JSONL stream with one investment per line.
// Empty lines are skipped.
func DecodePortfolio(r io.Reader) (Portfolio, error) {
	var invs []Investment
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var inv Investment
		if err := json.Unmarshal(lineBytes, &inv); err != nil {
			return Portfolio{}, fmt.Errorf("line %d: could not decode investment %q: %w", line, string(lineBytes), err)
		}
		invs = append(invs, inv)
	}
	if err := scanner.Err(); err != nil {
		return Portfolio{}, fmt.Errorf("reading portfolio: %w", err)
	}
	return Portfolio{investments: invs}, nil
}

// EncodeInvestment writes inv as a single JSON line.
func EncodeInvestment(w io.Writer, inv Investment) error {
	b, err := json.Marshal(inv)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// EncodePortfolio writes every investment of p, one per line, in order.
func EncodePortfolio(w io.Writer, p Portfolio) error {
	for _, inv := range p.investments {
		if err := EncodeInvestment(w, inv); err != nil {
			return fmt.Errorf("encoding investment %q: %w", inv.ID, err)
		}
	}
	return nil
}
