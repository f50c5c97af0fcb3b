package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Expected CSV schema (header-addressed, extra columns ignored):
// Member_number, Date, itemDescription
const (
	columnMember = "Member_number"
	columnDate   = "Date"
	columnItem   = "itemDescription"
)

// LoadCSVFile reads a transaction CSV from disk. A missing or unreadable
// file is the caller's problem to handle; it is never absorbed here.
func LoadCSVFile(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transaction file: %w", err)
	}
	defer f.Close()

	txs, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return txs, nil
}

// LoadCSV parses transaction records and merges them into deduplicated
// transactions, one per member per date. Item text is whitespace-trimmed;
// rows with an empty item are skipped.
func LoadCSV(r io.Reader) ([]Transaction, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{columnMember, columnDate, columnItem} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		item := strings.TrimSpace(record[index[columnItem]])
		if item == "" {
			continue
		}
		rows = append(rows, Row{
			Member: strings.TrimSpace(record[index[columnMember]]),
			Date:   strings.TrimSpace(record[index[columnDate]]),
			Item:   item,
		})
	}

	return mergeRows(rows), nil
}
