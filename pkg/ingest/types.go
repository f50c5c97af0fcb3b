// Package ingest turns external transaction records into the deduplicated
// item sequences the graph consumes. Parsing failures surface as errors to
// the caller; the graph itself never sees a malformed record.
package ingest

import (
	"fmt"
	"sort"

	"github.com/basketlab/copurchase/pkg/graph"
)

// Row is one raw purchase record: one member buying one item on one date.
type Row struct {
	Member string
	Date   string
	Item   string
}

// Transaction is one merged purchase event. All rows sharing a member and
// date collapse into a single transaction; Items holds each item once, in
// first-seen order.
type Transaction struct {
	Key   string   `json:"key"`
	Items []string `json:"items"`
}

// mergeRows groups rows into transactions keyed member_date and dedupes
// items inside each transaction. This is the one place item dedup happens;
// the graph trusts its input. Transactions come back sorted by key so a
// given record set always feeds the graph in the same order.
func mergeRows(rows []Row) []Transaction {
	order := make([]string, 0)
	items := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, row := range rows {
		key := fmt.Sprintf("%s_%s", row.Member, row.Date)
		if seen[key] == nil {
			order = append(order, key)
			seen[key] = make(map[string]bool)
		}
		if seen[key][row.Item] {
			continue
		}
		seen[key][row.Item] = true
		items[key] = append(items[key], row.Item)
	}

	sort.Strings(order)

	txs := make([]Transaction, 0, len(order))
	for _, key := range order {
		txs = append(txs, Transaction{Key: key, Items: items[key]})
	}
	return txs
}

// Feed folds a transaction set into the store and reports how many
// transactions and item occurrences were applied.
func Feed(s *graph.Store, txs []Transaction) (transactions, items int) {
	for _, tx := range txs {
		s.AddTransaction(tx.Items)
		transactions++
		items += len(tx.Items)
	}
	return transactions, items
}
