package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/apereira/fluxo/internal/database/repository"
)

// FindDuplicateTransactions loads the stored transactions, collapses exact
// hash duplicates, and flags likely double imports for review.
func (s *RecordService) FindDuplicateTransactions(ctx context.Context) ([]DuplicatePair, error) {
	txs, err := s.Transactions.List(ctx, repository.TransactionFilters{})
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return NearDuplicates(RemoveDuplicateTransactions(txs)), nil
}

// RecordHash derives the import-dedup key for a record: date, normalized
// description and two-decimal amount, SHA-256 hashed. Imports carrying the
// same key are the same record.
func RecordHash(date time.Time, description string, amount float64) string {
	key := fmt.Sprintf("%s_%s_%.2f",
		date.Format(time.DateOnly),
		strings.ToLower(strings.TrimSpace(description)),
		amount,
	)
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", sum[:])
}

var hashPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// IsValidHash reports whether s looks like a hex SHA-256 digest.
func IsValidHash(s string) bool {
	return hashPattern.MatchString(s)
}

// RemoveDuplicateTransactions drops transactions whose import hash was
// already seen, generating missing hashes on the way. Order is preserved;
// the first occurrence wins.
func RemoveDuplicateTransactions(txs []repository.Transaction) []repository.Transaction {
	seen := make(map[string]bool, len(txs))
	var unique []repository.Transaction
	for _, t := range txs {
		if t.ImportHash == nil {
			h := RecordHash(t.Date, t.Description, t.Amount)
			t.ImportHash = &h
		}
		if seen[*t.ImportHash] {
			continue
		}
		seen[*t.ImportHash] = true
		unique = append(unique, t)
	}
	return unique
}

// DuplicatePair flags two transactions that look like the same movement
// imported twice with slightly different descriptions.
type DuplicatePair struct {
	A          repository.Transaction
	B          repository.Transaction
	Similarity float64
}

// NearDuplicates scans for same-amount transactions within a week of each
// other whose descriptions differ by less than 40% of their length. Exact
// hash duplicates never reach this stage; the insert path rejects them.
func NearDuplicates(txs []repository.Transaction) []DuplicatePair {
	var pairs []DuplicatePair
	for i := 0; i < len(txs); i++ {
		for j := i + 1; j < len(txs); j++ {
			a, b := txs[i], txs[j]
			if !nearMatchCandidate(a, b) {
				continue
			}
			pairs = append(pairs, DuplicatePair{A: a, B: b, Similarity: descriptionSimilarity(a.Description, b.Description)})
		}
	}
	return pairs
}

func nearMatchCandidate(a, b repository.Transaction) bool {
	if a.Amount != b.Amount {
		return false
	}
	if daysApart(a.Date, b.Date) > 7 {
		return false
	}
	dist := levenshtein.ComputeDistance(strings.ToUpper(a.Description), strings.ToUpper(b.Description))
	maxlen := float64(len(a.Description))
	if len(b.Description) > len(a.Description) {
		maxlen = float64(len(b.Description))
	}
	if maxlen == 0 {
		return false
	}
	return float64(dist)/maxlen < 0.4
}

func descriptionSimilarity(a, b string) float64 {
	maxlen := len(a)
	if len(b) > maxlen {
		maxlen = len(b)
	}
	if maxlen == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(maxlen)
}

func daysApart(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}
