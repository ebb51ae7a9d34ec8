package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// FallbackCategory is used for transactions without a category label.
const FallbackCategory = "General"

// maxBreakdownEntries caps the breakdown to the top entries by amount.
const maxBreakdownEntries = 5

// CategoryBreakdownEntry is one category's share of a period total.
type CategoryBreakdownEntry struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int             `json:"percentage"`
}

// Breakdown ranks the categories of one transaction type by summed amount.
//
// Only reportable transactions of the requested type are counted. The result
// holds at most five entries, ordered by amount descending; equal amounts are
// ordered alphabetically to keep the output stable. Percentages are rounded
// to integers relative to the type's total and are zero when the total is.
func Breakdown(transactions []Transaction, transactionType TransactionType) []CategoryBreakdownEntry {
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero

	for _, t := range transactions {
		if t.Type != transactionType || !t.Reportable() {
			continue
		}

		category := t.Category
		if category == "" {
			category = FallbackCategory
		}

		sums[category] = sums[category].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	entries := make([]CategoryBreakdownEntry, 0, len(sums))
	for category, amount := range sums {
		entries = append(entries, CategoryBreakdownEntry{
			Category: category,
			Amount:   amount,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Amount.GreaterThan(entries[j].Amount)
		}

		return entries[i].Category < entries[j].Category
	})

	if len(entries) > maxBreakdownEntries {
		entries = entries[:maxBreakdownEntries]
	}

	if total.IsZero() {
		return entries
	}

	hundred := decimal.NewFromInt(100)
	for i := range entries {
		entries[i].Percentage = int(entries[i].Amount.Div(total).Mul(hundred).Round(0).IntPart())
	}

	return entries
}
