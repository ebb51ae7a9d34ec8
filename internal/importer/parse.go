// Package importer parses bank statement exports into transactions.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// The columns of a statement CSV.
const (
	Date = iota
	Payee
	Memo
	Outflow
	Inflow
)

// Parse reads a statement CSV and returns the transactions for the account.
//
// Every line is either an outflow (expense) or an inflow (income). Amounts
// are amount texts, so both decimal separator conventions are accepted. The
// category is assigned from the first match rule matching the memo, falling
// back to the payee.
func Parse(f io.Reader, account models.Account, rules []models.MatchRule) ([]models.Transaction, error) {
	reader := csv.NewReader(f)
	reader.ReuseRecord = true

	var transactions []models.Transaction

	// Skip the header line
	_, err := reader.Read()
	if err == io.EOF {
		return []models.Transaction{}, nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		if len(record) <= Inflow {
			return csvReadError(reader, errors.New("the line does not have enough columns"))
		}

		date, err := parseStatementDate(record[Date])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not parse date: %w", err))
		}

		transaction := models.Transaction{
			Date:            date,
			Note:            strings.TrimSpace(record[Memo]),
			SourceAccountID: account.ID,
			Participants:    participants(record[Payee]),
		}

		outflow := strings.TrimSpace(record[Outflow])
		inflow := strings.TrimSpace(record[Inflow])

		switch {
		case outflow != "" && inflow != "":
			return csvReadError(reader, errors.New("both outflow and inflow are set for the transaction"))

		case outflow == "" && inflow == "":
			return csvReadError(reader, errors.New("no amount is set for the transaction"))

		case outflow != "":
			amount, ok := ledger.ParseAmount(outflow)
			if !ok {
				return csvReadError(reader, errors.New("the outflow is not a valid amount"))
			}

			transaction.Type = ledger.TypeExpense
			transaction.Amount = amount

		default:
			amount, ok := ledger.ParseAmount(inflow)
			if !ok {
				return csvReadError(reader, errors.New("the inflow is not a valid amount"))
			}

			transaction.Type = ledger.TypeIncome
			transaction.Amount = amount
		}

		if transaction.Amount.IsZero() {
			return csvReadError(reader, errors.New("the amount for a transaction must not be 0"))
		}

		if category, ok := models.MatchCategory(rules, transaction.Note); ok {
			transaction.Category = category
		} else if category, ok := models.MatchCategory(rules, record[Payee]); ok {
			transaction.Category = category
		}

		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

// parseStatementDate accepts ISO dates and the slash format bank exports
// commonly use.
func parseStatementDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}

	return time.Parse("01/02/2006", value)
}

func participants(payee string) []string {
	payee = strings.TrimSpace(payee)
	if payee == "" {
		return nil
	}

	return []string{payee}
}

// csvReadError wraps an error with the line of the input it occurred in.
func csvReadError(r *csv.Reader, err error) ([]models.Transaction, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return []models.Transaction{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
