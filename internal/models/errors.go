package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no resource for the specified ID")

	ErrAccountNameNotUnique = errors.New("the account name must be unique")

	ErrAmountNotPositive         = errors.New("the transaction amount must be positive")
	ErrInvalidTransactionType    = errors.New("the transaction type must be one of income, expense, transfer")
	ErrTransferMissingResource   = errors.New("a transfer requires both a source and a destination account")
	ErrTransferSameAccount       = errors.New("source and destination accounts for a transfer must be different")
	ErrDestinationOnTransferOnly = errors.New("only transfers can have a destination account")

	ErrInvalidFrequency = errors.New("the frequency must be one of weekly, biweekly, monthly")

	ErrInvalidCurrency = errors.New("the currency must be a three letter ISO 4217 code")
	ErrInvalidLocale   = errors.New("the locale must be a valid BCP 47 language tag")

	ErrMatchRuleEmpty = errors.New("the match rule pattern must not be empty")
)
