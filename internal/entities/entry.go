package entities

import "time"

// EntryType classifies an entry as income or expense
type EntryType string

const (
	EntryTypeIncome  EntryType = "INCOME"
	EntryTypeExpense EntryType = "EXPENSE"
)

// EntryStatus is the lifecycle tag of an entry
type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "PENDING"
	EntryStatusSettled  EntryStatus = "SETTLED"
	EntryStatusCanceled EntryStatus = "CANCELED"
)

// Entry represents a single financial record (income or expense) owned by a user
type Entry struct {
	ID               int64       `json:"id"`
	Description      string      `json:"description"`
	Month            int         `json:"month"`
	Year             int         `json:"year"`
	Value            float64     `json:"value"`
	Type             EntryType   `json:"type"`
	Status           EntryStatus `json:"status"`
	UserID           int64       `json:"user_id"`
	RegistrationDate time.Time   `json:"registration_date"`
}

// ParseEntryType returns the entry type for s, or false if s is not a known type
func ParseEntryType(s string) (EntryType, bool) {
	switch EntryType(s) {
	case EntryTypeIncome, EntryTypeExpense:
		return EntryType(s), true
	}
	return "", false
}

// ParseEntryStatus returns the entry status for s, or false if s is not a known status
func ParseEntryStatus(s string) (EntryStatus, bool) {
	switch EntryStatus(s) {
	case EntryStatusPending, EntryStatusSettled, EntryStatusCanceled:
		return EntryStatus(s), true
	}
	return "", false
}
