package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"myfinances-be/internal/cache"
	"myfinances-be/internal/entities"
	"myfinances-be/internal/repository"
)

// balanceCacheTTL bounds how stale a cached balance may be
const balanceCacheTTL = 5 * time.Minute

// EntryService defines the interface for entry business logic
type EntryService interface {
	Create(entry *entities.Entry) (*entities.Entry, error)
	Update(entry *entities.Entry) (*entities.Entry, error)
	Delete(entry *entities.Entry) error
	UpdateStatus(entry *entities.Entry, status entities.EntryStatus) (*entities.Entry, error)
	Search(filter *repository.EntryFilter) ([]*entities.Entry, error)
	FindByID(id int64) (*entities.Entry, error)
	BalanceByUser(userID int64) (float64, error)
	Validate(entry *entities.Entry) error
}

type entryService struct {
	entryRepo repository.EntryRepository
	cache     cache.Cache // optional, may be nil
}

// NewEntryService creates a new entry service
func NewEntryService(entryRepo repository.EntryRepository, cacheClient cache.Cache) EntryService {
	return &entryService{
		entryRepo: entryRepo,
		cache:     cacheClient,
	}
}

// Validate checks an entry against the business rules, failing on the first
// violated rule. The rule order is fixed: description, month, year, user,
// value, type.
func (s *entryService) Validate(entry *entities.Entry) error {
	if strings.TrimSpace(entry.Description) == "" {
		return &ValidationError{Message: "Provide a valid description."}
	}
	if entry.Month < 1 || entry.Month > 12 {
		return &ValidationError{Message: "Provide a valid month."}
	}
	if entry.Year < 1000 || entry.Year > 9999 {
		return &ValidationError{Message: "Provide a valid year."}
	}
	if entry.UserID == 0 {
		return &ValidationError{Message: "Provide a user."}
	}
	if entry.Value <= 0 {
		return &ValidationError{Message: "Provide a valid value."}
	}
	if entry.Type == "" {
		return &ValidationError{Message: "Provide an entry type."}
	}
	return nil
}

// Create validates and persists a new entry. Status defaults to PENDING and
// the registration date is set at creation.
func (s *entryService) Create(entry *entities.Entry) (*entities.Entry, error) {
	if err := s.Validate(entry); err != nil {
		return nil, err
	}

	if entry.Status == "" {
		entry.Status = entities.EntryStatusPending
	}
	if entry.RegistrationDate.IsZero() {
		entry.RegistrationDate = time.Now().UTC()
	}

	saved, err := s.entryRepo.Create(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.invalidateBalance(saved.UserID)

	return saved, nil
}

// Update validates and persists an existing entry. Calling it with an entry
// that was never saved is a programming error and panics.
func (s *entryService) Update(entry *entities.Entry) (*entities.Entry, error) {
	s.requireID(entry)

	if err := s.Validate(entry); err != nil {
		return nil, err
	}

	saved, err := s.entryRepo.Update(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	s.invalidateBalance(saved.UserID)

	return saved, nil
}

// Delete removes a persisted entry. Calling it with an entry that was never
// saved is a programming error and panics.
func (s *entryService) Delete(entry *entities.Entry) error {
	s.requireID(entry)

	if err := s.entryRepo.Delete(entry.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.invalidateBalance(entry.UserID)

	return nil
}

// UpdateStatus assigns the new status and persists it through the update
// path. Any status may follow any other; no transitions are rejected.
func (s *entryService) UpdateStatus(entry *entities.Entry, status entities.EntryStatus) (*entities.Entry, error) {
	entry.Status = status
	return s.Update(entry)
}

// Search retrieves all entries matching the set fields of the filter
func (s *entryService) Search(filter *repository.EntryFilter) ([]*entities.Entry, error) {
	entries, err := s.entryRepo.FindByFilter(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	return entries, nil
}

// FindByID returns the entry with the given id, or nil when it does not exist
func (s *entryService) FindByID(id int64) (*entities.Entry, error) {
	return s.entryRepo.FindByID(id)
}

// BalanceByUser computes the user's balance: the sum of settled income minus
// the sum of settled expense. Returns zero when the user has no entries.
func (s *entryService) BalanceByUser(userID int64) (float64, error) {
	cacheKey := balanceCacheKey(userID)

	if s.cache != nil {
		var cached float64
		if err := s.cache.GetJSON(context.Background(), cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	income, err := s.entryRepo.SumByUserTypeAndStatus(userID, entities.EntryTypeIncome, entities.EntryStatusSettled)
	if err != nil {
		return 0, fmt.Errorf("failed to sum income: %w", err)
	}

	expense, err := s.entryRepo.SumByUserTypeAndStatus(userID, entities.EntryTypeExpense, entities.EntryStatusSettled)
	if err != nil {
		return 0, fmt.Errorf("failed to sum expense: %w", err)
	}

	balance := income - expense

	if s.cache != nil {
		if err := s.cache.SetJSON(context.Background(), cacheKey, balance, balanceCacheTTL); err != nil {
			log.Printf("Warning: failed to cache balance for user %d: %v", userID, err)
		}
	}

	return balance, nil
}

// requireID panics when the entry has no persisted id. Mutating an unsaved
// entry is a caller bug, not a recoverable business error.
func (s *entryService) requireID(entry *entities.Entry) {
	if entry.ID == 0 {
		panic("entry must be persisted before it can be updated or deleted")
	}
}

func (s *entryService) invalidateBalance(userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.Background(), balanceCacheKey(userID)); err != nil {
		log.Printf("Warning: failed to invalidate balance cache for user %d: %v", userID, err)
	}
}

func balanceCacheKey(userID int64) string {
	return fmt.Sprintf("balance:%d", userID)
}
