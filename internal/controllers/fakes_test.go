package controllers

import (
	"myfinances-be/internal/entities"
	"myfinances-be/internal/repository"
)

// stubUserService and stubEntryService satisfy the service interfaces with
// per-test function fields. Calling an unset method panics, which fails the
// test loudly instead of silently succeeding.

type stubUserService struct {
	registerFn func(name, email, password string) (*entities.User, error)
	authFn     func(email, password string) (*entities.User, error)
	uniqueFn   func(email string) error
	findFn     func(id int64) (*entities.User, error)
}

func (s *stubUserService) Register(name, email, password string) (*entities.User, error) {
	return s.registerFn(name, email, password)
}

func (s *stubUserService) Authenticate(email, password string) (*entities.User, error) {
	return s.authFn(email, password)
}

func (s *stubUserService) ValidateEmailUniqueness(email string) error {
	return s.uniqueFn(email)
}

func (s *stubUserService) FindByID(id int64) (*entities.User, error) {
	return s.findFn(id)
}

type stubEntryService struct {
	createFn   func(entry *entities.Entry) (*entities.Entry, error)
	updateFn   func(entry *entities.Entry) (*entities.Entry, error)
	deleteFn   func(entry *entities.Entry) error
	statusFn   func(entry *entities.Entry, status entities.EntryStatus) (*entities.Entry, error)
	searchFn   func(filter *repository.EntryFilter) ([]*entities.Entry, error)
	findFn     func(id int64) (*entities.Entry, error)
	balanceFn  func(userID int64) (float64, error)
	validateFn func(entry *entities.Entry) error
}

func (s *stubEntryService) Create(entry *entities.Entry) (*entities.Entry, error) {
	return s.createFn(entry)
}

func (s *stubEntryService) Update(entry *entities.Entry) (*entities.Entry, error) {
	return s.updateFn(entry)
}

func (s *stubEntryService) Delete(entry *entities.Entry) error {
	return s.deleteFn(entry)
}

func (s *stubEntryService) UpdateStatus(entry *entities.Entry, status entities.EntryStatus) (*entities.Entry, error) {
	return s.statusFn(entry, status)
}

func (s *stubEntryService) Search(filter *repository.EntryFilter) ([]*entities.Entry, error) {
	return s.searchFn(filter)
}

func (s *stubEntryService) FindByID(id int64) (*entities.Entry, error) {
	return s.findFn(id)
}

func (s *stubEntryService) BalanceByUser(userID int64) (float64, error) {
	return s.balanceFn(userID)
}

func (s *stubEntryService) Validate(entry *entities.Entry) error {
	return s.validateFn(entry)
}
