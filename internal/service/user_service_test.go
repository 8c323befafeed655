package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myfinances-be/internal/entities"
)

type fakeUserRepo struct {
	t *testing.T

	createFn func(name, email, password string) (*entities.User, error)
	byEmail  func(email string) (*entities.User, error)
	byID     func(id int64) (*entities.User, error)
	existsFn func(email string) (bool, error)

	createCalls int
}

func (f *fakeUserRepo) Create(name, email, password string) (*entities.User, error) {
	f.createCalls++
	if f.createFn == nil {
		f.t.Fatal("unexpected call to Create")
	}
	return f.createFn(name, email, password)
}

func (f *fakeUserRepo) FindByEmail(email string) (*entities.User, error) {
	if f.byEmail == nil {
		f.t.Fatal("unexpected call to FindByEmail")
	}
	return f.byEmail(email)
}

func (f *fakeUserRepo) FindByID(id int64) (*entities.User, error) {
	if f.byID == nil {
		f.t.Fatal("unexpected call to FindByID")
	}
	return f.byID(id)
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	if f.existsFn == nil {
		f.t.Fatal("unexpected call to ExistsByEmail")
	}
	return f.existsFn(email)
}

func testUser() *entities.User {
	return &entities.User{
		ID:        1,
		Name:      "usuario",
		Email:     "usuario@email.com",
		Password:  "senha",
		CreatedAt: time.Now(),
	}
}

func TestRegisterSavesANewUser(t *testing.T) {
	repo := &fakeUserRepo{
		t: t,
		existsFn: func(email string) (bool, error) {
			return false, nil
		},
		createFn: func(name, email, password string) (*entities.User, error) {
			return &entities.User{ID: 1, Name: name, Email: email, Password: password}, nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.Register("usuario", "usuario@email.com", "senha")
	require.NoError(t, err)
	assert.EqualValues(t, 1, user.ID)
	assert.Equal(t, "usuario@email.com", user.Email)
}

func TestRegisterRejectsADuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{
		t: t,
		existsFn: func(email string) (bool, error) {
			return true, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Register("usuario", "usuario@email.com", "senha")

	var businessErr *BusinessRuleError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, "A user with this email is already registered.", businessErr.Message)
	assert.Zero(t, repo.createCalls)
}

func TestAuthenticateReturnsTheUserOnMatchingCredentials(t *testing.T) {
	want := testUser()
	repo := &fakeUserRepo{
		t: t,
		byEmail: func(email string) (*entities.User, error) {
			assert.Equal(t, want.Email, email)
			return want, nil
		},
	}
	svc := NewUserService(repo)

	got, err := svc.Authenticate("usuario@email.com", "senha")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAuthenticateFailsForAnUnknownEmail(t *testing.T) {
	repo := &fakeUserRepo{
		t: t,
		byEmail: func(email string) (*entities.User, error) {
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Authenticate("usuario@email.com", "senha")

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "User not found for the given email.", authErr.Message)
}

func TestAuthenticateFailsForAWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{
		t: t,
		byEmail: func(email string) (*entities.User, error) {
			return testUser(), nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Authenticate("usuario@email.com", "123")

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid password.", authErr.Message)
}

func TestValidateEmailUniqueness(t *testing.T) {
	exists := false
	repo := &fakeUserRepo{
		t: t,
		existsFn: func(email string) (bool, error) {
			return exists, nil
		},
	}
	svc := NewUserService(repo)

	assert.NoError(t, svc.ValidateEmailUniqueness("usuario@email.com"))

	exists = true
	err := svc.ValidateEmailUniqueness("usuario@email.com")

	var businessErr *BusinessRuleError
	require.ErrorAs(t, err, &businessErr)
}

func TestFindByIDReturnsNilForAMissingUser(t *testing.T) {
	repo := &fakeUserRepo{
		t: t,
		byID: func(id int64) (*entities.User, error) {
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.FindByID(99)
	require.NoError(t, err)
	assert.Nil(t, user)
}
