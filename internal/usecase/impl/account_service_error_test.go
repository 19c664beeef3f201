package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_HashFailure(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	service := newTestAccountService(repo, hasher, new(MockTokenService))

	ctx := context.Background()

	hasher.On("Hash", "plaintext").Return("", errors.New("entropy source unavailable"))

	output, err := service.Register(ctx, &usecase.RegisterInput{Email: "alice@example.com", Password: "plaintext"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	repo.AssertNotCalled(t, "Create", ctx)
}

func TestAccountService_Login_RepositoryFailure(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestAccountService(repo, new(MockPasswordHasher), new(MockTokenService))

	ctx := context.Background()

	repo.On("FindByEmail", ctx, "alice@example.com").Return(nil, errors.New("db unreachable"))

	output, err := service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "plaintext"})
	assert.Nil(t, output)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_UpdateUser_NonAdminCrossUserDenied(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestAccountService(repo, new(MockPasswordHasher), new(MockTokenService))

	ctx := context.Background()
	callerID := uuid.New()
	targetID := uuid.New()
	caller := &entity.User{ID: callerID, IsAdmin: false}

	repo.On("FindByID", ctx, callerID).Return(caller, nil)

	newName := "Mallory"
	output, err := service.UpdateUser(ctx, callerID, targetID, &usecase.UpdateUserInput{Name: &newName})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrMissingAdminPermissions)

	// The denial happens before the target lookup, so the response cannot
	// reveal whether the target exists.
	repo.AssertNotCalled(t, "FindByID", ctx, targetID)
	repo.AssertNotCalled(t, "Update", ctx)
}

func TestAccountService_UpdateUser_MissingTarget(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestAccountService(repo, new(MockPasswordHasher), new(MockTokenService))

	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()
	admin := &entity.User{ID: adminID, IsAdmin: true}

	repo.On("FindByID", ctx, adminID).Return(admin, nil)
	repo.On("FindByID", ctx, targetID).Return(nil, repository.ErrUserNotFound)

	newName := "Nobody"
	output, err := service.UpdateUser(ctx, adminID, targetID, &usecase.UpdateUserInput{Name: &newName})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_UpdateUser_PatchedEmailTaken(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestAccountService(repo, new(MockPasswordHasher), new(MockTokenService))

	ctx := context.Background()
	callerID := uuid.New()
	caller := &entity.User{ID: callerID, Email: "alice@example.com"}

	repo.On("FindByID", ctx, callerID).Return(caller, nil)
	repo.On("Update", ctx, caller).Return(repository.ErrEmailTaken)

	takenEmail := "bob@example.com"
	output, err := service.UpdateUser(ctx, callerID, callerID, &usecase.UpdateUserInput{Email: &takenEmail})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountService_DeleteUser_NonAdminCrossUserDenied(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestAccountService(repo, new(MockPasswordHasher), new(MockTokenService))

	ctx := context.Background()
	callerID := uuid.New()
	targetID := uuid.New()
	caller := &entity.User{ID: callerID, IsAdmin: false}

	repo.On("FindByID", ctx, callerID).Return(caller, nil)

	err := service.DeleteUser(ctx, callerID, targetID)
	assert.ErrorIs(t, err, domainerrors.ErrMissingAdminPermissions)
	repo.AssertNotCalled(t, "Delete", ctx, targetID)
}

func TestAccountService_DeleteUser_MissingTarget(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestAccountService(repo, new(MockPasswordHasher), new(MockTokenService))

	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()
	admin := &entity.User{ID: adminID, IsAdmin: true}

	repo.On("FindByID", ctx, adminID).Return(admin, nil)
	repo.On("Delete", ctx, targetID).Return(repository.ErrUserNotFound)

	err := service.DeleteUser(ctx, adminID, targetID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_GetProfile_CallerGone(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestAccountService(repo, new(MockPasswordHasher), new(MockTokenService))

	ctx := context.Background()
	callerID := uuid.New()

	repo.On("FindByID", ctx, callerID).Return(nil, repository.ErrUserNotFound)

	output, err := service.GetProfile(ctx, callerID)
	require.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
