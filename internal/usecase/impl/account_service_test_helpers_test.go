package impl

import (
	"context"
	"io"
	"log/slog"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(userID uuid.UUID) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (uuid.UUID, error) {
	args := m.Called(token)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

// fakeTxManager runs the transactional block directly against the given
// repository, standing in for a real database transaction.
type fakeTxManager struct {
	repo repository.UserRepository
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepoFactory{repo: m.repo})
}

type fakeRepoFactory struct {
	repo repository.UserRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository {
	return f.repo
}

// newTestAccountService wires an accountService against the given mocks.
func newTestAccountService(repo *MockUserRepository, hasher *MockPasswordHasher, tokenSvc *MockTokenService) usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{
		TxManager:    &fakeTxManager{repo: repo},
		UserRepo:     repo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})
}
