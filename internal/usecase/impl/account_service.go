// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/policy"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordHash is a valid bcrypt hash compared against when a login
// email resolves to no account, so the unknown-email path spends the same
// bcrypt work as the wrong-password path.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed password. The store assigns
// the identifier and both timestamps.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
		IsAdmin:      input.IsAdmin,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			// The delivery layer pre-checks availability; this fires only when
			// a concurrent registration won the race for the same email.
			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email taken by concurrent registration")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return usecase.SanitizeUser(newUser), nil
}

// Login verifies the submitted credentials and issues a session token bound
// to the account's identifier. Unknown email and wrong password produce the
// identical outcome.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn the same bcrypt cost as a real comparison before denying.
			srv.hasher.Check(input.Password, dummyPasswordHash)
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token}, nil
}

// ListUsers returns every stored account, sanitized. Admin callers only.
func (srv *accountService) ListUsers(ctx context.Context, callerID uuid.UUID) ([]*usecase.UserOutput, error) {
	srv.log(ctx).Debug("Listing users", slog.Any("callerID", callerID))

	caller, err := srv.loadCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if !policy.CanListAll(caller.IsAdmin) {
		srv.log(ctx).Warn("Listing denied", slog.Any("callerID", callerID))

		return nil, domainerrors.ErrMissingAdminPermissions.WrapMessage("caller is not an admin")
	}

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return usecase.SanitizeUsers(users), nil
}

// GetProfile returns the caller's own account, sanitized.
func (srv *accountService) GetProfile(ctx context.Context, callerID uuid.UUID) (*usecase.UserOutput, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("callerID", callerID))

	user, err := srv.loadCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return usecase.SanitizeUser(user), nil
}

// UpdateUser merges the patch over the target account inside a single store
// transaction so concurrent updates cannot silently lose fields. The policy
// is consulted before the target is looked up, so a denied caller learns
// nothing about the target's existence.
func (srv *accountService) UpdateUser(ctx context.Context, callerID, targetID uuid.UUID, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Updating user", slog.Any("callerID", callerID), slog.Any("targetID", targetID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		caller, err := userRepo.FindByID(ctx, callerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("caller account no longer exists")
			}

			return errors.Wrap(err, "failed to load caller")
		}

		if !policy.CanModify(callerID, targetID, caller.IsAdmin) {
			return domainerrors.ErrMissingAdminPermissions.WrapMessage("caller may not modify target")
		}

		target, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("update target not found")
			}

			return errors.Wrap(err, "failed to load update target")
		}

		if err := srv.applyPatch(target, input); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, target); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("patched email already registered")
			}

			return errors.Wrap(err, "failed to persist updated user")
		}
		updated = target

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Update failed", slog.Any("targetID", targetID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	srv.log(ctx).Debug("Update completed", slog.Any("targetID", targetID))

	return usecase.SanitizeUser(updated), nil
}

// applyPatch merges the provided fields over the stored record. A patched
// password is re-hashed before it touches the entity.
func (srv *accountService) applyPatch(target *entity.User, input *usecase.UpdateUserInput) error {
	if input.Email != nil {
		target.Email = *input.Email
	}
	if input.Name != nil {
		target.Name = *input.Name
	}
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash patched password")
		}
		target.PasswordHash = hashed
	}

	return nil
}

// DeleteUser removes the target account. The caller's own admin flag gates
// cross-account deletion; a missing target is an explicit not-found outcome.
func (srv *accountService) DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("callerID", callerID), slog.Any("targetID", targetID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		caller, err := userRepo.FindByID(ctx, callerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("caller account no longer exists")
			}

			return errors.Wrap(err, "failed to load caller")
		}

		if !policy.CanModify(callerID, targetID, caller.IsAdmin) {
			return domainerrors.ErrMissingAdminPermissions.WrapMessage("caller may not delete target")
		}

		if err := userRepo.Delete(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("delete target not found")
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Delete failed", slog.Any("targetID", targetID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute user delete transaction")
	}

	srv.log(ctx).Debug("Delete completed", slog.Any("targetID", targetID))

	return nil
}

// EmailRegistered reports whether an account with the given email exists.
// Used by the delivery layer as the registration pre-check.
func (srv *accountService) EmailRegistered(ctx context.Context, email string) (bool, error) {
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check email availability")
	}

	return true, nil
}

// loadCaller resolves the caller's own record, mapping a missing record to
// the explicit not-found outcome.
func (srv *accountService) loadCaller(ctx context.Context, callerID uuid.UUID) (*entity.User, error) {
	caller, err := srv.userRepo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("caller account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load caller")
	}

	return caller, nil
}
