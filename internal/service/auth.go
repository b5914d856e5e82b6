package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
	"rentease-backend/internal/security"
)

const minPasswordLength = 8

type authService struct {
	userRepo   repository.UserRepository
	workerRepo repository.WorkerRepository
	sessions   SessionIssuer
}

func NewAuthService(userRepo repository.UserRepository, workerRepo repository.WorkerRepository, sessions SessionIssuer) AuthService {
	return &authService{
		userRepo:   userRepo,
		workerRepo: workerRepo,
		sessions:   sessions,
	}
}

func (s *authService) Register(ctx context.Context, userType domain.UserType, name, email, phone, address, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if !userType.Valid() || userType == domain.UserTypeAdmin {
		return nil, domain.NewValidationError("user type must be TENANT, OWNER or WORKER")
	}
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewValidationError("invalid email address")
	}
	if len(password) < minPasswordLength {
		return nil, domain.NewValidationError("password must be at least %d characters", minPasswordLength)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.NewConflictError("email is already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UserType:     userType,
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		Address:      strings.TrimSpace(address),
		PasswordHash: string(hash),
		Status:       domain.UserStatusActive,
	}

	sg := newSaga("register").
		step("create user",
			func(ctx context.Context) error { return s.userRepo.Create(ctx, user) },
			func(ctx context.Context) error { return s.userRepo.Delete(ctx, user.ID) })
	if userType == domain.UserTypeWorker {
		sg.step("create worker profile", func(ctx context.Context) error {
			return s.workerRepo.CreateProfile(ctx, &domain.Worker{
				ID:            user.ID,
				RateUnit:      domain.RateUnitHourly,
				ServiceStatus: domain.ServiceStatusUnavailable,
			})
		}, nil)
	}
	if err := sg.run(ctx); err != nil {
		return nil, err
	}

	logger.Info("User registered", "userID", user.ID, "userType", user.UserType)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.NewAuthenticationError("invalid email or password")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.NewAuthenticationError("invalid email or password")
	}
	if user.Status == domain.UserStatusSuspended {
		logger.Warn("Login refused for suspended account", "userID", user.ID)
		return nil, "", domain.NewAuthorizationError("account is suspended")
	}

	token, err := s.sessions.Start(ctx, user.ID, string(user.UserType), user.Name, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, claims *security.SessionClaims) error {
	if claims == nil {
		return nil
	}
	return s.sessions.End(ctx, claims)
}

func (s *authService) ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.NewValidationError("password must be at least %d characters", minPasswordLength)
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return domain.NewAuthenticationError("current password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}
	logger.Info("Password changed", "userID", userID)
	return nil
}

func (s *authService) EnsureAdmin(ctx context.Context, name, email, password string) (*domain.User, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, false, domain.NewValidationError("invalid admin email address")
	}
	if len(password) < minPasswordLength {
		return nil, false, domain.NewValidationError("admin password must be at least %d characters", minPasswordLength)
	}

	exists, err := s.userRepo.HasAdmin(ctx)
	if err != nil {
		return nil, false, err
	}
	if exists {
		return nil, false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(name) == "" {
		name = "Admin"
	}
	admin := &domain.User{
		UserType:     domain.UserTypeAdmin,
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Status:       domain.UserStatusActive,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return nil, false, err
	}
	logger.Info("Admin account created", "userID", admin.ID, "email", admin.Email)
	return admin, true, nil
}
