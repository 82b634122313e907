package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/roadworthy/pti-system/internal/api/metrics"
	"github.com/roadworthy/pti-system/internal/core/domain"
	"github.com/roadworthy/pti-system/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// AccountService implements registration, login and car list management.
type AccountService struct {
	repo         ports.UserRepository
	jwtSecret    string
	signupSecret string
	tokenTTL     time.Duration
	logger       zerolog.Logger
}

// NewAccountService builds an AccountService. signupSecret gates inspector
// account creation and comes from configuration, never from code.
func NewAccountService(repo ports.UserRepository, jwtSecret, signupSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AccountService{
		repo:         repo,
		jwtSecret:    jwtSecret,
		signupSecret: signupSecret,
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	// A taken email wins over every other failure: re-registering an
	// existing address reports the conflict no matter what role or
	// credentials accompany it.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	if !domain.ValidRole(input.Role) {
		return "", nil, domain.ErrInvalidRole
	}
	if input.Role == domain.RoleInspector {
		if input.InspectorID == "" {
			return "", nil, domain.ErrMissingInspectorID
		}
		if input.SignupSecret != s.signupSecret {
			s.logger.Warn().Str("email", input.Email).Msg("inspector signup rejected: wrong signup secret")
			return "", nil, domain.ErrForbidden
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		Role:         input.Role,
		PasswordHash: string(hash),
		Cars:         []string{},
		CreatedAt:    time.Now().UTC(),
	}
	if input.Role == domain.RoleInspector {
		user.InspectorID = input.InspectorID
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return token, user, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same failure as a wrong password, so callers cannot probe
			// which emails are registered.
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

func (s *AccountService) AddCar(ctx context.Context, user *domain.User, plate string) ([]string, error) {
	if err := domain.RequireRole(user, domain.RoleClient); err != nil {
		return nil, err
	}
	if user.HasCar(plate) {
		return nil, domain.ErrDuplicateCar
	}

	cars := append(append([]string{}, user.Cars...), plate)
	if err := s.repo.UpdateCars(ctx, user.ID, cars); err != nil {
		return nil, err
	}
	user.Cars = cars

	s.logger.Info().Str("user_id", user.ID).Str("plate", plate).Msg("car added")
	return cars, nil
}

func (s *AccountService) RemoveCar(ctx context.Context, user *domain.User, plate string) ([]string, error) {
	if err := domain.RequireRole(user, domain.RoleClient); err != nil {
		return nil, err
	}
	if !user.HasCar(plate) {
		return nil, domain.ErrCarNotFound
	}

	cars := make([]string, 0, len(user.Cars)-1)
	for _, p := range user.Cars {
		if p != plate {
			cars = append(cars, p)
		}
	}
	if err := s.repo.UpdateCars(ctx, user.ID, cars); err != nil {
		return nil, err
	}
	user.Cars = cars

	s.logger.Info().Str("user_id", user.ID).Str("plate", plate).Msg("car removed")
	return cars, nil
}

func (s *AccountService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
