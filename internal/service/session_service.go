package service

import (
	"context"
	"fmt"
	"sync"

	"coffeecorner/internal/repositories"
	"coffeecorner/models"
	"coffeecorner/pkg/logger"

	"github.com/google/uuid"
)

// SessionServiceInterface tracks the current user identity, login status and
// the onboarding-seen flag.
type SessionServiceInterface interface {
	Load(ctx context.Context)
	User() *models.User
	IsLoggedIn() bool
	IsLoading() bool
	HasSeenOnboarding() bool
	Login(ctx context.Context, name, email string) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, updates models.ProfileUpdate) error
	UpdateAvatar(ctx context.Context, avatar string) error
	IncrementOrders(ctx context.Context) error
	CompleteOnboarding(ctx context.Context) error
	ResetOnboarding(ctx context.Context) error
	OnChange(fn func())
}

// SessionService holds the authoritative in-memory copy of the user slice.
// Mutations commit to memory first and notify listeners, then persist;
// a persist failure is returned but never rolls the memory back.
type SessionService struct {
	userRepo     repositories.UserRepositoryInterface
	settingsRepo repositories.SettingsRepositoryInterface
	logger       *logger.Logger

	mu                sync.RWMutex
	user              *models.User
	hasSeenOnboarding bool
	loading           bool
	listeners         []func()
}

// NewSessionService creates a new SessionService with the given repositories and logger
func NewSessionService(userRepo repositories.UserRepositoryInterface, settingsRepo repositories.SettingsRepositoryInterface, logger *logger.Logger) *SessionService {
	return &SessionService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		logger:       logger.WithComponent("session_service"),
		loading:      true,
	}
}

// Load reads the user record and the onboarding marker. Both reads are
// joined: the loading flag clears only after both have resolved.
func (s *SessionService) Load(ctx context.Context) {
	var (
		wg         sync.WaitGroup
		user       *models.User
		onboarding bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		user = s.userRepo.GetUser(ctx)
	}()
	go func() {
		defer wg.Done()
		onboarding = s.settingsRepo.HasSeenOnboarding(ctx)
	}()
	wg.Wait()

	s.mu.Lock()
	s.user = user
	s.hasSeenOnboarding = onboarding
	s.loading = false
	s.mu.Unlock()

	s.logger.Info("Session loaded",
		"logged_in", user != nil && user.IsLoggedIn,
		"onboarding_seen", onboarding)
	s.notify()
}

// User returns a copy of the current user, or nil when none is loaded.
func (s *SessionService) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsLoggedIn derives login status from the user record. No user means
// logged out.
func (s *SessionService) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsLoggedIn
}

// IsLoading reports whether the initial load is still in flight.
func (s *SessionService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// HasSeenOnboarding reports the in-memory onboarding flag.
func (s *SessionService) HasSeenOnboarding() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasSeenOnboarding
}

// Login constructs a brand-new user with a generated id, zero counters and a
// random avatar, commits it to memory, then persists. A previously stored
// logged-out record is overwritten without identity reconciliation.
func (s *SessionService) Login(ctx context.Context, name, email string) (*models.User, error) {
	user := &models.User{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Avatar:      models.RandomAvatar(),
		IsLoggedIn:  true,
		OrdersCount: 0,
		Points:      0,
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.notify()

	s.logger.Info("User logged in", "user_id", user.ID, "email", email)

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.logger.Error("Failed to persist login, memory state retained", "error", err)
		return s.User(), err
	}

	return s.User(), nil
}

// Logout flips IsLoggedIn in place and persists, preserving order history
// and points. No-op if no user is loaded.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		s.logger.Debug("Logout with no loaded user, nothing to do")
		return nil
	}
	s.user.IsLoggedIn = false
	snapshot := *s.user
	s.mu.Unlock()
	s.notify()

	s.logger.Info("User logged out", "user_id", snapshot.ID)

	if err := s.userRepo.SaveUser(ctx, &snapshot); err != nil {
		s.logger.Error("Failed to persist logout, memory state retained", "error", err)
		return err
	}
	return nil
}

// UpdateProfile merges the non-nil fields into the current user and
// persists. No-op if not logged in.
func (s *SessionService) UpdateProfile(ctx context.Context, updates models.ProfileUpdate) error {
	s.mu.Lock()
	if s.user == nil || !s.user.IsLoggedIn {
		s.mu.Unlock()
		return nil
	}
	if updates.Name != nil {
		s.user.Name = *updates.Name
	}
	if updates.Email != nil {
		s.user.Email = *updates.Email
	}
	if updates.Avatar != nil {
		s.user.Avatar = *updates.Avatar
	}
	snapshot := *s.user
	s.mu.Unlock()
	s.notify()

	if err := s.userRepo.SaveUser(ctx, &snapshot); err != nil {
		s.logger.Error("Failed to persist profile update, memory state retained", "error", err)
		return err
	}

	s.logger.Info("Profile updated", "user_id", snapshot.ID)
	return nil
}

// UpdateAvatar replaces the avatar and persists. No-op if not logged in.
func (s *SessionService) UpdateAvatar(ctx context.Context, avatar string) error {
	return s.UpdateProfile(ctx, models.ProfileUpdate{Avatar: &avatar})
}

// IncrementOrders bumps the order count by one and awards the loyalty points
// in the same in-memory update, so the two never diverge. No-op if not
// logged in.
func (s *SessionService) IncrementOrders(ctx context.Context) error {
	s.mu.Lock()
	if s.user == nil || !s.user.IsLoggedIn {
		s.mu.Unlock()
		return fmt.Errorf("no logged-in user")
	}
	s.user.OrdersCount++
	s.user.Points += models.PointsPerOrder
	snapshot := *s.user
	s.mu.Unlock()
	s.notify()

	s.logger.Info("Order recorded",
		"user_id", snapshot.ID,
		"orders_count", snapshot.OrdersCount,
		"points", snapshot.Points)

	if err := s.userRepo.SaveUser(ctx, &snapshot); err != nil {
		s.logger.Error("Failed to persist order increment, memory state retained", "error", err)
		return err
	}
	return nil
}

// CompleteOnboarding marks onboarding as seen and persists immediately.
func (s *SessionService) CompleteOnboarding(ctx context.Context) error {
	s.mu.Lock()
	s.hasSeenOnboarding = true
	s.mu.Unlock()
	s.notify()

	if err := s.settingsRepo.SetOnboardingSeen(ctx); err != nil {
		s.logger.Error("Failed to persist onboarding completion", "error", err)
		return err
	}
	return nil
}

// ResetOnboarding clears the onboarding flag and persists immediately.
func (s *SessionService) ResetOnboarding(ctx context.Context) error {
	s.mu.Lock()
	s.hasSeenOnboarding = false
	s.mu.Unlock()
	s.notify()

	if err := s.settingsRepo.ResetOnboarding(ctx); err != nil {
		s.logger.Error("Failed to persist onboarding reset", "error", err)
		return err
	}
	return nil
}

// OnChange registers a listener invoked after every in-memory commit,
// before persistence resolves.
func (s *SessionService) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *SessionService) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
