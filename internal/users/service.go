package users

import (
	"context"
	"errors"
	"strings"

	"resumewise-backend/internal/templates"
)

// ErrInvalidPreferences indicates an unknown template or theme value.
var ErrInvalidPreferences = errors.New("invalid preferences")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpsertFromAuth persists the user identity from OAuth to stabilize history and usage ownership.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// UpdatePreferences validates and saves per-user editor defaults.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, prefs Preferences) (Preferences, error) {
	if s == nil || s.Repo == nil {
		return Preferences{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Preferences{}, errors.New("user id is required")
	}
	if prefs.DefaultTemplate != "" && !templates.Exists(prefs.DefaultTemplate) {
		return Preferences{}, ErrInvalidPreferences
	}
	switch prefs.DefaultTheme {
	case "", "light", "dark":
	default:
		return Preferences{}, ErrInvalidPreferences
	}

	defaults := DefaultPreferences()
	if prefs.DefaultTemplate == "" {
		prefs.DefaultTemplate = defaults.DefaultTemplate
	}
	if prefs.DefaultTheme == "" {
		prefs.DefaultTheme = defaults.DefaultTheme
	}
	if strings.TrimSpace(prefs.Language) == "" {
		prefs.Language = defaults.Language
	}
	if err := s.Repo.UpdatePreferences(ctx, userID, prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}
