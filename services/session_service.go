package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/club-manager/models"
	"github.com/Dosada05/club-manager/storage"
	"github.com/Dosada05/club-manager/store"
)

// Два ключа долговременного состояния сессии (§ durable local state):
// идентификатор текущего пользователя и флаг пройденного онбординга.
const (
	sessionUserKey      = "session:current_user"
	sessionOnboardedKey = "session:onboarded"
)

// SessionService хранит активного пользователя и флаг онбординга.
// Роль пользователя выбирает вариант дашборда — это не граница
// авторизации, серверного запрета по ролям здесь нет.
type SessionService interface {
	// Login разрешает id через реестр. Неизвестный id — тихий no-op:
	// (nil, nil), состояние не меняется.
	Login(ctx context.Context, userID string) (*models.User, error)

	// Logout очищает оба сохранённых ключа.
	Logout(ctx context.Context) error

	// Current возвращает сохранённого пользователя, nil если сессии нет.
	Current(ctx context.Context) (*models.User, error)

	CompleteOnboarding(ctx context.Context) error
	Onboarded(ctx context.Context) (bool, error)
}

type sessionService struct {
	store *store.Store
	kv    storage.KeyValueStore
}

func NewSessionService(st *store.Store, kv storage.KeyValueStore) SessionService {
	return &sessionService{store: st, kv: kv}
}

func (s *sessionService) Login(ctx context.Context, userID string) (*models.User, error) {
	user := s.store.UserByID(userID)
	if user == nil {
		return nil, nil
	}
	if err := s.kv.Set(ctx, sessionUserKey, user.ID); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return user, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, sessionUserKey); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return err
	}
	if err := s.kv.Delete(ctx, sessionOnboardedKey); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return err
	}
	return nil
}

func (s *sessionService) Current(ctx context.Context) (*models.User, error) {
	userID, err := s.kv.Get(ctx, sessionUserKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// Сохранённый id, которого больше нет в реестре, равносилен
	// отсутствию сессии.
	return s.store.UserByID(userID), nil
}

func (s *sessionService) CompleteOnboarding(ctx context.Context) error {
	return s.kv.Set(ctx, sessionOnboardedKey, "true")
}

func (s *sessionService) Onboarded(ctx context.Context) (bool, error) {
	val, err := s.kv.Get(ctx, sessionOnboardedKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "true", nil
}
