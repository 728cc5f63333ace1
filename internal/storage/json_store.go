package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mrosales/habitd/internal/models"
)

type Store struct {
	Version int                     `json:"version"`
	Habits  map[string]models.Habit `json:"habits"`
}

// JSONStore keeps all habits in a single JSON document on disk, rewritten on
// every mutation. Suited to small collections and easy inspection.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Habits:  make(map[string]models.Habit),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitd init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Habits == nil {
		s.store.Habits = make(map[string]models.Habit)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) AddHabit(h models.Habit) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("storage not loaded")
	}

	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	s.store.Habits[h.ID] = h
	if err := s.save(); err != nil {
		return "", err
	}
	return h.ID, nil
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	h, ok := s.store.Habits[id]
	if !ok || h.DeletedAt != nil {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}

	return h, nil
}

func (s *JSONStore) GetAllHabits(userID string) ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, 0, len(s.store.Habits))
	for _, h := range s.store.Habits {
		if h.DeletedAt != nil {
			continue
		}
		if userID != "" && h.UserID != userID {
			continue
		}
		habits = append(habits, h)
	}

	return habits, nil
}

func (s *JSONStore) UpdateHabit(h models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Habits[h.ID]; !ok {
		return fmt.Errorf("habit not found: %s", h.ID)
	}

	s.store.Habits[h.ID] = h
	return s.save()
}

func (s *JSONStore) UpdateProgress(id string, completedDates []string, streak int) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	h, ok := s.store.Habits[id]
	if !ok || h.DeletedAt != nil {
		return fmt.Errorf("habit not found: %s", id)
	}

	h.CompletedDates = completedDates
	h.Streak = streak
	s.store.Habits[id] = h
	return s.save()
}

func (s *JSONStore) DeleteHabit(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	h, ok := s.store.Habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}
	if h.DeletedAt != nil {
		return fmt.Errorf("habit %s is already deleted", id)
	}

	// Soft delete: set deleted_at timestamp
	now := time.Now().UTC().Format(time.RFC3339)
	h.DeletedAt = &now
	s.store.Habits[id] = h
	return s.save()
}

func (s *JSONStore) RestoreHabit(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	h, ok := s.store.Habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}
	if h.DeletedAt == nil {
		return fmt.Errorf("cannot restore a habit that is not deleted: %s", id)
	}

	h.DeletedAt = nil
	s.store.Habits[id] = h
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
