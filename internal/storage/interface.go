package storage

import "github.com/mrosales/habitd/internal/models"

// Provider is the persistence boundary for habits. Implementations assign IDs
// on add, hide soft-deleted habits from reads, and treat UpdateProgress as the
// write-back half of a toggle: the caller computes the new completed dates and
// streak, the provider persists exactly those two fields.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) (string, error)
	GetHabit(id string) (models.Habit, error)
	GetAllHabits(userID string) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	UpdateProgress(id string, completedDates []string, streak int) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Utils
	GetConfigPath() string
}
