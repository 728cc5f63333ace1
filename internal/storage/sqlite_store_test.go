package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrosales/habitd/internal/models"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	store := NewSQLiteStore(path)
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreLoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "habitd init")
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)

	in := models.Habit{
		Name:           "Read",
		UserID:         "u1",
		Category:       "learning",
		Priority:       models.PriorityHigh,
		Frequency:      models.FrequencyWeekly,
		StartDate:      "2026-01-01",
		EndDate:        "2026-12-31",
		DaysOfWeek:     []string{"MONDAY", "THURSDAY"},
		Reminders:      []string{"08:00"},
		CompletedDates: []string{"2026-01-05"},
		Streak:         1,
	}

	id, err := store.AddHabit(in)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.GetHabit(id)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Priority, got.Priority)
	assert.Equal(t, in.Frequency, got.Frequency)
	assert.Equal(t, in.DaysOfWeek, got.DaysOfWeek)
	assert.Equal(t, in.Reminders, got.Reminders)
	assert.Equal(t, in.CompletedDates, got.CompletedDates)
	assert.Equal(t, 1, got.Streak)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSQLiteStoreNilListsBecomeEmpty(t *testing.T) {
	store := setupSQLiteStore(t)

	id, err := store.AddHabit(models.Habit{Name: "bare"})
	require.NoError(t, err)

	got, err := store.GetHabit(id)
	require.NoError(t, err)
	assert.NotNil(t, got.Reminders)
	assert.NotNil(t, got.DaysOfWeek)
	assert.NotNil(t, got.CompletedDates)
}

func TestSQLiteStoreGetAllFiltersByUser(t *testing.T) {
	store := setupSQLiteStore(t)

	_, err := store.AddHabit(models.Habit{Name: "a", UserID: "u1"})
	require.NoError(t, err)
	_, err = store.AddHabit(models.Habit{Name: "b", UserID: "u2"})
	require.NoError(t, err)

	all, err := store.GetAllHabits("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := store.GetAllHabits("u2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "b", mine[0].Name)
}

func TestSQLiteStoreUpdateHabit(t *testing.T) {
	store := setupSQLiteStore(t)

	id, err := store.AddHabit(models.Habit{Name: "old"})
	require.NoError(t, err)

	h, err := store.GetHabit(id)
	require.NoError(t, err)
	h.Name = "new"
	h.Priority = models.PriorityMedium
	require.NoError(t, store.UpdateHabit(h))

	got, err := store.GetHabit(id)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, models.PriorityMedium, got.Priority)

	assert.Error(t, store.UpdateHabit(models.Habit{ID: "ghost"}))
}

func TestSQLiteStoreUpdateProgress(t *testing.T) {
	store := setupSQLiteStore(t)

	id, err := store.AddHabit(models.Habit{Name: "Run"})
	require.NoError(t, err)

	require.NoError(t, store.UpdateProgress(id, []string{"2026-01-01", "2026-01-02"}, 2))

	got, err := store.GetHabit(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-01", "2026-01-02"}, got.CompletedDates)
	assert.Equal(t, 2, got.Streak)

	assert.Error(t, store.UpdateProgress("ghost", nil, 0))
}

func TestSQLiteStoreSoftDeleteAndRestore(t *testing.T) {
	store := setupSQLiteStore(t)

	id, err := store.AddHabit(models.Habit{Name: "Journal"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteHabit(id))

	_, err = store.GetHabit(id)
	assert.Error(t, err)
	all, err := store.GetAllHabits("")
	require.NoError(t, err)
	assert.Empty(t, all)

	// Progress updates must not resurrect deleted habits
	assert.Error(t, store.UpdateProgress(id, []string{"2026-01-01"}, 1))

	assert.Error(t, store.DeleteHabit(id))

	require.NoError(t, store.RestoreHabit(id))
	got, err := store.GetHabit(id)
	require.NoError(t, err)
	assert.Equal(t, "Journal", got.Name)

	assert.Error(t, store.RestoreHabit(id))
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	store := NewSQLiteStore(path)
	require.NoError(t, store.Init())

	id, err := store.AddHabit(models.Habit{Name: "Meditate", Streak: 4})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened := NewSQLiteStore(path)
	require.NoError(t, reopened.Load())
	defer reopened.Close()

	got, err := reopened.GetHabit(id)
	require.NoError(t, err)
	assert.Equal(t, "Meditate", got.Name)
	assert.Equal(t, 4, got.Streak)
}

func TestMigrateDownDropsSchema(t *testing.T) {
	store := setupSQLiteStore(t)

	require.NoError(t, MigrateDown(store.GetDB()))

	_, err := store.GetAllHabits("")
	assert.Error(t, err)
}
