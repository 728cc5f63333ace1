package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrosales/habitd/internal/dateutil"
	"github.com/mrosales/habitd/internal/models"
	"github.com/mrosales/habitd/internal/storage"
)

func setupServer(t *testing.T) (http.Handler, storage.Provider) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "habitd.json"))
	require.NoError(t, store.Init())
	require.NoError(t, store.Load())
	return Router(store, []string{"*"}), store
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCreateAndGetHabit(t *testing.T) {
	router, _ := setupServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/habits", models.NewHabitInput{
		Name:      "Read",
		Frequency: models.FrequencyWeekly,
		Priority:  models.PriorityHigh,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[models.Habit](t, rec)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Read", created.Name)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/habits/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[models.Habit](t, rec)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, models.PriorityHigh, got.Priority)
}

func TestCreateHabitValidation(t *testing.T) {
	router, _ := setupServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/habits", models.NewHabitInput{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/habits", models.NewHabitInput{
		Name: "x", Priority: models.Priority("URGENT"),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/habits", models.NewHabitInput{
		Name: "x", Frequency: models.Frequency("HOURLY"),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateHabitAttachesUserFromHeader(t *testing.T) {
	router, _ := setupServer(t)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(models.NewHabitInput{Name: "Mine"}))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/habits", &buf)
	req.Header.Set("X-User-ID", "u1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[models.Habit](t, rec)
	assert.Equal(t, "u1", created.UserID)

	// List scoped to another user should not see it
	req = httptest.NewRequest(http.MethodGet, "/api/v1/habits", nil)
	req.Header.Set("X-User-ID", "u2")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.Habit](t, rec))
}

func TestListHabitsEmptyIsArray(t *testing.T) {
	router, _ := setupServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/habits", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetHabitNotFound(t *testing.T) {
	router, _ := setupServer(t)
	rec := doJSON(t, router, http.MethodGet, "/api/v1/habits/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateHabitIDMismatch(t *testing.T) {
	router, store := setupServer(t)

	id, err := store.AddHabit(models.Habit{Name: "a"})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/habits/"+id, models.Habit{ID: "other", Name: "a"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/habits/"+id, models.Habit{Name: "renamed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed", decode[models.Habit](t, rec).Name)
}

func TestDeleteAndRestoreHabit(t *testing.T) {
	router, store := setupServer(t)

	id, err := store.AddHabit(models.Habit{Name: "a"})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/habits/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/habits/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/habits/"+id+"/restore", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/habits/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestToggleHabitFlipsState(t *testing.T) {
	router, store := setupServer(t)

	id, err := store.AddHabit(models.Habit{Name: "Run"})
	require.NoError(t, err)

	// First toggle marks the date
	rec := doJSON(t, router, http.MethodPost, "/api/v1/habits/"+id+"/toggle", map[string]string{"date": "2026-01-05"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[toggleResponse](t, rec)
	assert.True(t, resp.Completed)
	assert.Equal(t, 1, resp.Habit.Streak)
	assert.Contains(t, resp.Habit.CompletedDates, "2026-01-05")

	// Second toggle unmarks it; the streak counter moves back down
	rec = doJSON(t, router, http.MethodPost, "/api/v1/habits/"+id+"/toggle", map[string]string{"date": "2026-01-05"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[toggleResponse](t, rec)
	assert.False(t, resp.Completed)
	assert.Equal(t, 0, resp.Habit.Streak)
	assert.NotContains(t, resp.Habit.CompletedDates, "2026-01-05")
}

func TestToggleHabitDefaultsToToday(t *testing.T) {
	router, store := setupServer(t)

	id, err := store.AddHabit(models.Habit{Name: "Run"})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/habits/"+id+"/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[toggleResponse](t, rec)
	assert.Contains(t, resp.Habit.CompletedDates, dateutil.Today())
}

func TestToggleHabitBadDate(t *testing.T) {
	router, store := setupServer(t)

	id, err := store.AddHabit(models.Habit{Name: "Run"})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/habits/"+id+"/toggle", map[string]string{"date": "01/05/2026"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHabitDue(t *testing.T) {
	router, store := setupServer(t)

	id, err := store.AddHabit(models.Habit{
		Name:       "Gym",
		Frequency:  models.FrequencyWeekly,
		DaysOfWeek: []string{"MONDAY"},
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/habits/"+id+"/due?date=2026-01-05", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[map[string]any](t, rec)
	assert.Equal(t, true, resp["due"])
	assert.Equal(t, "2026-01-05", resp["date"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/habits/"+id+"/due?date=2026-01-06", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode[map[string]any](t, rec)["due"])
}

func TestToday(t *testing.T) {
	router, store := setupServer(t)

	_, err := store.AddHabit(models.Habit{Name: "daily", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/today", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[todayResponse](t, rec)
	assert.Equal(t, dateutil.Today(), resp.Date)
	require.Len(t, resp.Habits, 1)
	assert.False(t, resp.Habits[0].Completed)
	assert.Equal(t, 1, resp.ScheduledProgress.Total)
}

func TestStats(t *testing.T) {
	router, store := setupServer(t)

	_, err := store.AddHabit(models.Habit{
		Name:           "a",
		Category:       "health",
		Priority:       models.PriorityHigh,
		Frequency:      models.FrequencyDaily,
		Streak:         3,
		CompletedDates: []string{"2026-01-01", "2026-01-02"},
	})
	require.NoError(t, err)
	_, err = store.AddHabit(models.Habit{
		Name:      "b",
		Category:  "health",
		Priority:  models.PriorityLow,
		Frequency: models.FrequencyWeekly,
		Streak:    1,
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[statsResponse](t, rec)

	assert.Equal(t, "a", resp.BestStreakName)
	assert.Equal(t, 3, resp.BestStreak)
	assert.Equal(t, 2, resp.AverageStreak)
	assert.Equal(t, 2, resp.TotalCompletions)
	assert.Equal(t, 2, resp.CategoryCounts["health"])
	assert.Equal(t, 1, resp.PriorityCounts[models.PriorityHigh])
	assert.Equal(t, 1, resp.FrequencyCounts[models.FrequencyWeekly])
	assert.Len(t, resp.WeekCompletions, 7)
}
