package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mrosales/habitd/internal/dateutil"
	"github.com/mrosales/habitd/internal/habit"
	"github.com/mrosales/habitd/internal/models"
	"github.com/mrosales/habitd/internal/stats"
	"github.com/mrosales/habitd/internal/storage"
)

// API holds the handler dependencies: the habit store.
type API struct {
	store storage.Provider
}

func NewAPI(store storage.Provider) *API {
	return &API{store: store}
}

func (a *API) respondWithError(w http.ResponseWriter, code int, message string) {
	a.respondWithJSON(w, code, map[string]string{"error": message})
}

func (a *API) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// parseDateParam resolves a date string to a local midnight time. The literal
// "today" and the empty string both mean the current day.
func parseDateParam(dateStr string) (time.Time, error) {
	if dateStr == "" || dateStr == "today" {
		return dateutil.Midnight(time.Now()), nil
	}
	t, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s, use YYYY-MM-DD or 'today'", dateStr)
	}
	return t, nil
}

// userID resolves the requesting user from the X-User-ID header or the userId
// query parameter. Empty means "all users" — authentication is the deployment
// proxy's concern, not this API's.
func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return r.URL.Query().Get("userId")
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found")
}

// --- Habit handlers ---

func (a *API) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := a.store.GetAllHabits(userID(r))
	if err != nil {
		a.respondWithError(w, http.StatusInternalServerError, "Failed to list habits: "+err.Error())
		return
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	a.respondWithJSON(w, http.StatusOK, habits)
}

func (a *API) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var input models.NewHabitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		a.respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Name == "" {
		a.respondWithError(w, http.StatusBadRequest, "Habit name is required")
		return
	}
	if input.Priority != "" && !input.Priority.Valid() {
		a.respondWithError(w, http.StatusBadRequest, "Invalid priority: "+string(input.Priority))
		return
	}
	if input.Frequency != "" && !input.Frequency.Valid() {
		a.respondWithError(w, http.StatusBadRequest, "Invalid frequency: "+string(input.Frequency))
		return
	}

	h := models.NewHabit(input, userID(r))
	id, err := a.store.AddHabit(h)
	if err != nil {
		a.respondWithError(w, http.StatusInternalServerError, "Failed to create habit: "+err.Error())
		return
	}
	h.ID = id

	a.respondWithJSON(w, http.StatusCreated, h)
}

func (a *API) GetHabit(w http.ResponseWriter, r *http.Request) {
	h, err := a.store.GetHabit(chi.URLParam(r, "habitID"))
	if err != nil {
		if isNotFound(err) {
			a.respondWithError(w, http.StatusNotFound, "Habit not found")
		} else {
			a.respondWithError(w, http.StatusInternalServerError, "Failed to get habit: "+err.Error())
		}
		return
	}
	a.respondWithJSON(w, http.StatusOK, h)
}

func (a *API) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habitID")

	var h models.Habit
	if err := json.NewDecoder(r.Body).Decode(&h); err != nil {
		a.respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if h.ID != "" && h.ID != habitID {
		a.respondWithError(w, http.StatusBadRequest, "Habit ID in payload mismatches URL")
		return
	}
	h.ID = habitID

	if err := a.store.UpdateHabit(h); err != nil {
		if isNotFound(err) {
			a.respondWithError(w, http.StatusNotFound, "Habit not found")
		} else {
			a.respondWithError(w, http.StatusInternalServerError, "Failed to update habit: "+err.Error())
		}
		return
	}
	a.respondWithJSON(w, http.StatusOK, h)
}

func (a *API) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteHabit(chi.URLParam(r, "habitID")); err != nil {
		if isNotFound(err) {
			a.respondWithError(w, http.StatusNotFound, "Habit not found")
		} else {
			a.respondWithError(w, http.StatusInternalServerError, "Failed to delete habit: "+err.Error())
		}
		return
	}
	a.respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *API) RestoreHabit(w http.ResponseWriter, r *http.Request) {
	if err := a.store.RestoreHabit(chi.URLParam(r, "habitID")); err != nil {
		if isNotFound(err) {
			a.respondWithError(w, http.StatusNotFound, "Habit not found")
		} else {
			a.respondWithError(w, http.StatusInternalServerError, "Failed to restore habit: "+err.Error())
		}
		return
	}
	a.respondWithJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

// --- Toggle and schedule handlers ---

type toggleRequest struct {
	Date string `json:"date"`
}

type toggleResponse struct {
	Habit     models.Habit `json:"habit"`
	Completed bool         `json:"completed"`
}

// ToggleHabit flips the completion state of a habit for a date. The engine
// computes the new progress; only completedDates and streak are written back.
func (a *API) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habitID")

	var req toggleRequest
	if r.Body != nil {
		// An empty body means "today"
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		a.respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h, err := a.store.GetHabit(habitID)
	if err != nil {
		if isNotFound(err) {
			a.respondWithError(w, http.StatusNotFound, "Habit not found")
		} else {
			a.respondWithError(w, http.StatusInternalServerError, "Failed to get habit: "+err.Error())
		}
		return
	}

	var updated models.Habit
	if habit.IsCompletedOn(h, date) {
		updated = habit.UnmarkCompleted(h, date)
	} else {
		updated = habit.MarkCompleted(h, date)
	}

	if err := a.store.UpdateProgress(habitID, updated.CompletedDates, updated.Streak); err != nil {
		a.respondWithError(w, http.StatusInternalServerError, "Failed to update progress: "+err.Error())
		return
	}

	a.respondWithJSON(w, http.StatusOK, toggleResponse{
		Habit:     updated,
		Completed: habit.IsCompletedOn(updated, date),
	})
}

func (a *API) HabitDue(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r.URL.Query().Get("date"))
	if err != nil {
		a.respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h, err := a.store.GetHabit(chi.URLParam(r, "habitID"))
	if err != nil {
		if isNotFound(err) {
			a.respondWithError(w, http.StatusNotFound, "Habit not found")
		} else {
			a.respondWithError(w, http.StatusInternalServerError, "Failed to get habit: "+err.Error())
		}
		return
	}

	a.respondWithJSON(w, http.StatusOK, map[string]any{
		"date": dateutil.FormatDate(date),
		"due":  habit.IsDueOnDate(h, date),
	})
}

// --- Dashboard handlers ---

type todayHabit struct {
	models.Habit
	Completed bool `json:"completed"`
}

type todayResponse struct {
	Date              string         `json:"date"`
	Habits            []todayHabit   `json:"habits"`
	Progress          stats.Progress `json:"progress"`
	ScheduledProgress stats.Progress `json:"scheduled_progress"`
}

// Today returns the habits due today with their completion flags plus both
// progress views.
func (a *API) Today(w http.ResponseWriter, r *http.Request) {
	habits, err := a.store.GetAllHabits(userID(r))
	if err != nil {
		a.respondWithError(w, http.StatusInternalServerError, "Failed to list habits: "+err.Error())
		return
	}

	resp := todayResponse{
		Date:              dateutil.Today(),
		Habits:            []todayHabit{},
		Progress:          stats.TodayProgress(habits),
		ScheduledProgress: stats.ScheduledTodayProgress(habits),
	}
	for _, h := range habits {
		if habit.IsScheduledForToday(h) {
			resp.Habits = append(resp.Habits, todayHabit{
				Habit:     h,
				Completed: habit.IsCompletedToday(h),
			})
		}
	}

	a.respondWithJSON(w, http.StatusOK, resp)
}

type statsResponse struct {
	Progress          stats.Progress           `json:"today_progress"`
	ScheduledProgress stats.Progress           `json:"scheduled_progress"`
	CurrentStreak     int                      `json:"current_streak"`
	BestStreakName    string                   `json:"best_streak_name"`
	BestStreak        int                      `json:"best_streak"`
	AverageStreak     int                      `json:"average_streak"`
	TotalCompletions  int                      `json:"total_completions"`
	CategoryCounts    map[string]int           `json:"category_counts"`
	PriorityCounts    map[models.Priority]int  `json:"priority_counts"`
	FrequencyCounts   map[models.Frequency]int `json:"frequency_counts"`
	WeekCompletions   []int                    `json:"week_completions"`
}

// Stats returns the aggregated dashboard summary for a user's habits.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	habits, err := a.store.GetAllHabits(userID(r))
	if err != nil {
		a.respondWithError(w, http.StatusInternalServerError, "Failed to list habits: "+err.Error())
		return
	}

	bestName, best := stats.BestStreak(habits)
	now := time.Now()

	a.respondWithJSON(w, http.StatusOK, statsResponse{
		Progress:          stats.TodayProgress(habits),
		ScheduledProgress: stats.ScheduledTodayProgress(habits),
		CurrentStreak:     stats.CurrentStreak(stats.HabitsByDate(habits), now),
		BestStreakName:    bestName,
		BestStreak:        best,
		AverageStreak:     stats.AverageStreak(habits),
		TotalCompletions:  stats.TotalCompletions(habits),
		CategoryCounts:    stats.CategoryCounts(habits),
		PriorityCounts:    stats.PriorityCounts(habits),
		FrequencyCounts:   stats.FrequencyCounts(habits),
		WeekCompletions:   stats.WeekCompletions(habits, now),
	})
}
