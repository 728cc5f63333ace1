package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mrosales/habitd/internal/models"
)

const habitColumns = `id, user_id, name, category, description, time, reminders,
	priority, frequency, start_date, end_date, days_of_week, daily_goal,
	additional_goal, streak, completed_dates, image_uri, location, created_at,
	deleted_at`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := MigrateUp(s.db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitd init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) AddHabit(h models.Habit) (string, error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}

	reminders, daysOfWeek, completedDates, err := marshalLists(h)
	if err != nil {
		return "", err
	}

	var deletedAt sql.NullString
	if h.DeletedAt != nil {
		deletedAt = sql.NullString{String: *h.DeletedAt, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.UserID, h.Name, h.Category, h.Description, h.Time, reminders,
		h.Priority, h.Frequency, h.StartDate, h.EndDate, daysOfWeek, h.DailyGoal,
		h.AdditionalGoal, h.Streak, completedDates, h.ImageURI, h.Location,
		h.CreatedAt.UTC().Format(time.RFC3339), deletedAt,
	)
	if err != nil {
		return "", err
	}
	return h.ID, nil
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE id = ? AND deleted_at IS NULL`, id)

	h, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("habit not found: %s", id)
		}
		return models.Habit{}, err
	}
	return h, nil
}

func (s *SQLiteStore) GetAllHabits(userID string) ([]models.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE deleted_at IS NULL`
	args := []any{}
	if userID != "" {
		query += ` AND user_id = ?`
		args = append(args, userID)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) UpdateHabit(h models.Habit) error {
	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM habits WHERE id = ?", h.ID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("habit not found: %s", h.ID)
	}

	_, err := s.AddHabit(h)
	return err
}

func (s *SQLiteStore) UpdateProgress(id string, completedDates []string, streak int) error {
	datesJSON, err := json.Marshal(completedDates)
	if err != nil {
		return fmt.Errorf("failed to marshal completed dates: %w", err)
	}

	res, err := s.db.Exec(
		"UPDATE habits SET completed_dates = ?, streak = ? WHERE id = ? AND deleted_at IS NULL",
		string(datesJSON), streak, id,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("habit not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) DeleteHabit(id string) error {
	// Soft delete: set deleted_at timestamp instead of removing the record
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM habits WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("habit not found: %s", id)
		}
		return fmt.Errorf("failed to check habit existence: %w", err)
	}

	if deletedAt.Valid {
		return fmt.Errorf("habit %s is already deleted", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec("UPDATE habits SET deleted_at = ? WHERE id = ?", now, id)
	return err
}

func (s *SQLiteStore) RestoreHabit(id string) error {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM habits WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("habit not found: %s", id)
		}
		return fmt.Errorf("failed to check habit existence: %w", err)
	}

	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore a habit that is not deleted: %s", id)
	}

	_, err = s.db.Exec("UPDATE habits SET deleted_at = NULL WHERE id = ?", id)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func marshalLists(h models.Habit) (reminders, daysOfWeek, completedDates string, err error) {
	r, err := json.Marshal(emptyIfNil(h.Reminders))
	if err != nil {
		return "", "", "", fmt.Errorf("failed to marshal reminders: %w", err)
	}
	d, err := json.Marshal(emptyIfNil(h.DaysOfWeek))
	if err != nil {
		return "", "", "", fmt.Errorf("failed to marshal days of week: %w", err)
	}
	c, err := json.Marshal(emptyIfNil(h.CompletedDates))
	if err != nil {
		return "", "", "", fmt.Errorf("failed to marshal completed dates: %w", err)
	}
	return string(r), string(d), string(c), nil
}

func emptyIfNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var reminders, daysOfWeek, completedDates, createdAt string
	var deletedAt sql.NullString

	err := row.Scan(
		&h.ID, &h.UserID, &h.Name, &h.Category, &h.Description, &h.Time,
		&reminders, &h.Priority, &h.Frequency, &h.StartDate, &h.EndDate,
		&daysOfWeek, &h.DailyGoal, &h.AdditionalGoal, &h.Streak,
		&completedDates, &h.ImageURI, &h.Location, &createdAt, &deletedAt,
	)
	if err != nil {
		return models.Habit{}, err
	}

	if err := json.Unmarshal([]byte(reminders), &h.Reminders); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse reminders for %s: %w", h.ID, err)
	}
	if err := json.Unmarshal([]byte(daysOfWeek), &h.DaysOfWeek); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse days of week for %s: %w", h.ID, err)
	}
	if err := json.Unmarshal([]byte(completedDates), &h.CompletedDates); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse completed dates for %s: %w", h.ID, err)
	}

	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		h.CreatedAt = ts
	}

	if deletedAt.Valid {
		h.DeletedAt = &deletedAt.String
	}

	return h, nil
}
