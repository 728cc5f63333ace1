package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mrosales/habitd/internal/models"
)

const habitsCollection = "habits"

// FirestoreStore persists habits as documents in a Cloud Firestore
// collection. Progress updates are written as field-path updates so two
// clients editing different fields of the same habit do not clobber each
// other.
type FirestoreStore struct {
	ctx       context.Context
	projectID string
	client    *firestore.Client
}

func NewFirestoreStore(ctx context.Context, projectID string) *FirestoreStore {
	return &FirestoreStore{
		ctx:       ctx,
		projectID: projectID,
	}
}

func (s *FirestoreStore) Init() error {
	return s.Load()
}

func (s *FirestoreStore) Load() error {
	if s.client != nil {
		return nil
	}
	if s.projectID == "" {
		return fmt.Errorf("firestore project ID is required")
	}

	client, err := firestore.NewClient(s.ctx, s.projectID)
	if err != nil {
		return fmt.Errorf("failed to create Firestore client: %w", err)
	}
	s.client = client
	return nil
}

func (s *FirestoreStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func (s *FirestoreStore) AddHabit(h models.Habit) (string, error) {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}

	if h.ID != "" {
		_, err := s.client.Collection(habitsCollection).Doc(h.ID).Set(s.ctx, h)
		if err != nil {
			return "", fmt.Errorf("failed to save habit: %w", err)
		}
		return h.ID, nil
	}

	ref, _, err := s.client.Collection(habitsCollection).Add(s.ctx, h)
	if err != nil {
		return "", fmt.Errorf("failed to add habit: %w", err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) GetHabit(id string) (models.Habit, error) {
	snap, err := s.client.Collection(habitsCollection).Doc(id).Get(s.ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.Habit{}, fmt.Errorf("habit not found: %s", id)
		}
		return models.Habit{}, fmt.Errorf("failed to get habit: %w", err)
	}

	h, err := habitFromSnap(snap)
	if err != nil {
		return models.Habit{}, err
	}
	if h.DeletedAt != nil {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}
	return h, nil
}

func (s *FirestoreStore) GetAllHabits(userID string) ([]models.Habit, error) {
	var q firestore.Query = s.client.Collection(habitsCollection).Query
	if userID != "" {
		q = q.Where("userId", "==", userID)
	}

	iter := q.Documents(s.ctx)
	defer iter.Stop()

	var habits []models.Habit
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list habits: %w", err)
		}

		h, err := habitFromSnap(snap)
		if err != nil {
			return nil, err
		}
		if h.DeletedAt != nil {
			continue
		}
		habits = append(habits, h)
	}

	return habits, nil
}

func (s *FirestoreStore) UpdateHabit(h models.Habit) error {
	if h.ID == "" {
		return fmt.Errorf("habit ID is required for update")
	}

	_, err := s.client.Collection(habitsCollection).Doc(h.ID).Set(s.ctx, h)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("habit not found: %s", h.ID)
		}
		return fmt.Errorf("failed to update habit: %w", err)
	}
	return nil
}

func (s *FirestoreStore) UpdateProgress(id string, completedDates []string, streak int) error {
	updates := []firestore.Update{
		{Path: "completedDates", Value: completedDates},
		{Path: "streak", Value: streak},
	}

	_, err := s.client.Collection(habitsCollection).Doc(id).Update(s.ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("habit not found: %s", id)
		}
		return fmt.Errorf("failed to update habit progress: %w", err)
	}
	return nil
}

func (s *FirestoreStore) DeleteHabit(id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.client.Collection(habitsCollection).Doc(id).Update(s.ctx, []firestore.Update{
		{Path: "deletedAt", Value: now},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("habit not found: %s", id)
		}
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return nil
}

func (s *FirestoreStore) RestoreHabit(id string) error {
	_, err := s.client.Collection(habitsCollection).Doc(id).Update(s.ctx, []firestore.Update{
		{Path: "deletedAt", Value: nil},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("habit not found: %s", id)
		}
		return fmt.Errorf("failed to restore habit: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetConfigPath() string {
	return fmt.Sprintf("firestore://%s/%s", s.projectID, habitsCollection)
}

func habitFromSnap(snap *firestore.DocumentSnapshot) (models.Habit, error) {
	var h models.Habit
	if err := snap.DataTo(&h); err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse habit %s: %w", snap.Ref.ID, err)
	}
	h.ID = snap.Ref.ID
	return h, nil
}
