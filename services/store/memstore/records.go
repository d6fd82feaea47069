package memstore

import (
	"context"
	"sort"

	models "Uno/models/postgres"
	"Uno/services/store"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Scores

func (s *Store) CreateScore(ctx context.Context, score *models.Score) error {
	defer s.lock()()
	if score.ID == "" {
		score.ID = uuid.NewString()
	}
	if _, ok := s.d.scores[score.ID]; ok {
		return store.ErrDuplicate
	}
	score.CreatedAt = s.now()
	score.UpdatedAt = score.CreatedAt
	s.d.scores[score.ID] = *score
	return nil
}

func (s *Store) FindScore(ctx context.Context, id string) (*models.Score, error) {
	defer s.lock()()
	sc, ok := s.d.scores[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &sc, nil
}

func (s *Store) ListScores(ctx context.Context) ([]models.Score, error) {
	defer s.lock()()
	return s.selectScores(func(models.Score) bool { return true }), nil
}

func (s *Store) ListScoresByGame(ctx context.Context, gameID string) ([]models.Score, error) {
	defer s.lock()()
	return s.selectScores(func(sc models.Score) bool { return sc.GameID == gameID }), nil
}

func (s *Store) selectScores(keep func(models.Score) bool) []models.Score {
	scores := []models.Score{}
	for _, sc := range s.d.scores {
		if keep(sc) {
			scores = append(scores, sc)
		}
	}
	sort.Slice(scores, func(i, j int) bool {
		if !scores[i].CreatedAt.Equal(scores[j].CreatedAt) {
			return scores[i].CreatedAt.Before(scores[j].CreatedAt)
		}
		return scores[i].ID < scores[j].ID
	})
	return scores
}

func (s *Store) SaveScore(ctx context.Context, score *models.Score) error {
	defer s.lock()()
	existing, ok := s.d.scores[score.ID]
	if !ok {
		return store.ErrNotFound
	}
	score.CreatedAt = existing.CreatedAt
	score.UpdatedAt = s.now()
	s.d.scores[score.ID] = *score
	return nil
}

func (s *Store) DeleteScore(ctx context.Context, id string) error {
	defer s.lock()()
	if _, ok := s.d.scores[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.scores, id)
	return nil
}

// History

func (s *Store) AppendHistory(ctx context.Context, entry *models.GameHistory) error {
	defer s.lock()()
	s.d.historySeq++
	entry.ID = s.d.historySeq
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	s.d.history = append(s.d.history, *entry)
	return nil
}

func (s *Store) ListHistory(ctx context.Context, gameID string) ([]models.GameHistory, error) {
	defer s.lock()()
	entries := []models.GameHistory{}
	for _, e := range s.d.history {
		if e.GameID == gameID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Tracking

func (s *Store) RecordRequest(ctx context.Context, sample store.RequestSample) error {
	defer s.lock()()
	ms := sample.Elapsed.Milliseconds()
	for i, t := range s.d.tracking {
		if t.EndpointAccess == sample.Endpoint && t.RequestMethod == sample.Method {
			t.RequestCount++
			t.StatusCode = sample.StatusCode
			t.ResponseTimes = append(append(datatypes.JSONSlice[int64]{}, t.ResponseTimes...), ms)
			t.UserID = sample.UserID
			t.Timestamp = sample.At
			s.d.tracking[i] = t
			return nil
		}
	}
	s.d.trackingSeq++
	s.d.tracking = append(s.d.tracking, models.Tracking{
		ID:             s.d.trackingSeq,
		EndpointAccess: sample.Endpoint,
		RequestMethod:  sample.Method,
		StatusCode:     sample.StatusCode,
		RequestCount:   1,
		ResponseTimes:  datatypes.JSONSlice[int64]{ms},
		UserID:         sample.UserID,
		Timestamp:      sample.At,
	})
	return nil
}

func (s *Store) ListTracking(ctx context.Context) ([]models.Tracking, error) {
	defer s.lock()()
	rows := make([]models.Tracking, 0, len(s.d.tracking))
	for _, t := range s.d.tracking {
		rows = append(rows, cloneTracking(t))
	}
	return rows, nil
}
