package gormstore

import (
	"context"

	models "Uno/models/postgres"
	"Uno/services/store"

	"gorm.io/datatypes"
)

// Scores

func (s *Store) CreateScore(ctx context.Context, score *models.Score) error {
	return translate(s.db.WithContext(ctx).Create(score).Error)
}

func (s *Store) FindScore(ctx context.Context, id string) (*models.Score, error) {
	var score models.Score
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&score).Error; err != nil {
		return nil, translate(err)
	}
	return &score, nil
}

func (s *Store) ListScores(ctx context.Context) ([]models.Score, error) {
	var scores []models.Score
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&scores).Error
	return scores, translate(err)
}

func (s *Store) ListScoresByGame(ctx context.Context, gameID string) ([]models.Score, error) {
	var scores []models.Score
	err := s.db.WithContext(ctx).Where("game_id = ?", gameID).Order("created_at ASC, id ASC").Find(&scores).Error
	return scores, translate(err)
}

func (s *Store) SaveScore(ctx context.Context, score *models.Score) error {
	res := s.db.WithContext(ctx).Model(&models.Score{}).Where("id = ?", score.ID).Updates(map[string]interface{}{
		"player_id": score.PlayerID,
		"game_id":   score.GameID,
		"score":     score.Score,
	})
	return affected(res, store.ErrNotFound)
}

func (s *Store) DeleteScore(ctx context.Context, id string) error {
	return affected(s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Score{}), store.ErrNotFound)
}

// History

func (s *Store) AppendHistory(ctx context.Context, entry *models.GameHistory) error {
	return translate(s.db.WithContext(ctx).Create(entry).Error)
}

func (s *Store) ListHistory(ctx context.Context, gameID string) ([]models.GameHistory, error) {
	var entries []models.GameHistory
	err := s.db.WithContext(ctx).Where("game_id = ?", gameID).Order("id ASC").Find(&entries).Error
	return entries, translate(err)
}

// Tracking

const upsertTracking = `
INSERT INTO tracking (endpoint_access, request_method, status_code, request_count, response_times, user_id, timestamp)
VALUES (?, ?, ?, 1, ?, ?, ?)
ON CONFLICT (endpoint_access, request_method) DO UPDATE SET
	request_count = tracking.request_count + 1,
	status_code = EXCLUDED.status_code,
	response_times = tracking.response_times || EXCLUDED.response_times,
	user_id = EXCLUDED.user_id,
	timestamp = EXCLUDED.timestamp`

func (s *Store) RecordRequest(ctx context.Context, sample store.RequestSample) error {
	times := datatypes.JSONSlice[int64]{sample.Elapsed.Milliseconds()}
	err := s.db.WithContext(ctx).Exec(upsertTracking,
		sample.Endpoint, sample.Method, sample.StatusCode, times, sample.UserID, sample.At,
	).Error
	return translate(err)
}

func (s *Store) ListTracking(ctx context.Context) ([]models.Tracking, error) {
	var rows []models.Tracking
	err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, translate(err)
}
