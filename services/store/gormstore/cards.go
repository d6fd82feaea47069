package gormstore

import (
	"context"

	models "Uno/models/postgres"
	"Uno/services/store"

	"gorm.io/gorm/clause"
)

const inDeck = "player_id IS NULL AND discarded = false"

func (s *Store) CreateCards(ctx context.Context, cards []*models.Card) error {
	if len(cards) == 0 {
		return nil
	}
	return translate(s.db.WithContext(ctx).CreateInBatches(cards, 100).Error)
}

func (s *Store) FindCard(ctx context.Context, id string) (*models.Card, error) {
	var card models.Card
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		return nil, translate(err)
	}
	return &card, nil
}

func (s *Store) ListCards(ctx context.Context, gameID string) ([]models.Card, error) {
	var cards []models.Card
	err := s.db.WithContext(ctx).Where("game_id = ?", gameID).Order("position ASC, created_at ASC, id ASC").Find(&cards).Error
	return cards, translate(err)
}

func (s *Store) ListDeck(ctx context.Context, gameID string) ([]models.Card, error) {
	var cards []models.Card
	err := s.db.WithContext(ctx).Where("game_id = ? AND "+inDeck, gameID).
		Order("position ASC, created_at ASC, id ASC").Find(&cards).Error
	return cards, translate(err)
}

func (s *Store) ListHand(ctx context.Context, gameID, playerID string) ([]models.Card, error) {
	var cards []models.Card
	q := s.db.WithContext(ctx).Where("player_id = ? AND discarded = false", playerID)
	if gameID != "" {
		q = q.Where("game_id = ?", gameID)
	}
	err := q.Order("position ASC, created_at ASC, id ASC").Find(&cards).Error
	return cards, translate(err)
}

func (s *Store) TopDiscard(ctx context.Context, gameID string) (*models.Card, error) {
	var card models.Card
	err := s.db.WithContext(ctx).Where("game_id = ? AND discarded = true", gameID).
		Order("discard_seq DESC").First(&card).Error
	if err != nil {
		return nil, translate(err)
	}
	return &card, nil
}

func (s *Store) DrawFromDeck(ctx context.Context, gameID, playerID string) (*models.Card, error) {
	var card models.Card
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("game_id = ? AND "+inDeck, gameID).
		Order("position ASC, created_at ASC, id ASC").
		First(&card).Error
	if err != nil {
		return nil, translate(err)
	}
	if err := s.AssignCard(ctx, card.ID, playerID); err != nil {
		return nil, err
	}
	owner := playerID
	card.PlayerID = &owner
	return &card, nil
}

func (s *Store) AssignCard(ctx context.Context, cardID, playerID string) error {
	res := s.db.WithContext(ctx).Model(&models.Card{}).
		Where("id = ? AND "+inDeck, cardID).
		Update("player_id", playerID)
	return affected(res, store.ErrStaleVersion)
}

func (s *Store) DiscardCard(ctx context.Context, cardID, playerID string, seq int64) error {
	res := s.db.WithContext(ctx).Model(&models.Card{}).
		Where("id = ? AND player_id = ? AND discarded = false", cardID, playerID).
		Updates(map[string]interface{}{"player_id": nil, "discarded": true, "discard_seq": seq})
	return affected(res, store.ErrStaleVersion)
}

func (s *Store) FlipCard(ctx context.Context, cardID string, seq int64) error {
	res := s.db.WithContext(ctx).Model(&models.Card{}).
		Where("id = ? AND "+inDeck, cardID).
		Updates(map[string]interface{}{"discarded": true, "discard_seq": seq})
	return affected(res, store.ErrStaleVersion)
}

func (s *Store) ReturnHand(ctx context.Context, gameID, playerID string) error {
	err := s.db.WithContext(ctx).Model(&models.Card{}).
		Where("game_id = ? AND player_id = ? AND discarded = false", gameID, playerID).
		Update("player_id", nil).Error
	return translate(err)
}
