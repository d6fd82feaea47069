package gameplay

import (
	"context"
	"errors"

	models "Uno/models/postgres"
	"Uno/services/store"
	"Uno/services/uno"

	"github.com/google/uuid"
)

// CreateCard puts a card at the bottom of a game's deck.
func (s *Service) CreateCard(ctx context.Context, gameID, color, value string) (*models.Card, error) {
	if gameID == "" || color == "" || value == "" {
		return nil, uno.ValidationError("All fields are required")
	}
	if !uno.ValidColor(color) {
		return nil, uno.ValidationError("Invalid card color: %s", color)
	}
	if !uno.ValidValue(value) {
		return nil, uno.ValidationError("Invalid card value: %s", value)
	}
	var card *models.Card
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		if _, err := s.findGame(ctx, tx, gameID); err != nil {
			return err
		}
		existing, err := tx.ListCards(ctx, gameID)
		if err != nil {
			return err
		}
		position := 0
		for _, c := range existing {
			if c.Position >= position {
				position = c.Position + 1
			}
		}
		card = &models.Card{
			ID:       uuid.NewString(),
			GameID:   gameID,
			Color:    color,
			Value:    value,
			Position: position,
		}
		return tx.CreateCards(ctx, []*models.Card{card})
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *Service) GetCard(ctx context.Context, cardID string) (*models.Card, error) {
	card, err := s.store.FindCard(ctx, cardID)
	if err != nil {
		return nil, notFound(err, "Card not found")
	}
	return card, nil
}

func (s *Service) GameCards(ctx context.Context, gameID string) ([]models.Card, error) {
	if _, err := s.GetGame(ctx, gameID); err != nil {
		return nil, err
	}
	return s.store.ListCards(ctx, gameID)
}

// Hand lists playerID's cards as "color value" strings. gameID may be
// empty to span every game.
func (s *Service) Hand(ctx context.Context, playerID, gameID string) ([]string, error) {
	if err := required(playerID); err != nil {
		return nil, err
	}
	cards, err := s.store.ListHand(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	hand := make([]string, 0, len(cards))
	for _, c := range cards {
		hand = append(hand, c.Face().String())
	}
	return hand, nil
}

func (s *Service) TopCard(ctx context.Context, gameID string) (*models.Card, error) {
	if err := required(gameID); err != nil {
		return nil, err
	}
	top, err := s.store.TopDiscard(ctx, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, uno.NotFoundError("There are no cards in the discard pile.")
	}
	return top, err
}
