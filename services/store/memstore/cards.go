package memstore

import (
	"context"
	"sort"

	models "Uno/models/postgres"
	"Uno/services/store"

	"github.com/google/uuid"
)

func (s *Store) CreateCards(ctx context.Context, cards []*models.Card) error {
	defer s.lock()()
	// validate everything first so a failed batch leaves nothing behind
	for _, c := range cards {
		if err := c.CheckState(); err != nil {
			return err
		}
		if _, ok := s.d.cards[c.ID]; ok && c.ID != "" {
			return store.ErrDuplicate
		}
	}
	now := s.now()
	for _, c := range cards {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		c.CreatedAt = now
		s.d.cards[c.ID] = cloneCard(*c)
	}
	return nil
}

func (s *Store) FindCard(ctx context.Context, id string) (*models.Card, error) {
	defer s.lock()()
	c, ok := s.d.cards[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c = cloneCard(c)
	return &c, nil
}

func (s *Store) ListCards(ctx context.Context, gameID string) ([]models.Card, error) {
	defer s.lock()()
	return s.selectCards(func(c models.Card) bool { return c.GameID == gameID }), nil
}

func (s *Store) ListDeck(ctx context.Context, gameID string) ([]models.Card, error) {
	defer s.lock()()
	return s.selectCards(func(c models.Card) bool { return c.GameID == gameID && c.InDeck() }), nil
}

func (s *Store) ListHand(ctx context.Context, gameID, playerID string) ([]models.Card, error) {
	defer s.lock()()
	return s.selectCards(func(c models.Card) bool {
		return (gameID == "" || c.GameID == gameID) && c.OwnedBy(playerID)
	}), nil
}

func (s *Store) TopDiscard(ctx context.Context, gameID string) (*models.Card, error) {
	defer s.lock()()
	var top *models.Card
	for _, c := range s.d.cards {
		if c.GameID != gameID || !c.Discarded {
			continue
		}
		if top == nil || c.DiscardSeq > top.DiscardSeq {
			c := cloneCard(c)
			top = &c
		}
	}
	if top == nil {
		return nil, store.ErrNotFound
	}
	return top, nil
}

func (s *Store) DrawFromDeck(ctx context.Context, gameID, playerID string) (*models.Card, error) {
	defer s.lock()()
	deck := s.selectCards(func(c models.Card) bool { return c.GameID == gameID && c.InDeck() })
	if len(deck) == 0 {
		return nil, store.ErrNotFound
	}
	card := deck[0]
	owner := playerID
	card.PlayerID = &owner
	s.d.cards[card.ID] = cloneCard(card)
	return &card, nil
}

func (s *Store) AssignCard(ctx context.Context, cardID, playerID string) error {
	defer s.lock()()
	card, ok := s.d.cards[cardID]
	if !ok || !card.InDeck() {
		return store.ErrStaleVersion
	}
	owner := playerID
	card.PlayerID = &owner
	s.d.cards[cardID] = card
	return nil
}

func (s *Store) DiscardCard(ctx context.Context, cardID, playerID string, seq int64) error {
	defer s.lock()()
	card, ok := s.d.cards[cardID]
	if !ok || !card.OwnedBy(playerID) {
		return store.ErrStaleVersion
	}
	card.PlayerID = nil
	card.Discarded = true
	card.DiscardSeq = seq
	s.d.cards[cardID] = card
	return nil
}

func (s *Store) FlipCard(ctx context.Context, cardID string, seq int64) error {
	defer s.lock()()
	card, ok := s.d.cards[cardID]
	if !ok || !card.InDeck() {
		return store.ErrStaleVersion
	}
	card.Discarded = true
	card.DiscardSeq = seq
	s.d.cards[cardID] = card
	return nil
}

func (s *Store) ReturnHand(ctx context.Context, gameID, playerID string) error {
	defer s.lock()()
	for id, c := range s.d.cards {
		if c.GameID == gameID && c.OwnedBy(playerID) {
			c.PlayerID = nil
			s.d.cards[id] = c
		}
	}
	return nil
}

// selectCards returns copies ordered the way the deck is drawn.
func (s *Store) selectCards(keep func(models.Card) bool) []models.Card {
	cards := []models.Card{}
	for _, c := range s.d.cards {
		if keep(c) {
			cards = append(cards, cloneCard(c))
		}
	}
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Position != cards[j].Position {
			return cards[i].Position < cards[j].Position
		}
		if !cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].CreatedAt.Before(cards[j].CreatedAt)
		}
		return cards[i].ID < cards[j].ID
	})
	return cards
}
