package gameplay

import (
	"context"
	"errors"

	game_constants "Uno/constants/game"
	models "Uno/models/postgres"
	"Uno/services/store"
	"Uno/services/uno"

	"github.com/google/uuid"
)

type UnoResult struct {
	Message string       `json:"message"`
	Game    *models.Game `json:"-"`
}

type ChallengeResult struct {
	Message      string        `json:"message"`
	PenaltyCards []models.Card `json:"penaltyCards"`
	Game         *models.Game  `json:"-"`
}

// DeclareUno flags a player holding exactly one card as safe from
// challenges until their hand changes again.
func (s *Service) DeclareUno(ctx context.Context, playerID, gameID string) (*UnoResult, error) {
	if err := required(playerID, gameID); err != nil {
		return nil, err
	}
	var result *UnoResult
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		game, err := s.findGame(ctx, tx, gameID)
		if err != nil {
			return err
		}
		hand, err := tx.ListHand(ctx, gameID, playerID)
		if err != nil {
			return err
		}
		if len(hand) != 1 {
			return uno.ValidationError("You can only say 'UNO' when you have exactly one card.")
		}
		if err := s.record(ctx, tx, gameID, playerID, "Declared UNO"); err != nil {
			return err
		}
		game.SetUnoDeclared(playerID, true)
		if err := saveGame(ctx, tx, game); err != nil {
			return err
		}
		result = &UnoResult{Message: "UNO declared successfully!", Game: game}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ChallengeUno punishes a player left with one card who never declared
// UNO: they draw UNO_PENALTY_CARDS cards.
func (s *Service) ChallengeUno(ctx context.Context, challengerID, challengedID, gameID string) (*ChallengeResult, error) {
	if err := required(challengerID, challengedID, gameID); err != nil {
		return nil, err
	}
	if challengerID == challengedID {
		return nil, uno.ValidationError("You cannot challenge yourself.")
	}
	var result *ChallengeResult
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		game, err := s.findGame(ctx, tx, gameID)
		if err != nil {
			return err
		}
		hand, err := tx.ListHand(ctx, gameID, challengedID)
		if err != nil {
			return err
		}
		if len(hand) == 0 {
			return uno.NotFoundError("No cards were found for this player.")
		}
		if len(hand) != 1 {
			return uno.ConflictError("You cannot challenge this player because they do not have exactly one card.")
		}
		if game.UnoDeclared(challengedID) {
			return uno.ConflictError("The player did declare 'UNO', you cannot challenge them.")
		}

		penalty, err := s.drawPenalty(ctx, tx, gameID, challengedID)
		if err != nil {
			return err
		}
		if len(penalty) == 0 {
			return uno.ConflictError("There are no cards left in the deck.")
		}

		if err := s.record(ctx, tx, gameID, challengerID, "Challenged UNO of "+challengedID); err != nil {
			return err
		}
		game.SetUnoDeclared(challengedID, false)
		if err := saveGame(ctx, tx, game); err != nil {
			return err
		}
		result = &ChallengeResult{
			Message:      "Successful challenge! The player forgot to say 'UNO' and has drawn 2 cards.",
			PenaltyCards: penalty,
			Game:         game,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// drawPenalty takes cards from the deck first and, when it runs dry,
// synthesizes random coloured cards straight into the hand.
func (s *Service) drawPenalty(ctx context.Context, tx store.Store, gameID, playerID string) ([]models.Card, error) {
	penalty := make([]models.Card, 0, game_constants.UNO_PENALTY_CARDS)
	for len(penalty) < game_constants.UNO_PENALTY_CARDS {
		card, err := tx.DrawFromDeck(ctx, gameID, playerID)
		if errors.Is(err, store.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, storeErr(err)
		}
		penalty = append(penalty, *card)
	}

	missing := game_constants.UNO_PENALTY_CARDS - len(penalty)
	if missing == 0 || !s.synthesizePenalty {
		return penalty, nil
	}
	synthesized := make([]*models.Card, missing)
	for i := range synthesized {
		face := s.randomCard()
		owner := playerID
		synthesized[i] = &models.Card{
			ID:       uuid.NewString(),
			GameID:   gameID,
			Color:    string(face.Color),
			Value:    string(face.Value),
			PlayerID: &owner,
		}
	}
	if err := tx.CreateCards(ctx, synthesized); err != nil {
		return nil, err
	}
	for _, c := range synthesized {
		penalty = append(penalty, *c)
	}
	return penalty, nil
}
