package gameplay

import (
	"context"
	"errors"

	game_constants "Uno/constants/game"
	models "Uno/models/postgres"
	"Uno/services/store"
	"Uno/services/uno"
)

type PlayResult struct {
	Message    string         `json:"message"`
	Card       uno.Card       `json:"card"`
	NextPlayer string         `json:"nextPlayer,omitempty"`
	Winner     string         `json:"winner,omitempty"`
	Scores     map[string]int `json:"scores,omitempty"`
	Game       *models.Game   `json:"-"`
}

type DrawResult struct {
	Message    string       `json:"message"`
	DrawnCard  *models.Card `json:"drawnCard"`
	NextPlayer string       `json:"nextPlayer"`
	Game       *models.Game `json:"-"`
}

// turnOf loads a game the player may act in right now.
func (s *Service) turnOf(ctx context.Context, tx store.Store, gameID, playerID string) (*models.Game, error) {
	game, err := s.findGame(ctx, tx, gameID)
	if err != nil {
		return nil, err
	}
	switch game.Status {
	case game_constants.STATUS_FINISHED:
		return nil, uno.ConflictError("The game has already ended")
	case game_constants.STATUS_PENDING:
		return nil, uno.ConflictError("The game has not started yet")
	}
	if game.CurrentPlayerID() != playerID {
		return nil, uno.MethodNotAllowedError("It's not your turn.")
	}
	return game, nil
}

func (s *Service) PlayCard(ctx context.Context, playerID, gameID, cardID string) (*PlayResult, error) {
	if err := required(playerID, gameID, cardID); err != nil {
		return nil, err
	}
	var result *PlayResult
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		game, err := s.turnOf(ctx, tx, gameID, playerID)
		if err != nil {
			return err
		}

		card, err := tx.FindCard(ctx, cardID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && card.GameID != gameID) {
			return uno.NotFoundError("The card does not exist.")
		}
		if err != nil {
			return err
		}
		if !card.OwnedBy(playerID) {
			return uno.UnauthorizedError("This card does not belong to the player.")
		}

		top, err := s.topFace(ctx, tx, gameID)
		if err != nil {
			return err
		}
		face := card.Face()
		if !uno.CanPlayOn(face, top) {
			return uno.ValidationError("Invalid card. It must match in color or number.")
		}

		if err := s.record(ctx, tx, gameID, playerID, "Played "+face.String()); err != nil {
			return err
		}
		game.DiscardSeq++
		if err := tx.DiscardCard(ctx, card.ID, playerID, game.DiscardSeq); err != nil {
			return storeErr(err)
		}
		game.SetUnoDeclared(playerID, false)

		hand, err := tx.ListHand(ctx, gameID, playerID)
		if err != nil {
			return err
		}
		if len(hand) == 0 {
			scores, err := s.awardFinalScores(ctx, tx, game, playerID)
			if err != nil {
				return err
			}
			winner := playerID
			game.Status = game_constants.STATUS_FINISHED
			game.WinnerID = &winner
			if err := saveGame(ctx, tx, game); err != nil {
				return err
			}
			result = &PlayResult{
				Message: "¡" + playerID + " has won the game!",
				Card:    face,
				Winner:  playerID,
				Scores:  scores,
				Game:    game,
			}
			return nil
		}

		game.Players, game.TurnIndex = uno.NextTurn(game.Players, game.TurnIndex, face.Value)
		if err := saveGame(ctx, tx, game); err != nil {
			return err
		}
		message := "Card played successfully."
		if face.Value == uno.Reverse {
			message = "A Reverse card was played. The player order has been reversed."
		}
		result = &PlayResult{
			Message:    message,
			Card:       face,
			NextPlayer: game.CurrentPlayerID(),
			Game:       game,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) DrawCard(ctx context.Context, playerID, gameID string) (*DrawResult, error) {
	if err := required(playerID, gameID); err != nil {
		return nil, err
	}
	var result *DrawResult
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		game, err := s.turnOf(ctx, tx, gameID, playerID)
		if err != nil {
			return err
		}
		card, err := tx.DrawFromDeck(ctx, gameID, playerID)
		if err != nil {
			return notFound(storeErr(err), "There are no cards left in the deck.")
		}
		if err := s.record(ctx, tx, gameID, playerID, "Drew a card"); err != nil {
			return err
		}
		game.SetUnoDeclared(playerID, false)
		game.TurnIndex = uno.Advance(game.TurnIndex, 1, len(game.Players))
		if err := saveGame(ctx, tx, game); err != nil {
			return err
		}
		result = &DrawResult{
			Message:    "Card drawn. Next player's turn.",
			DrawnCard:  card,
			NextPlayer: game.CurrentPlayerID(),
			Game:       game,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// topFace is nil while the discard pile is empty.
func (s *Service) topFace(ctx context.Context, tx store.Store, gameID string) (*uno.Card, error) {
	top, err := tx.TopDiscard(ctx, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	face := top.Face()
	return &face, nil
}
