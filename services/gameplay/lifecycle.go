package gameplay

import (
	"context"
	"errors"

	game_constants "Uno/constants/game"
	models "Uno/models/postgres"
	"Uno/services/store"
	"Uno/services/uno"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StartResult struct {
	Message   string       `json:"message"`
	FirstCard *models.Card `json:"firstCard"`
	Game      *models.Game `json:"game"`
}

type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateGame opens a pending game. The creator is not seated automatically.
func (s *Service) CreateGame(ctx context.Context, creatorID, title string, maxPlayers int) (*models.Game, error) {
	if title == "" || maxPlayers == 0 || creatorID == "" {
		return nil, uno.ValidationError("All fields are required")
	}
	if maxPlayers < game_constants.MIN_PLAYERS {
		return nil, uno.ValidationError("maxPlayers must be at least %d", game_constants.MIN_PLAYERS)
	}

	var game *models.Game
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		if _, err := tx.FindUser(ctx, creatorID); err != nil {
			return notFound(err, "Player not found")
		}
		game = &models.Game{
			ID:         uuid.NewString(),
			Title:      title,
			Status:     game_constants.STATUS_PENDING,
			MaxPlayers: maxPlayers,
			Players:    datatypes.JSONSlice[string]{},
			CreatorID:  creatorID,
			UnoStatus:  datatypes.NewJSONType(map[string]bool{}),
		}
		if err := tx.CreateGame(ctx, game); err != nil {
			return err
		}
		return s.record(ctx, tx, game.ID, creatorID, "Created the game")
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *Service) GetGame(ctx context.Context, gameID string) (*models.Game, error) {
	if err := required(gameID); err != nil {
		return nil, err
	}
	return s.findGame(ctx, s.store, gameID)
}

func (s *Service) ListGames(ctx context.Context) ([]models.Game, error) {
	return s.store.ListGames(ctx)
}

// DeleteGame removes a game with its cards and seats. Only the creator may.
func (s *Service) DeleteGame(ctx context.Context, gameID, requesterID string) error {
	if err := required(gameID, requesterID); err != nil {
		return err
	}
	return s.store.Atomic(ctx, func(tx store.Store) error {
		game, err := s.findGame(ctx, tx, gameID)
		if err != nil {
			return err
		}
		if game.CreatorID != requesterID {
			return uno.UnauthorizedError("You do not have permission to delete this game")
		}
		return notFound(tx.DeleteGame(ctx, gameID), "Game not found.")
	})
}

func (s *Service) JoinGame(ctx context.Context, gameID, userID string) (*models.Game, error) {
	if err := required(gameID, userID); err != nil {
		return nil, err
	}
	var game *models.Game
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		var err error
		if game, err = s.findGame(ctx, tx, gameID); err != nil {
			return err
		}
		if _, err := tx.FindUser(ctx, userID); err != nil {
			return notFound(err, "Player not found")
		}
		if game.HasPlayer(userID) {
			return uno.ConflictError("You are already in this game")
		}
		if game.Status != game_constants.STATUS_PENDING {
			return uno.ConflictError("The game has already started")
		}
		if len(game.Players) >= game.MaxPlayers {
			return uno.ValidationError("The game is already full")
		}

		game.Players = append(game.Players, userID)
		if err := tx.SavePlayerState(ctx, &models.PlayerGameState{UserID: userID, GameID: gameID}); err != nil {
			return err
		}
		if err := s.record(ctx, tx, gameID, userID, "Joined the game"); err != nil {
			return err
		}
		return saveGame(ctx, tx, game)
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// LeaveGame gives the player's hand back to the deck and keeps the turn on
// whoever held it, unless the leaver did. A started game whose last player
// leaves is finished without a winner.
func (s *Service) LeaveGame(ctx context.Context, gameID, userID string) (*models.Game, error) {
	if err := required(gameID, userID); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(gameID); err != nil {
		return nil, uno.ValidationError("Invalid game ID: %s", gameID)
	}
	var game *models.Game
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		var err error
		if game, err = s.findGame(ctx, tx, gameID); err != nil {
			return err
		}
		seat := game.SeatOf(userID)
		if seat < 0 {
			return uno.ConflictError("You are not in this game")
		}

		game.ForgetPlayer(userID)
		if seat < game.TurnIndex {
			game.TurnIndex--
		}
		game.TurnIndex = uno.ClampTurn(game.TurnIndex, len(game.Players))
		// nobody left to hold the turn
		if game.Status == game_constants.STATUS_STARTED && len(game.Players) == 0 {
			game.Status = game_constants.STATUS_FINISHED
		}

		if err := tx.DeletePlayerState(ctx, gameID, userID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err := tx.ReturnHand(ctx, gameID, userID); err != nil {
			return err
		}
		if err := s.record(ctx, tx, gameID, userID, "Left the game"); err != nil {
			return err
		}
		return saveGame(ctx, tx, game)
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *Service) SetReady(ctx context.Context, gameID, userID string, ready bool) (*models.PlayerGameState, error) {
	if err := required(gameID, userID); err != nil {
		return nil, err
	}
	var state *models.PlayerGameState
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		game, err := s.findGame(ctx, tx, gameID)
		if err != nil {
			return err
		}
		if _, err := tx.FindUser(ctx, userID); err != nil {
			return notFound(err, "Player not found")
		}
		if !game.HasPlayer(userID) {
			return uno.ConflictError("You are not in this game")
		}
		state = &models.PlayerGameState{UserID: userID, GameID: gameID, Ready: ready}
		return tx.SavePlayerState(ctx, state)
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// StartGame deals the game. If no cards were loaded for it a fresh
// shuffled deck is minted first. The first deck card opens the discard
// pile, then every player gets CARDS_PER_PLAYER cards round-robin.
func (s *Service) StartGame(ctx context.Context, gameID, requesterID string) (*StartResult, error) {
	if err := required(gameID, requesterID); err != nil {
		return nil, err
	}
	var result *StartResult
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		game, err := s.findGame(ctx, tx, gameID)
		if err != nil {
			return err
		}
		if game.CreatorID != requesterID {
			return uno.UnauthorizedError("You do not have permission to start this game")
		}
		if game.Status != game_constants.STATUS_PENDING {
			return uno.ConflictError("The game has already started")
		}
		if err := s.checkReady(ctx, tx, game); err != nil {
			return err
		}

		deck, err := s.loadDeck(ctx, tx, game)
		if err != nil {
			return err
		}
		needed := 1 + len(game.Players)*game_constants.CARDS_PER_PLAYER
		if len(deck) < needed {
			return uno.ConflictError("There are not enough cards in the deck")
		}

		first := deck[0]
		game.DiscardSeq++
		if err := tx.FlipCard(ctx, first.ID, game.DiscardSeq); err != nil {
			return storeErr(err)
		}
		first.Discarded = true
		first.DiscardSeq = game.DiscardSeq

		for i, card := range deck[1:needed] {
			if err := tx.AssignCard(ctx, card.ID, game.Players[i%len(game.Players)]); err != nil {
				return storeErr(err)
			}
		}

		game.Status = game_constants.STATUS_STARTED
		game.TurnIndex = 0
		if err := s.record(ctx, tx, gameID, requesterID, "Started the game"); err != nil {
			return err
		}
		if err := saveGame(ctx, tx, game); err != nil {
			return err
		}
		result = &StartResult{Message: "Game started successfully", FirstCard: &first, Game: game}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) checkReady(ctx context.Context, tx store.Store, game *models.Game) error {
	states, err := tx.ListPlayerStates(ctx, game.ID)
	if err != nil {
		return err
	}
	if len(states) == 0 || len(game.Players) == 0 {
		return uno.ValidationError("There are no players in the game. The game cannot be started.")
	}
	for _, st := range states {
		if !st.Ready {
			return uno.ValidationError("Not all players are ready")
		}
	}
	return nil
}

// loadDeck returns the undealt cards, minting a deck when none were loaded.
func (s *Service) loadDeck(ctx context.Context, tx store.Store, game *models.Game) ([]models.Card, error) {
	existing, err := tx.ListCards(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return tx.ListDeck(ctx, game.ID)
	}

	faces := s.mintDeck()
	cards := make([]*models.Card, len(faces))
	for i, f := range faces {
		cards[i] = &models.Card{
			ID:       uuid.NewString(),
			GameID:   game.ID,
			Color:    string(f.Color),
			Value:    string(f.Value),
			Position: i,
		}
	}
	if err := tx.CreateCards(ctx, cards); err != nil {
		return nil, err
	}
	deck := make([]models.Card, len(cards))
	for i, c := range cards {
		deck[i] = *c
	}
	return deck, nil
}

// EndGame lets the creator close a game that is in progress.
func (s *Service) EndGame(ctx context.Context, gameID, requesterID string) (*models.Game, error) {
	if err := required(gameID, requesterID); err != nil {
		return nil, err
	}
	var game *models.Game
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		var err error
		if game, err = s.findGame(ctx, tx, gameID); err != nil {
			return err
		}
		if game.CreatorID != requesterID {
			return uno.UnauthorizedError("You do not have permission to end this game")
		}
		if game.Status != game_constants.STATUS_STARTED {
			return uno.ValidationError("The game is not in progress")
		}
		game.Status = game_constants.STATUS_FINISHED
		if err := s.record(ctx, tx, gameID, requesterID, "Ended the game"); err != nil {
			return err
		}
		return saveGame(ctx, tx, game)
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *Service) GameStatus(ctx context.Context, gameID string) (string, error) {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return "", err
	}
	return game.Status, nil
}

func (s *Service) GamePlayers(ctx context.Context, gameID string) ([]PlayerRef, error) {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return s.playerRefs(ctx, game.Players)
}

func (s *Service) CurrentPlayer(ctx context.Context, gameID string) (*PlayerRef, error) {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Status != game_constants.STATUS_STARTED {
		return nil, uno.ValidationError("The game is not in progress")
	}
	current := game.CurrentPlayerID()
	if current == "" {
		return nil, uno.ValidationError("There are no players in the game")
	}
	refs, err := s.playerRefs(ctx, []string{current})
	if err != nil {
		return nil, err
	}
	return &refs[0], nil
}

// playerRefs keeps ids order; unknown users fall back to their id.
func (s *Service) playerRefs(ctx context.Context, ids []string) ([]PlayerRef, error) {
	users, err := s.store.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	refs := make([]PlayerRef, 0, len(ids))
	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			name = id
		}
		refs = append(refs, PlayerRef{ID: id, Name: name})
	}
	return refs, nil
}

func (s *Service) History(ctx context.Context, gameID string) ([]models.GameHistory, error) {
	if err := required(gameID); err != nil {
		return nil, err
	}
	if _, err := s.findGame(ctx, s.store, gameID); err != nil {
		return nil, err
	}
	return s.store.ListHistory(ctx, gameID)
}
