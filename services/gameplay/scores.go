package gameplay

import (
	"context"
	"errors"

	models "Uno/models/postgres"
	"Uno/services/store"
	"Uno/services/uno"

	"github.com/google/uuid"
)

type GameScores struct {
	GameID string         `json:"gameId"`
	Scores map[string]int `json:"scores"`
}

// CalculateFinalScores awards placement points for a finished round and
// persists one Score per awarded player.
func (s *Service) CalculateFinalScores(ctx context.Context, gameID, winnerID string) (map[string]int, error) {
	if gameID == "" {
		return nil, uno.ValidationError("Game not found.")
	}
	var scores map[string]int
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		game, err := tx.FindGame(ctx, gameID)
		if errors.Is(err, store.ErrNotFound) {
			return uno.ValidationError("Game not found.")
		}
		if err != nil {
			return err
		}
		scores, err = s.awardFinalScores(ctx, tx, game, winnerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (s *Service) awardFinalScores(ctx context.Context, tx store.Store, game *models.Game, winnerID string) (map[string]int, error) {
	if winnerID == "" {
		return nil, uno.ValidationError("A winner is required.")
	}
	if len(game.Players) == 0 {
		return nil, uno.ValidationError("The game has no players.")
	}
	scores := uno.FinalStandings(game.Players, winnerID)
	for _, playerID := range uno.RankedPlayers(game.Players, winnerID) {
		err := tx.CreateScore(ctx, &models.Score{
			ID:       uuid.NewString(),
			PlayerID: playerID,
			GameID:   game.ID,
			Score:    scores[playerID],
		})
		if err != nil {
			return nil, err
		}
	}
	return scores, nil
}

// ScoresByGame reports a game's scores keyed by player name.
func (s *Service) ScoresByGame(ctx context.Context, gameID string) (*GameScores, error) {
	if err := required(gameID); err != nil {
		return nil, err
	}
	if _, err := s.findGame(ctx, s.store, gameID); err != nil {
		return nil, err
	}
	rows, err := s.store.ListScoresByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, uno.ValidationError("No scores registered")
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.PlayerID)
	}
	refs, err := s.playerRefs(ctx, ids)
	if err != nil {
		return nil, err
	}
	result := &GameScores{GameID: gameID, Scores: make(map[string]int, len(rows))}
	for i, r := range rows {
		result.Scores[refs[i].Name] += r.Score
	}
	return result, nil
}

// CreateScore records baseScore plus an optional bonus.
func (s *Service) CreateScore(ctx context.Context, playerID, gameID string, baseScore *int, bonus int) (*models.Score, error) {
	if playerID == "" || gameID == "" || baseScore == nil {
		return nil, uno.ValidationError("All fields are required")
	}
	if *baseScore < 0 || bonus < 0 {
		return nil, uno.ValidationError("The score must be a positive number.")
	}
	score := &models.Score{
		ID:       uuid.NewString(),
		PlayerID: playerID,
		GameID:   gameID,
		Score:    *baseScore + bonus,
	}
	if err := s.store.CreateScore(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *Service) ListScores(ctx context.Context) ([]models.Score, error) {
	scores, err := s.store.ListScores(ctx)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, uno.NotFoundError("No scores found")
	}
	return scores, nil
}

func (s *Service) GetScore(ctx context.Context, id string) (*models.Score, error) {
	score, err := s.store.FindScore(ctx, id)
	if err != nil {
		return nil, notFound(err, "Score not found")
	}
	return score, nil
}

func (s *Service) UpdateScore(ctx context.Context, id string, value int) (*models.Score, error) {
	if value < 0 {
		return nil, uno.ValidationError("The score must be a positive number.")
	}
	var score *models.Score
	err := s.store.Atomic(ctx, func(tx store.Store) error {
		var err error
		if score, err = tx.FindScore(ctx, id); err != nil {
			return notFound(err, "Score not found")
		}
		score.Score = value
		return notFound(tx.SaveScore(ctx, score), "Score not found")
	})
	if err != nil {
		return nil, err
	}
	return score, nil
}

func (s *Service) DeleteScore(ctx context.Context, id string) error {
	return notFound(s.store.DeleteScore(ctx, id), "Score not found")
}
