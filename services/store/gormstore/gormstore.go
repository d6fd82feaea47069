// Package gormstore implements store.Store on PostgreSQL through GORM.
package gormstore

import (
	"context"
	"errors"

	models "Uno/models/postgres"
	"Uno/services/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New expects a *gorm.DB opened with TranslateError, see config/postgres.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Atomic(ctx context.Context, fn func(tx store.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrDuplicate
	}
	return err
}

// affected turns a zero-row conditional write into miss.
func affected(res *gorm.DB, miss error) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return miss
	}
	return nil
}

// Users

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *Store) FindUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) FindUserByEmailOrName(ctx context.Context, email, name string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ? OR name = ?", email, name).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&users).Error
	return users, translate(err)
}

func (s *Store) ListUsersByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("created_at ASC, id ASC").Find(&users).Error
	return users, translate(err)
}

func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"name":          user.Name,
		"age":           user.Age,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
	})
	return affected(res, store.ErrNotFound)
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	return affected(res, store.ErrNotFound)
}

// Games

func (s *Store) CreateGame(ctx context.Context, game *models.Game) error {
	return translate(s.db.WithContext(ctx).Create(game).Error)
}

func (s *Store) FindGame(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&game).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

func (s *Store) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&games).Error
	return games, translate(err)
}

func (s *Store) UpdateGame(ctx context.Context, game *models.Game, expectedVersion int) error {
	res := s.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ? AND version = ?", game.ID, expectedVersion).
		Updates(map[string]interface{}{
			"title":       game.Title,
			"status":      game.Status,
			"max_players": game.MaxPlayers,
			"players":     game.Players,
			"turn_index":  game.TurnIndex,
			"winner_id":   game.WinnerID,
			"uno_status":  game.UnoStatus,
			"discard_seq": game.DiscardSeq,
			"version":     expectedVersion + 1,
		})
	if err := affected(res, store.ErrStaleVersion); err != nil {
		return err
	}
	game.Version = expectedVersion + 1
	return nil
}

func (s *Store) DeleteGame(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.Card{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.PlayerGameState{}).Error; err != nil {
			return err
		}
		return affected(tx.Where("id = ?", id).Delete(&models.Game{}), store.ErrNotFound)
	})
}

func (s *Store) SavePlayerState(ctx context.Context, state *models.PlayerGameState) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"ready", "updated_at"}),
	}).Create(state).Error
	return translate(err)
}

func (s *Store) FindPlayerState(ctx context.Context, gameID, userID string) (*models.PlayerGameState, error) {
	var state models.PlayerGameState
	err := s.db.WithContext(ctx).Where("game_id = ? AND user_id = ?", gameID, userID).First(&state).Error
	if err != nil {
		return nil, translate(err)
	}
	return &state, nil
}

func (s *Store) ListPlayerStates(ctx context.Context, gameID string) ([]models.PlayerGameState, error) {
	var states []models.PlayerGameState
	err := s.db.WithContext(ctx).Where("game_id = ?", gameID).Order("created_at ASC, user_id ASC").Find(&states).Error
	return states, translate(err)
}

func (s *Store) DeletePlayerState(ctx context.Context, gameID, userID string) error {
	res := s.db.WithContext(ctx).Where("game_id = ? AND user_id = ?", gameID, userID).Delete(&models.PlayerGameState{})
	return affected(res, store.ErrNotFound)
}
