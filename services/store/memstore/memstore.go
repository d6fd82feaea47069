// Package memstore keeps everything in process memory behind one mutex.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	models "Uno/models/postgres"
	"Uno/services/store"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type data struct {
	users    map[string]models.User
	games    map[string]models.Game
	states   map[stateKey]models.PlayerGameState
	cards    map[string]models.Card
	scores   map[string]models.Score
	history  []models.GameHistory
	tracking []models.Tracking
	// auto-increment counters
	historySeq  uint
	trackingSeq uint
}

type stateKey struct {
	gameID string
	userID string
}

func newData() *data {
	return &data{
		users:  map[string]models.User{},
		games:  map[string]models.Game{},
		states: map[stateKey]models.PlayerGameState{},
		cards:  map[string]models.Card{},
		scores: map[string]models.Score{},
	}
}

func (d *data) clone() *data {
	c := newData()
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.games {
		c.games[k] = cloneGame(v)
	}
	for k, v := range d.states {
		c.states[k] = v
	}
	for k, v := range d.cards {
		c.cards[k] = cloneCard(v)
	}
	for k, v := range d.scores {
		c.scores[k] = v
	}
	c.history = append([]models.GameHistory(nil), d.history...)
	for _, t := range d.tracking {
		c.tracking = append(c.tracking, cloneTracking(t))
	}
	c.historySeq = d.historySeq
	c.trackingSeq = d.trackingSeq
	return c
}

func cloneGame(g models.Game) models.Game {
	g.Players = append(datatypes.JSONSlice[string]{}, g.Players...)
	status := make(map[string]bool, len(g.UnoStatus.Data()))
	for k, v := range g.UnoStatus.Data() {
		status[k] = v
	}
	g.UnoStatus = datatypes.NewJSONType(status)
	if g.WinnerID != nil {
		w := *g.WinnerID
		g.WinnerID = &w
	}
	return g
}

func cloneCard(c models.Card) models.Card {
	if c.PlayerID != nil {
		p := *c.PlayerID
		c.PlayerID = &p
	}
	return c
}

func cloneTracking(t models.Tracking) models.Tracking {
	t.ResponseTimes = append(datatypes.JSONSlice[int64]{}, t.ResponseTimes...)
	if t.UserID != nil {
		u := *t.UserID
		t.UserID = &u
	}
	return t
}

// Store implements store.Store. The zero value is not usable, call New.
type Store struct {
	mu   *sync.Mutex
	d    *data
	inTx bool
	now  func() time.Time
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{mu: &sync.Mutex{}, d: newData(), now: time.Now}
}

// lock is a no-op inside Atomic, which already holds the mutex.
func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) Atomic(ctx context.Context, fn func(tx store.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.d.clone()
	tx := &Store{mu: s.mu, d: s.d, inTx: true, now: s.now}
	if err := fn(tx); err != nil {
		*s.d = *snapshot
		return err
	}
	return nil
}

// Users

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	defer s.lock()()
	if _, ok := s.d.users[user.ID]; ok && user.ID != "" {
		return store.ErrDuplicate
	}
	for _, u := range s.d.users {
		if u.Email == user.Email || u.Name == user.Name {
			return store.ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = s.now()
	user.UpdatedAt = user.CreatedAt
	s.d.users[user.ID] = *user
	return nil
}

func (s *Store) FindUser(ctx context.Context, id string) (*models.User, error) {
	defer s.lock()()
	u, ok := s.d.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	defer s.lock()()
	for _, u := range s.d.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) FindUserByEmailOrName(ctx context.Context, email, name string) (*models.User, error) {
	defer s.lock()()
	for _, u := range s.sortedUsers() {
		if u.Email == email || u.Name == name {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	defer s.lock()()
	return s.sortedUsers(), nil
}

func (s *Store) ListUsersByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	defer s.lock()()
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	users := []models.User{}
	for _, u := range s.sortedUsers() {
		if wanted[u.ID] {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *Store) sortedUsers() []models.User {
	users := make([]models.User, 0, len(s.d.users))
	for _, u := range s.d.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		}
		return users[i].ID < users[j].ID
	})
	return users
}

func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	defer s.lock()()
	if _, ok := s.d.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	for id, u := range s.d.users {
		if id != user.ID && (u.Email == user.Email || u.Name == user.Name) {
			return store.ErrDuplicate
		}
	}
	user.UpdatedAt = s.now()
	s.d.users[user.ID] = *user
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	defer s.lock()()
	if _, ok := s.d.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.users, id)
	return nil
}

// Games

func (s *Store) CreateGame(ctx context.Context, game *models.Game) error {
	defer s.lock()()
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	if _, ok := s.d.games[game.ID]; ok {
		return store.ErrDuplicate
	}
	game.CreatedAt = s.now()
	game.UpdatedAt = game.CreatedAt
	s.d.games[game.ID] = cloneGame(*game)
	return nil
}

func (s *Store) FindGame(ctx context.Context, id string) (*models.Game, error) {
	defer s.lock()()
	g, ok := s.d.games[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	g = cloneGame(g)
	return &g, nil
}

func (s *Store) ListGames(ctx context.Context) ([]models.Game, error) {
	defer s.lock()()
	games := make([]models.Game, 0, len(s.d.games))
	for _, g := range s.d.games {
		games = append(games, cloneGame(g))
	}
	sort.Slice(games, func(i, j int) bool {
		if !games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].CreatedAt.Before(games[j].CreatedAt)
		}
		return games[i].ID < games[j].ID
	})
	return games, nil
}

func (s *Store) UpdateGame(ctx context.Context, game *models.Game, expectedVersion int) error {
	defer s.lock()()
	stored, ok := s.d.games[game.ID]
	if !ok || stored.Version != expectedVersion {
		return store.ErrStaleVersion
	}
	game.Version = expectedVersion + 1
	game.UpdatedAt = s.now()
	game.CreatedAt = stored.CreatedAt
	s.d.games[game.ID] = cloneGame(*game)
	return nil
}

func (s *Store) DeleteGame(ctx context.Context, id string) error {
	defer s.lock()()
	if _, ok := s.d.games[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.games, id)
	for k := range s.d.states {
		if k.gameID == id {
			delete(s.d.states, k)
		}
	}
	for k, c := range s.d.cards {
		if c.GameID == id {
			delete(s.d.cards, k)
		}
	}
	return nil
}

func (s *Store) SavePlayerState(ctx context.Context, state *models.PlayerGameState) error {
	defer s.lock()()
	key := stateKey{state.GameID, state.UserID}
	now := s.now()
	if existing, ok := s.d.states[key]; ok {
		state.CreatedAt = existing.CreatedAt
	} else {
		state.CreatedAt = now
	}
	state.UpdatedAt = now
	s.d.states[key] = *state
	return nil
}

func (s *Store) FindPlayerState(ctx context.Context, gameID, userID string) (*models.PlayerGameState, error) {
	defer s.lock()()
	st, ok := s.d.states[stateKey{gameID, userID}]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &st, nil
}

func (s *Store) ListPlayerStates(ctx context.Context, gameID string) ([]models.PlayerGameState, error) {
	defer s.lock()()
	states := []models.PlayerGameState{}
	for k, st := range s.d.states {
		if k.gameID == gameID {
			states = append(states, st)
		}
	}
	sort.Slice(states, func(i, j int) bool {
		if !states[i].CreatedAt.Equal(states[j].CreatedAt) {
			return states[i].CreatedAt.Before(states[j].CreatedAt)
		}
		return states[i].UserID < states[j].UserID
	})
	return states, nil
}

func (s *Store) DeletePlayerState(ctx context.Context, gameID, userID string) error {
	defer s.lock()()
	key := stateKey{gameID, userID}
	if _, ok := s.d.states[key]; !ok {
		return store.ErrNotFound
	}
	delete(s.d.states, key)
	return nil
}
