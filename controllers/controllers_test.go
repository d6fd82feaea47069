package controllers

import (
	"Uno/middleware"
	models "Uno/models/postgres"
	"Uno/services/gameplay"
	"Uno/services/store/memstore"
	"Uno/utils"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asUser stands in for AuthRequired: the caller id comes from X-User
func asUser(c *gin.Context) {
	if id := c.GetHeader("X-User"); id != "" {
		c.Set(middleware.UserIDKey, id)
	}
	c.Next()
}

type fixture struct {
	engine *gin.Engine
	store  *memstore.Store
	games  *gameplay.Service
}

func newFixture(t *testing.T, names ...string) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := memstore.New()
	for _, name := range names {
		require.NoError(t, st.CreateUser(context.Background(), &models.User{
			ID: name, Name: name, Age: 30, Email: name + "@uno.test", PasswordHash: "x",
		}))
	}
	games := gameplay.New(st)

	r := gin.New()
	r.Use(utils.ErrorHandler(), asUser)
	r.POST("/games", CreateGame(games))
	r.POST("/games/:gameId/join", JoinGame(games, NopNotifier{}))
	r.PUT("/GameStatus/:gameId/ready", SetReady(games))
	r.GET("/games/:gameId/players", GamePlayers(games))
	r.DELETE("/games/:gameId", DeleteGame(games))
	r.POST("/cards", CreateCard(games))
	r.GET("/cards/:id", GetCard(games))
	r.POST("/scores", CreateScore(games))
	r.GET("/scores", ListScores(games))
	r.GET("/scores/:id", GetScore(games))
	r.PUT("/scores/:id", UpdateScore(games))
	r.DELETE("/scores/:id", DeleteScore(games))
	return &fixture{engine: r, store: st, games: games}
}

func (f *fixture) call(t *testing.T, method, path, user string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User", user)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	out := map[string]interface{}{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestCreateGameNeedsUser(t *testing.T) {
	f := newFixture(t, "alice")

	code, body := f.call(t, http.MethodPost, "/games", "", gin.H{"title": "t", "maxPlayers": 2})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Access denied. No token provided.", body["message"])

	code, _ = f.call(t, http.MethodPost, "/games", "alice", gin.H{"title": "t", "maxPlayers": 1})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = f.call(t, http.MethodPost, "/games", "alice", gin.H{"title": "t", "maxPlayers": 2})
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "alice", body["creator"])
}

func TestReadyAndPlayers(t *testing.T) {
	f := newFixture(t, "alice", "bob")
	_, game := f.call(t, http.MethodPost, "/games", "alice", gin.H{"title": "t", "maxPlayers": 2})
	gameID := game["id"].(string)

	code, body := f.call(t, http.MethodPut, "/GameStatus/"+gameID+"/ready", "bob", gin.H{"ready": true})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "You are not in this game", body["message"])

	f.call(t, http.MethodPost, "/games/"+gameID+"/join", "bob", nil)
	code, _ = f.call(t, http.MethodPut, "/GameStatus/"+gameID+"/ready", "bob", gin.H{})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = f.call(t, http.MethodPut, "/GameStatus/"+gameID+"/ready", "bob", gin.H{"ready": true})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["playerState"].(map[string]interface{})["ready"])

	code, body = f.call(t, http.MethodGet, "/games/"+gameID+"/players", "", nil)
	require.Equal(t, http.StatusOK, code)
	players := body["players"].([]interface{})
	require.Len(t, players, 1)
	assert.Equal(t, "bob", players[0].(map[string]interface{})["name"])

	code, _ = f.call(t, http.MethodDelete, "/games/"+gameID, "bob", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = f.call(t, http.MethodDelete, "/games/"+gameID, "alice", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestCardAdmin(t *testing.T) {
	f := newFixture(t, "alice")
	_, game := f.call(t, http.MethodPost, "/games", "alice", gin.H{"title": "t", "maxPlayers": 2})

	code, body := f.call(t, http.MethodPost, "/cards", "alice", gin.H{"gameId": game["id"], "color": "purple", "value": "5"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid card color: purple", body["message"])

	code, card := f.call(t, http.MethodPost, "/cards", "alice", gin.H{"gameId": game["id"], "color": "red", "value": "skip"})
	require.Equal(t, http.StatusCreated, code)

	code, body = f.call(t, http.MethodGet, "/cards/"+card["id"].(string), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "skip", body["value"])

	code, body = f.call(t, http.MethodGet, "/cards/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Card not found", body["message"])
}

func TestScoreCRUD(t *testing.T) {
	f := newFixture(t, "alice")

	code, body := f.call(t, http.MethodGet, "/scores", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "No scores found", body["message"])

	code, _ = f.call(t, http.MethodPost, "/scores", "alice", gin.H{"playerId": "alice", "gameId": "g"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, score := f.call(t, http.MethodPost, "/scores", "alice", gin.H{"playerId": "alice", "gameId": "g", "baseScore": 7, "bonus": 3})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(10), score["score"])
	id := score["id"].(string)

	code, body = f.call(t, http.MethodPut, "/scores/"+id, "alice", gin.H{"score": -1})
	assert.Equal(t, http.StatusBadRequest, code)
	code, body = f.call(t, http.MethodPut, "/scores/"+id, "alice", gin.H{"score": 4})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(4), body["updatedScore"].(map[string]interface{})["score"])

	code, body = f.call(t, http.MethodGet, "/scores/"+id, "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(4), body["score"])

	code, _ = f.call(t, http.MethodDelete, "/scores/"+id, "alice", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = f.call(t, http.MethodDelete, "/scores/"+id, "alice", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
