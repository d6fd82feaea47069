package controllers

import (
	"Uno/services/gameplay"
	"net/http"

	"github.com/gin-gonic/gin"
)

type createGameRequest struct {
	Title      string `json:"title"`
	Status     string `json:"status"`
	MaxPlayers int    `json:"maxPlayers"`
}

type gameIDRequest struct {
	GameID string `json:"game_id"`
}

// @Summary Create a game
// @Description Opens a pending game owned by the caller. The creator still has to join it.
// @Tags games
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param game body createGameRequest true "Game settings"
// @Success 201 {object} postgres.Game
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Router /games [post]
// @Security ApiKeyAuth
func CreateGame(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		var req createGameRequest
		if !bindJSON(c, &req, "Missing required parameters") {
			return
		}

		game, err := games.CreateGame(c.Request.Context(), userID, req.Title, req.MaxPlayers)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, game)
	}
}

// @Summary List games
// @Tags games
// @Produce json
// @Success 200 {array} postgres.Game
// @Router /games [get]
func ListGames(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := games.ListGames(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

// @Summary Get a game
// @Tags games
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} postgres.Game
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /games/{gameId} [get]
func GetGame(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		game, err := games.GetGame(c.Request.Context(), c.Param("gameId"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, game)
	}
}

// @Summary Delete a game
// @Description Only the creator may delete a game. Its cards and seats go with it.
// @Tags games
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param gameId path string true "Game ID"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /games/{gameId} [delete]
// @Security ApiKeyAuth
func DeleteGame(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		if err := games.DeleteGame(c.Request.Context(), c.Param("gameId"), userID); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
	}
}

// @Summary Join a game
// @Tags games
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param gameId path string true "Game ID"
// @Success 200 {object} postgres.Game
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Failure 409 {object} object{error=bool,status=integer,message=string}
// @Router /games/{gameId}/join [post]
// @Security ApiKeyAuth
func JoinGame(games *gameplay.Service, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		gameID := c.Param("gameId")
		game, err := games.JoinGame(c.Request.Context(), gameID, userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		notifier.Notify(gameID, EventPlayerJoined, gin.H{"gameId": gameID, "playerId": userID, "players": game.Players})
		c.JSON(http.StatusOK, game)
	}
}

// @Summary Leave a game
// @Tags games
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param gameId path string true "Game ID"
// @Success 200 {object} postgres.Game
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Failure 409 {object} object{error=bool,status=integer,message=string}
// @Router /games/{gameId}/leave [post]
// @Security ApiKeyAuth
func LeaveGame(games *gameplay.Service, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		gameID := c.Param("gameId")
		game, err := games.LeaveGame(c.Request.Context(), gameID, userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		notifier.Notify(gameID, EventPlayerLeft, gin.H{"gameId": gameID, "playerId": userID, "players": game.Players})
		c.JSON(http.StatusOK, game)
	}
}

// @Summary Start a game
// @Description Deals two cards to every player and flips the first discard. Creator only.
// @Tags games
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param game body gameIDRequest true "Game to start"
// @Success 200 {object} gameplay.StartResult
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 401 {object} object{error=bool,status=integer,message=string}
// @Failure 409 {object} object{error=bool,status=integer,message=string}
// @Router /games/start [post]
// @Security ApiKeyAuth
func StartGame(games *gameplay.Service, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		var req gameIDRequest
		if !bindJSON(c, &req, "Missing required parameters") {
			return
		}
		result, err := games.StartGame(c.Request.Context(), req.GameID, userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		notifier.Notify(req.GameID, EventGameStarted, gin.H{
			"gameId":    req.GameID,
			"firstCard": result.FirstCard,
			"players":   result.Game.Players,
		})
		c.JSON(http.StatusOK, result)
	}
}

// @Summary End a game
// @Tags games
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param game body gameIDRequest true "Game to end"
// @Success 200 {object} object{message=string,game=postgres.Game}
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 401 {object} object{error=bool,status=integer,message=string}
// @Router /games/end [post]
// @Security ApiKeyAuth
func EndGame(games *gameplay.Service, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		var req gameIDRequest
		if !bindJSON(c, &req, "Missing required parameters") {
			return
		}
		game, err := games.EndGame(c.Request.Context(), req.GameID, userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		notifier.Notify(req.GameID, EventGameFinished, gin.H{"gameId": req.GameID, "winner": game.WinnerID})
		c.JSON(http.StatusOK, gin.H{"message": "Game ended successfully", "game": game})
	}
}

// @Summary Get the status of a game
// @Tags games
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} object{gameId=string,status=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /games/{gameId}/status [get]
func GameStatus(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID := c.Param("gameId")
		status, err := games.GameStatus(c.Request.Context(), gameID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"gameId": gameID, "status": status})
	}
}

// @Summary List the players of a game in seating order
// @Tags games
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} object{gameId=string,players=[]gameplay.PlayerRef}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /games/{gameId}/players [get]
func GamePlayers(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID := c.Param("gameId")
		players, err := games.GamePlayers(c.Request.Context(), gameID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"gameId": gameID, "players": players})
	}
}

// @Summary Get the player whose turn it is
// @Tags games
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} object{gameId=string,currentPlayer=gameplay.PlayerRef}
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /games/{gameId}/current-player [get]
func CurrentPlayer(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID := c.Param("gameId")
		player, err := games.CurrentPlayer(c.Request.Context(), gameID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"gameId": gameID, "currentPlayer": player})
	}
}

// @Summary Mark the caller ready or not ready
// @Tags games
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param gameId path string true "Game ID"
// @Param state body object{ready=bool} true "Ready flag"
// @Success 200 {object} object{message=string,playerState=postgres.PlayerGameState}
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Failure 409 {object} object{error=bool,status=integer,message=string}
// @Router /GameStatus/{gameId}/ready [put]
// @Security ApiKeyAuth
func SetReady(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		var req struct {
			Ready *bool `json:"ready"`
		}
		if !bindJSON(c, &req, "Missing required parameters") {
			return
		}
		if req.Ready == nil {
			_ = c.Error(errMissingParams)
			return
		}
		state, err := games.SetReady(c.Request.Context(), c.Param("gameId"), userID, *req.Ready)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "State updated successfully", "playerState": state})
	}
}
