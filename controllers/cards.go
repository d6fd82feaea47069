package controllers

import (
	"Uno/services/gameplay"
	"Uno/services/uno"
	"net/http"

	"github.com/gin-gonic/gin"
)

type playCardRequest struct {
	CardID string `json:"cardId"`
	GameID string `json:"gameId"`
}

type gameRequest struct {
	GameID string `json:"gameId"`
}

type challengeRequest struct {
	GameID             string `json:"gameId"`
	ChallengerID       string `json:"challengerId"`
	ChallengedPlayerID string `json:"challengedPlayerId"`
}

type createCardRequest struct {
	GameID string `json:"gameId"`
	Color  string `json:"color"`
	Value  string `json:"value"`
}

// @Summary Play a card
// @Description The card must match the top discard in color or value, or be wild
// @Tags cards
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param play body playCardRequest true "Card to play"
// @Success 200 {object} gameplay.PlayResult
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Failure 405 {object} object{error=bool,status=integer,message=string}
// @Failure 409 {object} object{error=bool,status=integer,message=string}
// @Router /cards/play [put]
// @Security ApiKeyAuth
func PlayCard(games *gameplay.Service, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		var req playCardRequest
		if !bindJSON(c, &req, "Missing required parameters") {
			return
		}

		result, err := games.PlayCard(c.Request.Context(), userID, req.GameID, req.CardID)
		if err != nil {
			_ = c.Error(err)
			return
		}

		notifier.Notify(req.GameID, EventCardPlayed, gin.H{
			"gameId":     req.GameID,
			"playerId":   userID,
			"card":       result.Card,
			"nextPlayer": result.NextPlayer,
		})
		if result.Winner != "" {
			notifier.Notify(req.GameID, EventGameFinished, gin.H{
				"gameId": req.GameID,
				"winner": result.Winner,
				"scores": result.Scores,
			})
		}
		c.JSON(http.StatusOK, result)
	}
}

// @Summary Draw a card
// @Tags cards
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param draw body gameRequest true "Game"
// @Success 200 {object} gameplay.DrawResult
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Failure 405 {object} object{error=bool,status=integer,message=string}
// @Failure 409 {object} object{error=bool,status=integer,message=string}
// @Router /cards/draw [put]
// @Security ApiKeyAuth
func DrawCard(games *gameplay.Service, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		var req gameRequest
		if !bindJSON(c, &req, "Missing required parameters") {
			return
		}

		result, err := games.DrawCard(c.Request.Context(), userID, req.GameID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		// the drawn face stays private to the drawer
		notifier.Notify(req.GameID, EventCardDrawn, gin.H{
			"gameId":     req.GameID,
			"playerId":   userID,
			"nextPlayer": result.NextPlayer,
		})
		c.JSON(http.StatusOK, result)
	}
}

// @Summary Declare UNO
// @Description Allowed only while holding exactly one card
// @Tags cards
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param declare body gameRequest true "Game"
// @Success 200 {object} gameplay.UnoResult
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /cards/declare-uno [put]
// @Security ApiKeyAuth
func DeclareUno(games *gameplay.Service, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		var req gameRequest
		if !bindJSON(c, &req, "Missing required parameters") {
			return
		}

		result, err := games.DeclareUno(c.Request.Context(), userID, req.GameID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		notifier.Notify(req.GameID, EventUnoDeclared, gin.H{"gameId": req.GameID, "playerId": userID})
		c.JSON(http.StatusOK, result)
	}
}

// @Summary Challenge a player who forgot to say UNO
// @Description The challenger is the caller. A successful challenge makes the challenged player draw two cards.
// @Tags cards
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param challenge body challengeRequest true "Challenge"
// @Success 200 {object} gameplay.ChallengeResult
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 401 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Failure 409 {object} object{error=bool,status=integer,message=string}
// @Router /cards/challenge-uno [post]
// @Security ApiKeyAuth
func ChallengeUno(games *gameplay.Service, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		var req challengeRequest
		if !bindJSON(c, &req, "Missing required parameters") {
			return
		}
		if req.ChallengerID != "" && req.ChallengerID != userID {
			_ = c.Error(uno.UnauthorizedError("You can only challenge in your own name."))
			return
		}

		result, err := games.ChallengeUno(c.Request.Context(), userID, req.ChallengedPlayerID, req.GameID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		notifier.Notify(req.GameID, EventUnoChallenged, gin.H{
			"gameId":             req.GameID,
			"challengerId":       userID,
			"challengedPlayerId": req.ChallengedPlayerID,
			"penaltyCards":       len(result.PenaltyCards),
		})
		c.JSON(http.StatusOK, result)
	}
}

// @Summary Get the caller's hand
// @Description Cards as "color value" strings. gameId narrows the hand to one game.
// @Tags cards
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param gameId query string false "Game ID"
// @Success 200 {array} string
// @Router /cards/hand [get]
// @Security ApiKeyAuth
func Hand(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authUser(c)
		if !ok {
			return
		}
		hand, err := games.Hand(c.Request.Context(), userID, c.Query("gameId"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, hand)
	}
}

// @Summary Get the top card of the discard pile
// @Tags cards
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} postgres.Card
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /cards/top/{gameId} [get]
func TopCard(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		card, err := games.TopCard(c.Request.Context(), c.Param("gameId"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, card)
	}
}

// @Summary Add a card to a game's deck
// @Tags cards
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param card body createCardRequest true "Card"
// @Success 201 {object} postgres.Card
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /cards [post]
// @Security ApiKeyAuth
func CreateCard(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCardRequest
		if !bindJSON(c, &req, "Missing required parameters") {
			return
		}
		card, err := games.CreateCard(c.Request.Context(), req.GameID, req.Color, req.Value)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, card)
	}
}

// @Summary Get a card
// @Tags cards
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Card ID"
// @Success 200 {object} postgres.Card
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /cards/{id} [get]
// @Security ApiKeyAuth
func GetCard(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		card, err := games.GetCard(c.Request.Context(), c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, card)
	}
}

// @Summary List the cards of a game
// @Tags cards
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param gameId query string true "Game ID"
// @Success 200 {array} postgres.Card
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /cards [get]
// @Security ApiKeyAuth
func ListCards(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cards, err := games.GameCards(c.Request.Context(), c.Query("gameId"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, cards)
	}
}
