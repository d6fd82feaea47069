package controllers

import (
	"Uno/services/gameplay"
	"Uno/services/uno"
	"net/http"

	"github.com/gin-gonic/gin"
)

type createScoreRequest struct {
	PlayerID  string `json:"playerId"`
	GameID    string `json:"gameId"`
	BaseScore *int   `json:"baseScore"`
	Bonus     int    `json:"bonus"`
}

// @Summary Scores of a game by player name
// @Tags scores
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} gameplay.GameScores
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /scores/ScoresPlayers/{game_id} [get]
func ScoresPlayers(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		scores, err := games.ScoresByGame(c.Request.Context(), c.Param("game_id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, scores)
	}
}

// @Summary Record a score
// @Tags scores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param score body createScoreRequest true "Score"
// @Success 201 {object} postgres.Score
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Router /scores [post]
// @Security ApiKeyAuth
func CreateScore(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createScoreRequest
		if !bindJSON(c, &req, "All fields are required") {
			return
		}
		score, err := games.CreateScore(c.Request.Context(), req.PlayerID, req.GameID, req.BaseScore, req.Bonus)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, score)
	}
}

// @Summary List scores
// @Tags scores
// @Produce json
// @Success 200 {array} postgres.Score
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /scores [get]
func ListScores(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		scores, err := games.ListScores(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, scores)
	}
}

// @Summary Get a score
// @Tags scores
// @Produce json
// @Param id path string true "Score ID"
// @Success 200 {object} postgres.Score
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /scores/{id} [get]
func GetScore(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		score, err := games.GetScore(c.Request.Context(), c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, score)
	}
}

// @Summary Update a score
// @Tags scores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Score ID"
// @Param score body object{score=integer} true "New value"
// @Success 200 {object} object{message=string,updatedScore=postgres.Score}
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /scores/{id} [put]
// @Security ApiKeyAuth
func UpdateScore(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Score *int `json:"score"`
		}
		if !bindJSON(c, &req, "Invalid request body") {
			return
		}
		if req.Score == nil {
			_ = c.Error(uno.ValidationError("The score is required"))
			return
		}
		score, err := games.UpdateScore(c.Request.Context(), c.Param("id"), *req.Score)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Score updated successfully", "updatedScore": score})
	}
}

// @Summary Delete a score
// @Tags scores
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Score ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /scores/{id} [delete]
// @Security ApiKeyAuth
func DeleteScore(games *gameplay.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := games.DeleteScore(c.Request.Context(), c.Param("id")); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Score deleted successfully"})
	}
}
