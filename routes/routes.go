package routes

import (
	game_constants "Uno/constants/game"
	"Uno/controllers"
	"Uno/middleware"
	"Uno/services/auth"
	"Uno/services/gameplay"
	"Uno/services/store"
	"Uno/services/users"
	utils "Uno/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the services the route table is wired to
type Dependencies struct {
	Store    store.Store
	Users    *users.Service
	Auth     *auth.Service
	Games    *gameplay.Service
	Cache    middleware.ResponseCache
	Notifier controllers.Notifier
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	if deps.Notifier == nil {
		deps.Notifier = controllers.NopNotifier{}
	}
	if deps.Cache == nil {
		deps.Cache = middleware.NewMemoryCache(50, game_constants.RESPONSE_CACHE_TTL)
	}
	authRequired := middleware.AuthRequired(deps.Auth)
	cached := middleware.CacheResponses(deps.Cache, game_constants.RESPONSE_CACHE_TTL)

	// utils global; tracking must see the status the error handler writes
	router.Use(utils.Logger(), middleware.Tracking(deps.Store), utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/users", controllers.Register(deps.Users))

	api.POST("/auth", controllers.Login(deps.Users, deps.Auth))

	authentication := api.Group("/", authRequired)
	{
		authentication.POST("/logout", controllers.Logout(deps.Auth))

		authentication.GET("/profile", controllers.Profile(deps.Users))

		authentication.GET("/users", controllers.ListUsers(deps.Users))
		authentication.GET("/users/:id", controllers.GetUser(deps.Users))
		authentication.PUT("/users/:id", controllers.UpdateUser(deps.Users))
		authentication.PATCH("/users/:id", controllers.UpdateUser(deps.Users))
		authentication.DELETE("/users/:id", controllers.DeleteUser(deps.Users))

		authentication.PUT("/GameStatus/:gameId/ready", controllers.SetReady(deps.Games))
	}

	games := api.Group("/games")
	{
		games.GET("", controllers.ListGames(deps.Games))
		games.GET("/:gameId", controllers.GetGame(deps.Games))
		games.GET("/:gameId/status", controllers.GameStatus(deps.Games))
		games.GET("/:gameId/players", controllers.GamePlayers(deps.Games))
		games.GET("/:gameId/current-player", controllers.CurrentPlayer(deps.Games))

		lobby := games.Group("", authRequired)
		lobby.POST("", controllers.CreateGame(deps.Games))
		lobby.DELETE("/:gameId", controllers.DeleteGame(deps.Games))
		lobby.POST("/:gameId/join", controllers.JoinGame(deps.Games, deps.Notifier))
		lobby.POST("/:gameId/leave", controllers.LeaveGame(deps.Games, deps.Notifier))
		lobby.POST("/start", controllers.StartGame(deps.Games, deps.Notifier))
		lobby.POST("/end", controllers.EndGame(deps.Games, deps.Notifier))
	}

	cards := api.Group("/cards")
	{
		cards.GET("/top/:gameId", controllers.TopCard(deps.Games))

		play := cards.Group("", authRequired)
		play.PUT("/play", controllers.PlayCard(deps.Games, deps.Notifier))
		play.PUT("/draw", controllers.DrawCard(deps.Games, deps.Notifier))
		play.PUT("/declare-uno", controllers.DeclareUno(deps.Games, deps.Notifier))
		play.POST("/challenge-uno", controllers.ChallengeUno(deps.Games, deps.Notifier))
		play.GET("/hand", controllers.Hand(deps.Games))

		play.POST("", controllers.CreateCard(deps.Games))
		play.GET("", controllers.ListCards(deps.Games))
		play.GET("/:id", controllers.GetCard(deps.Games))
	}

	scores := api.Group("/scores")
	{
		// admin writes below change these rows, so only the per-game view is cached
		scores.GET("/ScoresPlayers/:game_id", cached, controllers.ScoresPlayers(deps.Games))
		scores.GET("", controllers.ListScores(deps.Games))
		scores.GET("/:id", controllers.GetScore(deps.Games))

		admin := scores.Group("", authRequired)
		admin.POST("", controllers.CreateScore(deps.Games))
		admin.PUT("/:id", controllers.UpdateScore(deps.Games))
		admin.PATCH("/:id", controllers.UpdateScore(deps.Games))
		admin.DELETE("/:id", controllers.DeleteScore(deps.Games))
	}

	api.GET("/gameHistory/games/:gameId/history", controllers.GameHistory(deps.Games))

	stats := api.Group("/stats", cached)
	{
		stats.GET("/requests", controllers.RequestStats(deps.Store))
		stats.GET("/response-times", controllers.ResponseTimes(deps.Store))
		stats.GET("/status-codes", controllers.StatusCodes(deps.Store))
		stats.GET("/popular-endpoints", controllers.PopularEndpoints(deps.Store))
	}
}
