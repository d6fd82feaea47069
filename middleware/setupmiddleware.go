package middleware

import (
	"Uno/config"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "unosession"

func SetUpMiddleware(r *gin.Engine, settings config.Settings) {
	store := cookie.NewStore([]byte(settings.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(time.Hour / time.Second),
		Secure:   settings.Prod,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
