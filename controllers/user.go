package controllers

import (
	"Uno/middleware"
	"Uno/services/auth"
	"Uno/services/users"
	"Uno/utils/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Register a new user
// @Description Creates a user account
// @Tags users
// @Accept json
// @Produce json
// @Param user body users.Registration true "New user"
// @Success 201 {object} object{message=string,user=postgres.User}
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Router /users [post]
func Register(userService *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var registration users.Registration
		if !bindJSON(c, &registration, "All fields are required") {
			return
		}

		user, err := userService.Register(c.Request.Context(), registration)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
	}
}

// @Summary Log in
// @Description Checks the credentials and returns a bearer token, also kept in the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{message=string,token=string}
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /auth [post]
func Login(userService *users.Service, authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if !bindJSON(c, &credentials, "Email and password are required") {
			return
		}

		user, err := userService.Authenticate(c.Request.Context(), credentials.Email, credentials.Password)
		if err != nil {
			_ = c.Error(err)
			return
		}
		token, err := authService.IssueToken(user)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if err := middleware.SaveSessionToken(c, token); err != nil {
			logger.Errorf("[LOGIN-ERROR] Could not save session: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
	}
}

// @Summary Log out
// @Description Revokes the current token and clears the session
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=bool,status=integer,message=string}
// @Router /logout [post]
// @Security ApiKeyAuth
func Logout(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authService.Revoke(c.Request.Context(), c.GetString(middleware.TokenKey)); err != nil {
			_ = c.Error(err)
			return
		}
		if err := middleware.ClearSessionToken(c); err != nil {
			logger.Errorf("[LOGOUT-ERROR] Could not clear session: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// @Summary Get the profile of the logged in user
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{username=string,email=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /profile [get]
// @Security ApiKeyAuth
func Profile(userService *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := authUser(c)
		if !ok {
			return
		}
		user, err := userService.Get(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": user.Name, "email": user.Email})
	}
}

// @Summary List users
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {array} postgres.User
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /users [get]
// @Security ApiKeyAuth
func ListUsers(userService *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := userService.List(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

// @Summary Get a user
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "User ID"
// @Success 200 {object} postgres.User
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /users/{id} [get]
// @Security ApiKeyAuth
func GetUser(userService *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userService.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// @Summary Update a user
// @Description Only the fields present in the body change
// @Tags users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "User ID"
// @Param changes body users.Changes true "Fields to change"
// @Success 200 {object} object{message=string,user=postgres.User}
// @Failure 400 {object} object{error=bool,status=integer,message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /users/{id} [put]
// @Security ApiKeyAuth
func UpdateUser(userService *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var changes users.Changes
		if !bindJSON(c, &changes, "Invalid request body") {
			return
		}
		user, err := userService.Update(c.Request.Context(), c.Param("id"), changes)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
	}
}

// @Summary Delete a user
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=bool,status=integer,message=string}
// @Router /users/{id} [delete]
// @Security ApiKeyAuth
func DeleteUser(userService *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
