package socketio_utils

import (
	"Uno/services/auth"
	"Uno/utils/logger"
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

var (
	errNoAuthData = errors.New("Authentication failed: missing auth data")
	errNoToken    = errors.New("Authentication failed: missing authorization token")
)

// TokenFromAuth reads the JWT from the handshake auth payload. Both
// {"authorization": "Bearer <jwt>"} and {"token": "<jwt>"} are accepted.
func TokenFromAuth(authData interface{}) (string, error) {
	data, ok := authData.(map[string]interface{})
	if !ok {
		return "", errNoAuthData
	}
	if raw, ok := data["authorization"].(string); ok {
		raw = strings.TrimSpace(raw)
		if len(raw) > 7 && strings.EqualFold(raw[:7], "Bearer ") {
			raw = strings.TrimSpace(raw[7:])
		}
		if raw != "" {
			return raw, nil
		}
	}
	if raw, ok := data["token"].(string); ok && raw != "" {
		return raw, nil
	}
	return "", errNoToken
}

// Function that verifies a socket.io client connection using JWT authentication.
// Failures are reported to the client on the "error" event.
func VerifyUserConnection(client *socket.Socket, authService *auth.Service) (success bool, userID, email string) {
	token, err := TokenFromAuth(client.Handshake().Auth)
	if err != nil {
		logger.Warnf("[SOCKET-AUTH-ERROR] %v", err)
		client.Emit("error", gin.H{"error": err.Error()})
		return false, "", ""
	}

	claims, err := authService.ParseToken(context.Background(), token)
	if err != nil {
		logger.Warnf("[SOCKET-AUTH-ERROR] Invalid token: %v", err)
		client.Emit("error", gin.H{
			"error": "Authentication failed: invalid JWT. Remember to set it on the 'authorization' field and with the 'Bearer ' prefix.",
		})
		return false, "", ""
	}
	return true, claims.ID, claims.Email
}

// GameIDFrom accepts either "<gameId>" or {"gameId": "<gameId>"} as the
// first event argument.
func GameIDFrom(args []interface{}) (string, bool) {
	if len(args) < 1 {
		return "", false
	}
	switch v := args[0].(type) {
	case string:
		return v, v != ""
	case map[string]interface{}:
		id, ok := v["gameId"].(string)
		return id, ok && id != ""
	}
	return "", false
}
