package context

import (
	stdcontext "context"
	"net/http"
	"strconv"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Context keys for storing user authentication information
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
	UserRoleKey  = "user_role"
)

type actorKey struct{}

// Actor is the authenticated back-office user performing a request
type Actor struct {
	UserID uint32
	Email  string
	Role   string
}

// WithActor attaches the actor to a request context so services can audit without gin
func WithActor(ctx stdcontext.Context, actor Actor) stdcontext.Context {
	return stdcontext.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by the JWT middleware
func ActorFromContext(ctx stdcontext.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}

func GetUserID(c *gin.Context) (uint32, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}

	idStr, ok := userID.(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(id), true
}

// GetUserRole returns the role claim of the authenticated user
func GetUserRole(c *gin.Context) string {
	return c.GetString(UserRoleKey)
}

// RequireUserID retrieves the authenticated user's ID from the Gin context.
// If the user ID is not found, automatically sends an authentication error response.
// Returns the user ID and true if found, 0 and false if not found (error already sent).
func RequireUserID(c *gin.Context) (uint32, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		resp := sharedError.ErrorResponse{
			Status:    http.StatusUnauthorized,
			Code:      "AUTH-000",
			Message:   "로그인을 해주세요.",
			MessageEn: "Please sign in.",
		}
		c.JSON(http.StatusUnauthorized, resp.Localize(i18n.FromGin(c)))
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 사용자 ID가 존재하지 않습니다.")
		return 0, false
	}
	return userID, true
}

// ActorUserID returns the acting user's id, or 0 for anonymous requests
func ActorUserID(ctx stdcontext.Context) uint32 {
	actor, _ := ActorFromContext(ctx)
	return actor.UserID
}
