package middleware

import (
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/tubely/tubely_server/internal/user"
)

type AuthMiddleware struct {
	userService *user.UserService
}

func NewAuthMiddleware(userService *user.UserService) *AuthMiddleware {
	return &AuthMiddleware{
		userService: userService,
	}
}

// RequireAuth rejects the request unless it carries a valid bearer token.
// The resolved user id is stashed on the request context for handlers.
func (am *AuthMiddleware) RequireAuth(handler fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		authenticatedUser, err := am.userService.ValidateJWTFromRequest(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Authentication failed")
			ctx.SetContentType("application/json")
			ctx.SetStatusCode(fasthttp.StatusUnauthorized)
			ctx.SetBodyString(`{"error":"Unauthorized"}`)
			return
		}

		ctx.SetUserValue("user", authenticatedUser)
		ctx.SetUserValue("userID", authenticatedUser.ID)

		handler(ctx)
	}
}
