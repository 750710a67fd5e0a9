package user

import (
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
	"golang.org/x/crypto/bcrypt"
)

type UserEndpoints struct {
	userRepository UserRepository
	userService    *UserService
}

func NewEndpoints(userRepository UserRepository, userService *UserService) *UserEndpoints {
	return &UserEndpoints{
		userRepository: userRepository,
		userService:    userService,
	}
}

// Login authenticates by email and password and issues a bearer JWT.
func (ue *UserEndpoints) Login(ctx *fasthttp.RequestCtx) {
	var req LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.Error("Invalid request body", fasthttp.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		ctx.Error("Email and password are required", fasthttp.StatusBadRequest)
		return
	}

	authenticatedUser, passwordHash, err := ue.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		log.Error().Err(err).Msg("Failed to look up user")
		ctx.Error("Internal server error", fasthttp.StatusInternalServerError)
		return
	}
	if authenticatedUser == nil {
		ctx.Error("Incorrect email or password", fasthttp.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		ctx.Error("Incorrect email or password", fasthttp.StatusUnauthorized)
		return
	}

	token, expiresAt, err := ue.userService.GenerateJWT(authenticatedUser)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate JWT")
		ctx.Error("Internal server error", fasthttp.StatusInternalServerError)
		return
	}

	response := LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      authenticatedUser,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(responseJSON)
}
