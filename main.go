package main

import (
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/tubely/tubely_server/internal"
	"github.com/tubely/tubely_server/internal/health"
	"github.com/tubely/tubely_server/internal/media"
	"github.com/tubely/tubely_server/internal/status"
	"github.com/tubely/tubely_server/internal/storage"
	"github.com/tubely/tubely_server/internal/user"
	"github.com/tubely/tubely_server/internal/video"
)

const version = "1.0.0"

// maxRequestBody leaves room above the 1 GiB video cap so the handler can
// reject oversized uploads itself instead of fasthttp cutting them off.
const maxRequestBody = (1 << 30) + (64 << 20)

func main() {
	config, err := internal.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
		return
	}

	db, err := internal.NewDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing database")
		return
	}

	assetsBackend, err := storage.NewLocalStorage(&config.Assets)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing assets storage")
		return
	}
	objectsBackend, err := storage.NewBackend(&config.Objects)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing object storage")
		return
	}

	runner := media.NewExecRunner()
	inspector := media.NewInspector(runner, config.Media)
	remuxer := media.NewRemuxer(runner, config.Media)

	userRepository := user.NewSQLite3UserRepository(db)
	userService := user.NewUserService(userRepository, config.Auth)
	userEndpoints := user.NewEndpoints(userRepository, userService)

	videoRepository := video.NewSQLite3VideoRepository(db)
	videoEndpoints := video.NewEndpoints(videoRepository, assetsBackend, objectsBackend, inspector, remuxer)

	healthEndpoints := health.NewEndpoints(version)
	statusEndpoints := status.NewEndpoints(version)

	requestHandler := internal.NewRequestHandler(config, userEndpoints, userService, videoEndpoints, healthEndpoints, statusEndpoints)

	server := &fasthttp.Server{
		Handler:            requestHandler,
		MaxRequestBodySize: maxRequestBody,
	}

	log.Info().Str("addr", config.Server.Addr).Msg("Starting server")
	if err := server.ListenAndServe(config.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("Error starting server")
	}
}
