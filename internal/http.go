package internal

import (
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/tubely/tubely_server/internal/health"
	"github.com/tubely/tubely_server/internal/middleware"
	"github.com/tubely/tubely_server/internal/status"
	"github.com/tubely/tubely_server/internal/user"
	"github.com/tubely/tubely_server/internal/video"
)

func NewRequestHandler(config *Config, userEndpoints *user.UserEndpoints, userService *user.UserService, videoEndpoints *video.Endpoints, healthEndpoints *health.HealthEndpoints, statusEndpoints *status.StatusEndpoints) fasthttp.RequestHandler {
	authMiddleware := middleware.NewAuthMiddleware(userService)
	corsMiddleware := middleware.NewCORSMiddleware(config.Server.AllowedOrigins)

	assetsFS := &fasthttp.FS{
		Root:        config.Assets.LocalPath,
		PathRewrite: fasthttp.NewPathSlashesStripper(1),
	}
	assetsHandler := assetsFS.NewRequestHandler()

	handler := func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		method := string(ctx.Method())

		switch {
		case path == "/api/login":
			if method == "POST" {
				userEndpoints.Login(ctx)
			} else {
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}

		case path == "/api/videos":
			switch method {
			case "POST":
				authMiddleware.RequireAuth(videoEndpoints.CreateVideo)(ctx)
			case "GET":
				authMiddleware.RequireAuth(videoEndpoints.ListVideos)(ctx)
			default:
				ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
			}

		case strings.HasPrefix(path, "/api/videos/"):
			parts := strings.Split(path, "/")
			switch {
			case len(parts) == 4:
				ctx.SetUserValue("videoID", parts[3])
				switch method {
				case "GET":
					videoEndpoints.GetVideo(ctx)
				case "DELETE":
					authMiddleware.RequireAuth(videoEndpoints.DeleteVideo)(ctx)
				default:
					ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
				}
			case len(parts) == 5 && parts[4] == "thumbnail":
				ctx.SetUserValue("videoID", parts[3])
				if method == "POST" {
					authMiddleware.RequireAuth(videoEndpoints.UploadThumbnail)(ctx)
				} else {
					ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
				}
			case len(parts) == 5 && parts[4] == "video":
				ctx.SetUserValue("videoID", parts[3])
				if method == "POST" {
					authMiddleware.RequireAuth(videoEndpoints.UploadVideo)(ctx)
				} else {
					ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
				}
			default:
				ctx.Error("Not Found", fasthttp.StatusNotFound)
			}

		case strings.HasPrefix(path, "/assets/"):
			assetsHandler(ctx)

		case path == "/health":
			healthEndpoints.Health(ctx)
		case path == "/status":
			authMiddleware.RequireAuth(statusEndpoints.Status)(ctx)

		default:
			ctx.Error("Not Found", fasthttp.StatusNotFound)
		}
	}

	return corsMiddleware.Handle(handler)
}
