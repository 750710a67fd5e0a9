package video

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/tubely/tubely_server/internal/media"
	"github.com/tubely/tubely_server/internal/storage"
)

type Endpoints struct {
	repo      VideoRepository
	assets    storage.Backend
	objects   storage.Backend
	inspector *media.Inspector
	remuxer   *media.Remuxer
}

func NewEndpoints(repo VideoRepository, assets, objects storage.Backend, inspector *media.Inspector, remuxer *media.Remuxer) *Endpoints {
	return &Endpoints{
		repo:      repo,
		assets:    assets,
		objects:   objects,
		inspector: inspector,
		remuxer:   remuxer,
	}
}

// CreateVideo registers a draft record owned by the authenticated user.
// Uploads attach to it later.
func (e *Endpoints) CreateVideo(ctx *fasthttp.RequestCtx) {
	userID, ok := ctx.UserValue("userID").(string)
	if !ok || userID == "" {
		respondError(ctx, fasthttp.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateVideoRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		respondError(ctx, fasthttp.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		respondError(ctx, fasthttp.StatusBadRequest, "Title is required")
		return
	}

	now := time.Now().Unix()
	video := &Video{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := e.repo.CreateVideo(video); err != nil {
		log.Error().Err(err).Msg("Failed to create video")
		respondError(ctx, fasthttp.StatusInternalServerError, "Failed to create video")
		return
	}

	respondJSON(ctx, fasthttp.StatusCreated, video)
}

func (e *Endpoints) ListVideos(ctx *fasthttp.RequestCtx) {
	userID, ok := ctx.UserValue("userID").(string)
	if !ok || userID == "" {
		respondError(ctx, fasthttp.StatusUnauthorized, "Unauthorized")
		return
	}

	videos, err := e.repo.GetVideosByUserID(userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list videos")
		respondError(ctx, fasthttp.StatusInternalServerError, "Failed to list videos")
		return
	}
	if videos == nil {
		videos = []*Video{}
	}

	respondJSON(ctx, fasthttp.StatusOK, videos)
}

func (e *Endpoints) GetVideo(ctx *fasthttp.RequestCtx) {
	videoID, _ := ctx.UserValue("videoID").(string)
	if videoID == "" {
		respondError(ctx, fasthttp.StatusBadRequest, "Invalid video ID")
		return
	}

	video, err := e.repo.GetVideoByID(videoID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get video")
		respondError(ctx, fasthttp.StatusInternalServerError, "Failed to get video")
		return
	}
	if video == nil {
		respondError(ctx, fasthttp.StatusNotFound, "Couldn't find video")
		return
	}

	respondJSON(ctx, fasthttp.StatusOK, video)
}

func (e *Endpoints) DeleteVideo(ctx *fasthttp.RequestCtx) {
	video, ok := e.loadOwnedVideo(ctx)
	if !ok {
		return
	}

	if err := e.repo.DeleteVideo(video.ID); err != nil {
		log.Error().Err(err).Msg("Failed to delete video")
		respondError(ctx, fasthttp.StatusInternalServerError, "Failed to delete video")
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

// UploadThumbnail stores an image under the public assets root and points
// the record's thumbnail URL at it.
func (e *Endpoints) UploadThumbnail(ctx *fasthttp.RequestCtx) {
	video, ok := e.loadOwnedVideo(ctx)
	if !ok {
		return
	}

	log.Info().Str("videoId", video.ID).Str("userId", video.UserID).Msg("uploading thumbnail")

	fileHeader, err := ctx.FormFile("thumbnail")
	if err != nil {
		respondError(ctx, fasthttp.StatusBadRequest, "Thumbnail file missing")
		return
	}
	if fileHeader.Size > maxThumbnailBytes {
		respondError(ctx, fasthttp.StatusBadRequest, "Thumbnail exceeds 10MB size limit")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := thumbnailExtensions[contentType]
	if !ok {
		respondError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Unsupported Mime type: %s", contentType))
		return
	}

	name, err := newAssetName()
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate asset name")
		respondError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}
	fileName := name + ext

	file, err := fileHeader.Open()
	if err != nil {
		respondError(ctx, fasthttp.StatusBadRequest, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	if err := e.assets.Store(ctx, fileName, file, fileHeader.Size, contentType); err != nil {
		log.Error().Err(err).Msg("Failed to store thumbnail")
		respondError(ctx, fasthttp.StatusInternalServerError, "Failed to store thumbnail")
		return
	}

	thumbnailURL, err := e.assets.URL(ctx, fileName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build thumbnail URL")
		respondError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}

	video.ThumbnailURL = &thumbnailURL
	video.UpdatedAt = time.Now().Unix()
	if err := e.repo.UpdateVideo(video); err != nil {
		// The asset is already on disk with no record pointing at it.
		log.Warn().Err(err).Str("videoId", video.ID).Str("asset", fileName).Msg("orphaned thumbnail: record update failed after write")
		respondError(ctx, fasthttp.StatusInternalServerError, "Failed to update video")
		return
	}

	respondJSON(ctx, fasthttp.StatusOK, video)
}

// UploadVideo validates an mp4 upload, probes its orientation, remuxes it
// for fast-start playback, publishes it to object storage and points the
// record's video URL at the result.
func (e *Endpoints) UploadVideo(ctx *fasthttp.RequestCtx) {
	video, ok := e.loadOwnedVideo(ctx)
	if !ok {
		return
	}

	log.Info().Str("videoId", video.ID).Str("userId", video.UserID).Msg("uploading video")

	fileHeader, err := ctx.FormFile("video")
	if err != nil {
		respondError(ctx, fasthttp.StatusBadRequest, "Video file missing")
		return
	}
	if fileHeader.Size > maxVideoBytes {
		respondError(ctx, fasthttp.StatusBadRequest, "Video exceeds 1GB size limit")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := videoExtensions[contentType]
	if !ok {
		respondError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("Unsupported Mime type: %s", contentType))
		return
	}

	name, err := newAssetName()
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate asset name")
		respondError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}
	fileName := name + ext

	tempPath := filepath.Join(os.TempDir(), fileName)
	if err := fasthttp.SaveMultipartFile(fileHeader, tempPath); err != nil {
		log.Error().Err(err).Msg("Failed to stage upload")
		respondError(ctx, fasthttp.StatusInternalServerError, "Failed to stage upload")
		return
	}
	defer removeTempFiles(tempPath, tempPath+media.ProcessedSuffix)

	width, height, err := e.inspector.Dimensions(ctx, tempPath)
	if err != nil {
		respondError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	orientation := media.Orientation(width, height)

	processedPath, err := e.remuxer.FastStart(ctx, tempPath)
	if err != nil {
		respondError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	processedFile, err := os.Open(processedPath)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open processed video")
		respondError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}
	defer processedFile.Close()

	info, err := processedFile.Stat()
	if err != nil {
		log.Error().Err(err).Msg("Failed to stat processed video")
		respondError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}

	key := fmt.Sprintf("%s/%s", orientation, fileName)
	if err := e.objects.Store(ctx, key, processedFile, info.Size(), contentType); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to store video")
		respondError(ctx, fasthttp.StatusInternalServerError, "Failed to store video")
		return
	}

	videoURL, err := e.objects.URL(ctx, key)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build video URL")
		respondError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}

	video.VideoURL = &videoURL
	video.UpdatedAt = time.Now().Unix()
	if err := e.repo.UpdateVideo(video); err != nil {
		// The object is already published with no record pointing at it.
		log.Warn().Err(err).Str("videoId", video.ID).Str("key", key).Msg("orphaned video: record update failed after upload")
		respondError(ctx, fasthttp.StatusInternalServerError, "Failed to update video")
		return
	}

	respondJSON(ctx, fasthttp.StatusOK, video)
}

// loadOwnedVideo resolves the videoID route parameter to a record owned by
// the authenticated user, writing the error response itself when it can't.
func (e *Endpoints) loadOwnedVideo(ctx *fasthttp.RequestCtx) (*Video, bool) {
	videoID, _ := ctx.UserValue("videoID").(string)
	if videoID == "" {
		respondError(ctx, fasthttp.StatusBadRequest, "Invalid video ID")
		return nil, false
	}

	userID, ok := ctx.UserValue("userID").(string)
	if !ok || userID == "" {
		respondError(ctx, fasthttp.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	video, err := e.repo.GetVideoByID(videoID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get video")
		respondError(ctx, fasthttp.StatusInternalServerError, "Failed to get video")
		return nil, false
	}
	if video == nil {
		respondError(ctx, fasthttp.StatusNotFound, "Couldn't find video")
		return nil, false
	}
	if video.UserID != userID {
		respondError(ctx, fasthttp.StatusForbidden, "You don't own this video")
		return nil, false
	}

	return video, true
}

// removeTempFiles deletes staging files concurrently, best effort. Missing
// files count as success; anything else is only logged.
func removeTempFiles(paths ...string) {
	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				log.Warn().Err(err).Str("path", path).Msg("Failed to remove temp file")
			}
		}(path)
	}
	wg.Wait()
}
