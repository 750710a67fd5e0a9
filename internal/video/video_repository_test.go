package video

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE videos (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		thumbnail_url TEXT,
		video_url TEXT,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`)
	require.NoError(t, err)
	return db
}

func TestSQLite3VideoRepository_CreateAndGet(t *testing.T) {
	// given
	repo := NewSQLite3VideoRepository(newTestDB(t))
	video := &Video{
		ID:          "v1",
		UserID:      "u1",
		Title:       "first",
		Description: "desc",
		CreatedAt:   100,
		UpdatedAt:   100,
	}

	// when
	require.NoError(t, repo.CreateVideo(video))
	fetched, err := repo.GetVideoByID("v1")

	// then
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "v1", fetched.ID)
	assert.Equal(t, "u1", fetched.UserID)
	assert.Nil(t, fetched.ThumbnailURL)
	assert.Nil(t, fetched.VideoURL)
}

func TestSQLite3VideoRepository_GetMissingReturnsNil(t *testing.T) {
	// given
	repo := NewSQLite3VideoRepository(newTestDB(t))

	// when
	fetched, err := repo.GetVideoByID("missing")

	// then
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestSQLite3VideoRepository_UpdatePersistsURLs(t *testing.T) {
	// given
	repo := NewSQLite3VideoRepository(newTestDB(t))
	video := &Video{ID: "v1", UserID: "u1", Title: "first", CreatedAt: 100, UpdatedAt: 100}
	require.NoError(t, repo.CreateVideo(video))

	thumbnailURL := "http://localhost:8091/assets/abc.png"
	videoURL := "https://d1example.cloudfront.net/landscape/abc.mp4"
	video.ThumbnailURL = &thumbnailURL
	video.VideoURL = &videoURL
	video.UpdatedAt = 200

	// when
	require.NoError(t, repo.UpdateVideo(video))
	fetched, err := repo.GetVideoByID("v1")

	// then
	require.NoError(t, err)
	require.NotNil(t, fetched.ThumbnailURL)
	require.NotNil(t, fetched.VideoURL)
	assert.Equal(t, thumbnailURL, *fetched.ThumbnailURL)
	assert.Equal(t, videoURL, *fetched.VideoURL)
	assert.Equal(t, int64(200), fetched.UpdatedAt)
}

func TestSQLite3VideoRepository_UpdateMissingFails(t *testing.T) {
	// given
	repo := NewSQLite3VideoRepository(newTestDB(t))

	// when
	err := repo.UpdateVideo(&Video{ID: "missing"})

	// then
	assert.Error(t, err)
}

func TestSQLite3VideoRepository_ListByUser(t *testing.T) {
	// given
	repo := NewSQLite3VideoRepository(newTestDB(t))
	require.NoError(t, repo.CreateVideo(&Video{ID: "v1", UserID: "u1", Title: "a", CreatedAt: 100, UpdatedAt: 100}))
	require.NoError(t, repo.CreateVideo(&Video{ID: "v2", UserID: "u1", Title: "b", CreatedAt: 200, UpdatedAt: 200}))
	require.NoError(t, repo.CreateVideo(&Video{ID: "v3", UserID: "u2", Title: "c", CreatedAt: 300, UpdatedAt: 300}))

	// when
	videos, err := repo.GetVideosByUserID("u1")

	// then
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "v2", videos[0].ID) // newest first
	assert.Equal(t, "v1", videos[1].ID)
}

func TestSQLite3VideoRepository_Delete(t *testing.T) {
	// given
	repo := NewSQLite3VideoRepository(newTestDB(t))
	require.NoError(t, repo.CreateVideo(&Video{ID: "v1", UserID: "u1", Title: "a", CreatedAt: 100, UpdatedAt: 100}))

	// when
	err := repo.DeleteVideo("v1")

	// then
	require.NoError(t, err)
	fetched, err := repo.GetVideoByID("v1")
	require.NoError(t, err)
	assert.Nil(t, fetched)

	assert.Error(t, repo.DeleteVideo("v1"))
}
