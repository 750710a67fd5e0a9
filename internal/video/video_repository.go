package video

import (
	"database/sql"
	"fmt"
)

type sqlite3VideoRepository struct {
	db *sql.DB
}

func NewSQLite3VideoRepository(db *sql.DB) VideoRepository {
	return &sqlite3VideoRepository{db: db}
}

func (r *sqlite3VideoRepository) CreateVideo(video *Video) error {
	_, err := r.db.Exec(
		"INSERT INTO videos (id, user_id, title, description, thumbnail_url, video_url, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		video.ID, video.UserID, video.Title, video.Description, video.ThumbnailURL, video.VideoURL, video.CreatedAt, video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

func (r *sqlite3VideoRepository) GetVideoByID(id string) (*Video, error) {
	var video Video
	err := r.db.QueryRow(
		"SELECT id, user_id, title, description, thumbnail_url, video_url, created_at, updated_at FROM videos WHERE id = ?",
		id,
	).Scan(&video.ID, &video.UserID, &video.Title, &video.Description, &video.ThumbnailURL, &video.VideoURL, &video.CreatedAt, &video.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get video by id: %w", err)
	}
	return &video, nil
}

func (r *sqlite3VideoRepository) GetVideosByUserID(userID string) ([]*Video, error) {
	rows, err := r.db.Query(
		"SELECT id, user_id, title, description, thumbnail_url, video_url, created_at, updated_at FROM videos WHERE user_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []*Video
	for rows.Next() {
		var video Video
		err := rows.Scan(&video.ID, &video.UserID, &video.Title, &video.Description, &video.ThumbnailURL, &video.VideoURL, &video.CreatedAt, &video.UpdatedAt)
		if err != nil {
			return nil, err
		}
		videos = append(videos, &video)
	}

	return videos, rows.Err()
}

func (r *sqlite3VideoRepository) UpdateVideo(video *Video) error {
	result, err := r.db.Exec(
		"UPDATE videos SET title = ?, description = ?, thumbnail_url = ?, video_url = ?, updated_at = ? WHERE id = ?",
		video.Title, video.Description, video.ThumbnailURL, video.VideoURL, video.UpdatedAt, video.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("video not found")
	}
	return nil
}

func (r *sqlite3VideoRepository) DeleteVideo(id string) error {
	result, err := r.db.Exec("DELETE FROM videos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("video not found")
	}
	return nil
}
