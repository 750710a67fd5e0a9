package video

// Video is one hosted video record. UserID is set at creation and never
// changes; it is the only authorization key for mutating the record.
type Video struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userID"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ThumbnailURL *string `json:"thumbnailURL"`
	VideoURL     *string `json:"videoURL"`
	CreatedAt    int64   `json:"createdAt"`
	UpdatedAt    int64   `json:"updatedAt"`
}

type VideoRepository interface {
	CreateVideo(video *Video) error
	GetVideoByID(id string) (*Video, error)
	GetVideosByUserID(userID string) ([]*Video, error)
	UpdateVideo(video *Video) error
	DeleteVideo(id string) error
}

type CreateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
