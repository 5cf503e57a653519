// Package vo 定义视图对象（View Objects），用于向上层传递业务数据。
// VO 对象由 Service 层返回，经控制器转换为 API 响应，隔离内部数据结构。
package vo

import (
	"time"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/google/uuid"
)

// AudioVideoMediaView 封装音视频槽位的展示数据。
type AudioVideoMediaView struct {
	ID              uuid.UUID `json:"id"`
	Checksum        string    `json:"checksum"`
	Name            string    `json:"name"`
	RawLocation     string    `json:"raw_location"`
	EncodedLocation string    `json:"encoded_location"`
	Status          string    `json:"status"`
}

// ImageMediaView 封装图片槽位的展示数据。
type ImageMediaView struct {
	ID       uuid.UUID `json:"id"`
	Checksum string    `json:"checksum"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
}

// VideoOutput 封装视频聚合的完整只读视图。
type VideoOutput struct {
	ID            uuid.UUID            `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	LaunchedAt    *int32               `json:"launched_at"`
	Duration      float64              `json:"duration"`
	Opened        bool                 `json:"opened"`
	Published     bool                 `json:"published"`
	Rating        string               `json:"rating"`
	Categories    []uuid.UUID          `json:"categories"`
	Genres        []uuid.UUID          `json:"genres"`
	CastMembers   []uuid.UUID          `json:"cast_members"`
	Video         *AudioVideoMediaView `json:"video,omitempty"`
	Trailer       *AudioVideoMediaView `json:"trailer,omitempty"`
	Banner        *ImageMediaView      `json:"banner,omitempty"`
	Thumbnail     *ImageMediaView      `json:"thumbnail,omitempty"`
	ThumbnailHalf *ImageMediaView      `json:"thumbnail_half,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// NewVideoOutput 从聚合构造完整视图。
func NewVideoOutput(video *po.Video) *VideoOutput {
	if video == nil {
		return nil
	}
	return &VideoOutput{
		ID:            video.ID,
		Title:         video.Title,
		Description:   video.Description,
		LaunchedAt:    video.LaunchedAt,
		Duration:      video.Duration,
		Opened:        video.Opened,
		Published:     video.Published,
		Rating:        string(video.Rating),
		Categories:    video.Categories.Slice(),
		Genres:        video.Genres.Slice(),
		CastMembers:   video.CastMembers.Slice(),
		Video:         newAudioVideoView(video.Video),
		Trailer:       newAudioVideoView(video.Trailer),
		Banner:        newImageView(video.Banner),
		Thumbnail:     newImageView(video.Thumbnail),
		ThumbnailHalf: newImageView(video.ThumbnailHalf),
		CreatedAt:     video.CreatedAt,
		UpdatedAt:     video.UpdatedAt,
	}
}

// VideoCreated 封装视频创建响应的核心信息。
type VideoCreated struct {
	VideoID   uuid.UUID `json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVideoCreated 从聚合构造创建响应 VO。
func NewVideoCreated(video *po.Video) *VideoCreated {
	if video == nil {
		return nil
	}
	return &VideoCreated{VideoID: video.ID, CreatedAt: video.CreatedAt}
}

// VideoUpdated 封装视频更新后的响应信息。
type VideoUpdated struct {
	VideoID   uuid.UUID `json:"video_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVideoUpdated 从聚合构造更新响应 VO。
func NewVideoUpdated(video *po.Video) *VideoUpdated {
	if video == nil {
		return nil
	}
	return &VideoUpdated{VideoID: video.ID, UpdatedAt: video.UpdatedAt}
}

// VideoDeleted 封装视频删除后的响应信息。
type VideoDeleted struct {
	VideoID   uuid.UUID `json:"video_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// NewVideoDeleted 构造删除响应 VO。
func NewVideoDeleted(videoID uuid.UUID, deletedAt time.Time) *VideoDeleted {
	return &VideoDeleted{VideoID: videoID, DeletedAt: deletedAt}
}

func newAudioVideoView(media *po.AudioVideoMedia) *AudioVideoMediaView {
	if media == nil {
		return nil
	}
	return &AudioVideoMediaView{
		ID:              media.ID,
		Checksum:        media.Checksum,
		Name:            media.Name,
		RawLocation:     media.RawLocation,
		EncodedLocation: media.EncodedLocation,
		Status:          string(media.Status),
	}
}

func newImageView(media *po.ImageMedia) *ImageMediaView {
	if media == nil {
		return nil
	}
	return &ImageMediaView{
		ID:       media.ID,
		Checksum: media.Checksum,
		Name:     media.Name,
		Location: media.Location,
	}
}
