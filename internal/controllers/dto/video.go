// Package dto contains transport-layer request/response shapes and conversions.
package dto

import (
	"fmt"
	"time"

	"github.com/codeflix-tube/admin-catalog/internal/models/vo"
	"github.com/codeflix-tube/admin-catalog/internal/services"
	"github.com/codeflix-tube/admin-catalog/internal/validation"

	"github.com/google/uuid"
)

// VideoWriteRequest 描述创建/更新视频的请求体（JSON 部分）。
type VideoWriteRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	YearLaunched  *int32   `json:"year_launched"`
	Duration      float64  `json:"duration"`
	Opened        bool     `json:"opened"`
	Published     bool     `json:"published"`
	Rating        string   `json:"rating"`
	CategoriesID  []string `json:"categories_id"`
	GenresID      []string `json:"genres_id"`
	CastMembersID []string `json:"cast_members_id"`
}

// ToCreateInput 将请求体转换为创建用例输入。
func (r VideoWriteRequest) ToCreateInput() (services.CreateVideoInput, error) {
	categories, err := parseIDList("categories_id", r.CategoriesID)
	if err != nil {
		return services.CreateVideoInput{}, err
	}
	genres, err := parseIDList("genres_id", r.GenresID)
	if err != nil {
		return services.CreateVideoInput{}, err
	}
	castMembers, err := parseIDList("cast_members_id", r.CastMembersID)
	if err != nil {
		return services.CreateVideoInput{}, err
	}
	return services.CreateVideoInput{
		Title:       r.Title,
		Description: r.Description,
		LaunchedAt:  r.YearLaunched,
		Duration:    r.Duration,
		Opened:      r.Opened,
		Published:   r.Published,
		Rating:      r.Rating,
		Categories:  categories,
		Genres:      genres,
		CastMembers: castMembers,
	}, nil
}

// ToUpdateInput 将请求体转换为更新用例输入。
func (r VideoWriteRequest) ToUpdateInput(videoID uuid.UUID) (services.UpdateVideoInput, error) {
	createInput, err := r.ToCreateInput()
	if err != nil {
		return services.UpdateVideoInput{}, err
	}
	return services.UpdateVideoInput{
		VideoID:     videoID,
		Title:       createInput.Title,
		Description: createInput.Description,
		LaunchedAt:  createInput.LaunchedAt,
		Duration:    createInput.Duration,
		Opened:      createInput.Opened,
		Published:   createInput.Published,
		Rating:      createInput.Rating,
		Categories:  createInput.Categories,
		Genres:      createInput.Genres,
		CastMembers: createInput.CastMembers,
	}, nil
}

func parseIDList(field string, raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry %q", field, value)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// VideoCreatedResponse 为创建成功的响应体。
type VideoCreatedResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVideoCreatedResponse 由用例输出构造响应。
func NewVideoCreatedResponse(out *vo.VideoCreated) VideoCreatedResponse {
	return VideoCreatedResponse{
		ID:        out.VideoID.String(),
		CreatedAt: out.CreatedAt,
	}
}

// VideoUpdatedResponse 为更新成功的响应体。
type VideoUpdatedResponse struct {
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVideoUpdatedResponse 由用例输出构造响应。
func NewVideoUpdatedResponse(out *vo.VideoUpdated) VideoUpdatedResponse {
	return VideoUpdatedResponse{
		ID:        out.VideoID.String(),
		UpdatedAt: out.UpdatedAt,
	}
}

// VideoDeletedResponse 为删除成功的响应体。
type VideoDeletedResponse struct {
	ID        string    `json:"id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// NewVideoDeletedResponse 由用例输出构造响应。
func NewVideoDeletedResponse(out *vo.VideoDeleted) VideoDeletedResponse {
	return VideoDeletedResponse{
		ID:        out.VideoID.String(),
		DeletedAt: out.DeletedAt,
	}
}

// AudioVideoMediaResponse 描述音视频媒体槽位。
type AudioVideoMediaResponse struct {
	ID              string `json:"id"`
	Checksum        string `json:"checksum"`
	Name            string `json:"name"`
	RawLocation     string `json:"raw_location"`
	EncodedLocation string `json:"encoded_location,omitempty"`
	Status          string `json:"status"`
}

// ImageMediaResponse 描述图片媒体槽位。
type ImageMediaResponse struct {
	Checksum string `json:"checksum"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// VideoResponse 为单个视频聚合的完整视图。
type VideoResponse struct {
	ID            string                   `json:"id"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	YearLaunched  *int32                   `json:"year_launched"`
	Duration      float64                  `json:"duration"`
	Opened        bool                     `json:"opened"`
	Published     bool                     `json:"published"`
	Rating        string                   `json:"rating"`
	CategoriesID  []string                 `json:"categories_id"`
	GenresID      []string                 `json:"genres_id"`
	CastMembersID []string                 `json:"cast_members_id"`
	Video         *AudioVideoMediaResponse `json:"video,omitempty"`
	Trailer       *AudioVideoMediaResponse `json:"trailer,omitempty"`
	Banner        *ImageMediaResponse      `json:"banner,omitempty"`
	Thumbnail     *ImageMediaResponse      `json:"thumbnail,omitempty"`
	ThumbnailHalf *ImageMediaResponse      `json:"thumbnail_half,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// NewVideoResponse 由聚合视图构造响应。
func NewVideoResponse(out *vo.VideoOutput) VideoResponse {
	resp := VideoResponse{
		ID:            out.ID.String(),
		Title:         out.Title,
		Description:   out.Description,
		YearLaunched:  out.LaunchedAt,
		Duration:      out.Duration,
		Opened:        out.Opened,
		Published:     out.Published,
		Rating:        out.Rating,
		CategoriesID:  formatIDList(out.Categories),
		GenresID:      formatIDList(out.Genres),
		CastMembersID: formatIDList(out.CastMembers),
		CreatedAt:     out.CreatedAt,
		UpdatedAt:     out.UpdatedAt,
	}
	resp.Video = audioVideoResponse(out.Video)
	resp.Trailer = audioVideoResponse(out.Trailer)
	resp.Banner = imageResponse(out.Banner)
	resp.Thumbnail = imageResponse(out.Thumbnail)
	resp.ThumbnailHalf = imageResponse(out.ThumbnailHalf)
	return resp
}

func audioVideoResponse(view *vo.AudioVideoMediaView) *AudioVideoMediaResponse {
	if view == nil {
		return nil
	}
	return &AudioVideoMediaResponse{
		ID:              view.ID.String(),
		Checksum:        view.Checksum,
		Name:            view.Name,
		RawLocation:     view.RawLocation,
		EncodedLocation: view.EncodedLocation,
		Status:          view.Status,
	}
}

func imageResponse(view *vo.ImageMediaView) *ImageMediaResponse {
	if view == nil {
		return nil
	}
	return &ImageMediaResponse{
		Checksum: view.Checksum,
		Name:     view.Name,
		Location: view.Location,
	}
}

func formatIDList(ids []uuid.UUID) []string {
	if len(ids) == 0 {
		return []string{}
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// FieldError 描述单条校验错误。
type FieldError struct {
	Message string `json:"message"`
}

// ValidationErrorResponse 携带本次请求的全部校验错误。
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// NewValidationErrorResponse 由累积的校验错误构造响应。
func NewValidationErrorResponse(errs []validation.Error) ValidationErrorResponse {
	fields := make([]FieldError, len(errs))
	for i, err := range errs {
		fields[i] = FieldError{Message: err.Message}
	}
	return ValidationErrorResponse{
		Message: "Could not process the request",
		Errors:  fields,
	}
}
