package controllers_test

import (
	"testing"
	"time"

	"github.com/codeflix-tube/admin-catalog/internal/controllers/dto"
	"github.com/codeflix-tube/admin-catalog/internal/models/vo"
	"github.com/codeflix-tube/admin-catalog/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestVideoWriteRequestToCreateInput(t *testing.T) {
	categoryID := uuid.New()
	genreID := uuid.New()
	castMemberID := uuid.New()
	year := int32(2024)

	req := dto.VideoWriteRequest{
		Title:         "系统设计面试指南",
		Description:   "从容量估算到存储选型的完整讲解",
		YearLaunched:  &year,
		Duration:      95.5,
		Opened:        true,
		Published:     false,
		Rating:        "L",
		CategoriesID:  []string{categoryID.String()},
		GenresID:      []string{genreID.String()},
		CastMembersID: []string{castMemberID.String()},
	}

	input, err := req.ToCreateInput()
	require.NoError(t, err)
	require.Equal(t, req.Title, input.Title)
	require.Equal(t, req.Description, input.Description)
	require.Equal(t, &year, input.LaunchedAt)
	require.Equal(t, req.Duration, input.Duration)
	require.True(t, input.Opened)
	require.False(t, input.Published)
	require.Equal(t, "L", input.Rating)
	require.Equal(t, []uuid.UUID{categoryID}, input.Categories)
	require.Equal(t, []uuid.UUID{genreID}, input.Genres)
	require.Equal(t, []uuid.UUID{castMemberID}, input.CastMembers)
}

func TestVideoWriteRequestToCreateInputEmptyLists(t *testing.T) {
	input, err := dto.VideoWriteRequest{Title: "标题"}.ToCreateInput()
	require.NoError(t, err)
	require.Nil(t, input.Categories)
	require.Nil(t, input.Genres)
	require.Nil(t, input.CastMembers)
	require.Nil(t, input.LaunchedAt)
}

func TestVideoWriteRequestRejectsMalformedIDs(t *testing.T) {
	req := dto.VideoWriteRequest{
		Title:        "标题",
		CategoriesID: []string{"not-a-uuid"},
	}
	_, err := req.ToCreateInput()
	require.Error(t, err)
	require.Contains(t, err.Error(), "categories_id")
	require.Contains(t, err.Error(), "not-a-uuid")

	req = dto.VideoWriteRequest{
		Title:    "标题",
		GenresID: []string{"oops"},
	}
	_, err = req.ToCreateInput()
	require.Error(t, err)
	require.Contains(t, err.Error(), "genres_id")
}

func TestVideoWriteRequestToUpdateInput(t *testing.T) {
	videoID := uuid.New()
	year := int32(2022)
	req := dto.VideoWriteRequest{
		Title:        "更新后的标题",
		Description:  "更新后的描述",
		YearLaunched: &year,
		Duration:     120,
		Rating:       "16",
	}

	input, err := req.ToUpdateInput(videoID)
	require.NoError(t, err)
	require.Equal(t, videoID, input.VideoID)
	require.Equal(t, req.Title, input.Title)
	require.Equal(t, req.Description, input.Description)
	require.Equal(t, "16", input.Rating)
}

func TestNewVideoResponseMapsAggregateView(t *testing.T) {
	videoID := uuid.New()
	mediaID := uuid.New()
	categoryID := uuid.New()
	year := int32(2021)
	now := time.Now().UTC()

	out := &vo.VideoOutput{
		ID:          videoID,
		Title:       "深入理解计算机系统",
		Description: "处理器、存储与并发",
		LaunchedAt:  &year,
		Duration:    180,
		Opened:      true,
		Published:   true,
		Rating:      "10",
		Categories:  []uuid.UUID{categoryID},
		Video: &vo.AudioVideoMediaView{
			ID:              mediaID,
			Checksum:        "abc123",
			Name:            "lecture.mp4",
			RawLocation:     "videos/raw/lecture.mp4",
			EncodedLocation: "videos/encoded/master.m3u8",
			Status:          "completed",
		},
		Banner: &vo.ImageMediaView{
			Checksum: "bn1",
			Name:     "banner.png",
			Location: "images/banner.png",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp := dto.NewVideoResponse(out)
	require.Equal(t, videoID.String(), resp.ID)
	require.Equal(t, out.Title, resp.Title)
	require.Equal(t, &year, resp.YearLaunched)
	require.Equal(t, []string{categoryID.String()}, resp.CategoriesID)
	require.Equal(t, []string{}, resp.GenresID)
	require.NotNil(t, resp.Video)
	require.Equal(t, mediaID.String(), resp.Video.ID)
	require.Equal(t, "videos/encoded/master.m3u8", resp.Video.EncodedLocation)
	require.Equal(t, "completed", resp.Video.Status)
	require.Nil(t, resp.Trailer)
	require.NotNil(t, resp.Banner)
	require.Equal(t, "images/banner.png", resp.Banner.Location)
	require.Nil(t, resp.Thumbnail)
	require.Equal(t, now, resp.CreatedAt)
}

func TestNewValidationErrorResponsePreservesOrder(t *testing.T) {
	errs := []validation.Error{
		{Message: "Some categories could not be found: 123"},
		{Message: "'title' should not be empty"},
	}
	resp := dto.NewValidationErrorResponse(errs)
	require.Equal(t, "Could not process the request", resp.Message)
	require.Len(t, resp.Errors, 2)
	require.Equal(t, errs[0].Message, resp.Errors[0].Message)
	require.Equal(t, errs[1].Message, resp.Errors[1].Message)
}
