package services_test

import (
	"context"
	"io"
	"testing"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/repositories"
	"github.com/codeflix-tube/admin-catalog/internal/services"
	"github.com/codeflix-tube/admin-catalog/internal/services/mocks"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newMediaStatusService(t *testing.T) (*gomock.Controller, *mocks.MockVideoRepo, *services.MediaStatusService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVideoRepo(ctrl)
	svc := services.NewMediaStatusService(repo, fakeTxManager{}, log.NewStdLogger(io.Discard))
	return ctrl, repo, svc
}

func videoWithPendingMedia() (*po.Video, po.AudioVideoMedia) {
	video := po.NewVideo("Title", "Description", ptrInt32(2021), 80, true, true, po.RatingL, nil, nil, nil)
	media := po.NewAudioVideoMedia("cafe12", "movie.mp4", "videos/raw/movie.mp4")
	video.SetVideo(media)
	video.ClearEvents()
	return video, media
}

func TestMediaStatusService_NotFound(t *testing.T) {
	t.Parallel()

	ctrl, repo, svc := newMediaStatusService(t)
	defer ctrl.Finish()

	videoID := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), videoID).
		Return(nil, repositories.ErrVideoNotFound)

	err := svc.Execute(context.Background(), services.MediaStatusInput{
		VideoID:    videoID,
		ResourceID: uuid.New(),
		Status:     po.MediaStatusCompleted,
	})
	require.ErrorIs(t, err, services.ErrVideoNotFound)
}

func TestMediaStatusService_CompletedSetsEncodedLocation(t *testing.T) {
	t.Parallel()

	ctrl, repo, svc := newMediaStatusService(t)
	defer ctrl.Finish()

	video, media := videoWithPendingMedia()
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), video.ID).Return(video, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ txmanager.Session, updated *po.Video) (*po.Video, error) {
			require.NotNil(t, updated.Video)
			require.Equal(t, po.MediaStatusCompleted, updated.Video.Status)
			require.Equal(t, "videos/encoded/master.m3u8", updated.Video.EncodedLocation)
			require.Equal(t, media.ID, updated.Video.ID)
			return updated, nil
		})

	err := svc.Execute(context.Background(), services.MediaStatusInput{
		VideoID:    video.ID,
		ResourceID: media.ID,
		Status:     po.MediaStatusCompleted,
		Folder:     "videos/encoded/",
		Filename:   "master.m3u8",
	})
	require.NoError(t, err)
}

func TestMediaStatusService_UnmatchedResourceIsNoop(t *testing.T) {
	t.Parallel()

	ctrl, repo, svc := newMediaStatusService(t)
	defer ctrl.Finish()

	video, _ := videoWithPendingMedia()
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), video.ID).Return(video, nil)
	// 无匹配槽位时不应触发持久化。

	err := svc.Execute(context.Background(), services.MediaStatusInput{
		VideoID:    video.ID,
		ResourceID: uuid.New(),
		Status:     po.MediaStatusProcessing,
	})
	require.NoError(t, err)
}

func TestMediaStatusService_CompletedNotRegressed(t *testing.T) {
	t.Parallel()

	ctrl, repo, svc := newMediaStatusService(t)
	defer ctrl.Finish()

	video, media := videoWithPendingMedia()
	require.True(t, video.AdvanceMedia(media.ID, po.MediaStatusCompleted, "videos/encoded/master.m3u8"))
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), video.ID).Return(video, nil)
	// 终态槽位收到迟到的 processing 回调时保持终态不回退。
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ txmanager.Session, updated *po.Video) (*po.Video, error) {
			require.Equal(t, po.MediaStatusCompleted, updated.Video.Status)
			require.Equal(t, "videos/encoded/master.m3u8", updated.Video.EncodedLocation)
			return updated, nil
		})

	err := svc.Execute(context.Background(), services.MediaStatusInput{
		VideoID:    video.ID,
		ResourceID: media.ID,
		Status:     po.MediaStatusProcessing,
	})
	require.NoError(t, err)
	require.Equal(t, po.MediaStatusCompleted, video.Video.Status)
}

func TestMediaStatusService_ReplayedSignalIsIdempotent(t *testing.T) {
	t.Parallel()

	ctrl, repo, svc := newMediaStatusService(t)
	defer ctrl.Finish()

	video, media := videoWithPendingMedia()
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), video.ID).Return(video, nil).Times(2)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ txmanager.Session, updated *po.Video) (*po.Video, error) {
			require.Equal(t, po.MediaStatusCompleted, updated.Video.Status)
			require.Equal(t, "videos/encoded/master.m3u8", updated.Video.EncodedLocation)
			require.Equal(t, media.ID, updated.Video.ID)
			return updated, nil
		}).Times(2)

	input := services.MediaStatusInput{
		VideoID:    video.ID,
		ResourceID: media.ID,
		Status:     po.MediaStatusCompleted,
		Folder:     "videos/encoded/",
		Filename:   "master.m3u8",
	}
	require.NoError(t, svc.Execute(context.Background(), input))
	first := *video.Video

	// 相同回调重放后聚合可观测状态不变。
	require.NoError(t, svc.Execute(context.Background(), input))
	require.Equal(t, first, *video.Video)
	require.Nil(t, video.Trailer)
}

func TestMediaStatusService_ErrorStatusPersisted(t *testing.T) {
	t.Parallel()

	ctrl, repo, svc := newMediaStatusService(t)
	defer ctrl.Finish()

	video, media := videoWithPendingMedia()
	repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), video.ID).Return(video, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ txmanager.Session, updated *po.Video) (*po.Video, error) {
			require.Equal(t, po.MediaStatusError, updated.Video.Status)
			require.Empty(t, updated.Video.EncodedLocation)
			return updated, nil
		})

	err := svc.Execute(context.Background(), services.MediaStatusInput{
		VideoID:    video.ID,
		ResourceID: media.ID,
		Status:     po.MediaStatusError,
		Folder:     "videos/encoded/",
		Filename:   "master.m3u8",
	})
	require.NoError(t, err)
}
