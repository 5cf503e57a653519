package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/repositories"
	"github.com/codeflix-tube/admin-catalog/internal/services"
	"github.com/codeflix-tube/admin-catalog/internal/services/mocks"

	"github.com/bionicotaku/lingo-utils/txmanager"
	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type createFixture struct {
	repo        *mocks.MockVideoRepo
	outbox      *mocks.MockOutboxEnqueuer
	categories  *mocks.MockCategoryExistence
	genres      *mocks.MockGenreExistence
	castMembers *mocks.MockCastMemberExistence
	storage     *mocks.MockMediaStorage
	svc         *services.CreateVideoService
}

func newCreateFixture(t *testing.T) (*gomock.Controller, *createFixture) {
	ctrl := gomock.NewController(t)
	logger := log.NewStdLogger(io.Discard)

	f := &createFixture{
		repo:        mocks.NewMockVideoRepo(ctrl),
		outbox:      mocks.NewMockOutboxEnqueuer(ctrl),
		categories:  mocks.NewMockCategoryExistence(ctrl),
		genres:      mocks.NewMockGenreExistence(ctrl),
		castMembers: mocks.NewMockCastMemberExistence(ctrl),
		storage:     mocks.NewMockMediaStorage(ctrl),
	}
	writer := services.NewVideoWriter(f.repo, f.outbox, fakeTxManager{}, logger)
	f.svc = services.NewCreateVideoService(writer, f.categories, f.genres, f.castMembers, f.storage, logger)
	return ctrl, f
}

func validCreateInput(categories []uuid.UUID) services.CreateVideoInput {
	return services.CreateVideoInput{
		Title:       "System Design Interviews",
		Description: "A deep dive into large scale distributed systems",
		LaunchedAt:  ptrInt32(2022),
		Duration:    120.5,
		Opened:      true,
		Published:   false,
		Rating:      "L",
		Categories:  categories,
	}
}

func TestCreateVideoService_SuccessWithoutMedia(t *testing.T) {
	t.Parallel()

	ctrl, f := newCreateFixture(t)
	defer ctrl.Finish()

	categoryID := uuid.New()
	f.categories.EXPECT().ExistsByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{categoryID}).
		Return([]uuid.UUID{categoryID}, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ txmanager.Session, video *po.Video) (*po.Video, error) {
			require.Equal(t, "System Design Interviews", video.Title)
			require.True(t, video.Categories.Contains(categoryID))
			return video, nil
		})

	out, err := f.svc.Execute(context.Background(), validCreateInput([]uuid.UUID{categoryID}))
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEqual(t, uuid.Nil, out.VideoID)
	require.False(t, out.CreatedAt.IsZero())
}

func TestCreateVideoService_MediaEnqueuesOutboxEvents(t *testing.T) {
	t.Parallel()

	ctrl, f := newCreateFixture(t)
	defer ctrl.Finish()

	f.storage.EXPECT().StoreVideo(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, videoID uuid.UUID, res po.Resource) (po.AudioVideoMedia, error) {
			require.Equal(t, po.MediaKindVideo, res.Kind)
			return po.NewAudioVideoMedia(res.Checksum, res.Name, fmt.Sprintf("videos/%s/raw/%s", videoID, res.Name)), nil
		})
	f.storage.EXPECT().StoreImage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, videoID uuid.UUID, res po.Resource) (po.ImageMedia, error) {
			require.Equal(t, po.MediaKindBanner, res.Kind)
			return po.NewImageMedia(res.Checksum, res.Name, fmt.Sprintf("videos/%s/%s", videoID, res.Name)), nil
		})
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ txmanager.Session, video *po.Video) (*po.Video, error) {
			return video, nil
		})

	var enqueued []repositories.OutboxMessage
	f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ txmanager.Session, msg repositories.OutboxMessage) error {
			enqueued = append(enqueued, msg)
			return nil
		})

	input := validCreateInput(nil)
	input.Media = services.VideoMediaInput{
		Video:  &po.Resource{Checksum: "abc123", Content: []byte("raw"), ContentType: "video/mp4", Name: "movie.mp4"},
		Banner: &po.Resource{Checksum: "def456", Content: []byte("img"), ContentType: "image/png", Name: "banner.png"},
	}

	out, err := f.svc.Execute(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, out)

	// 仅音视频槽位触发转码事件，图片槽位不产生事件。
	require.Len(t, enqueued, 1)
	require.Equal(t, "catalog.video.media.created", enqueued[0].EventType)
	require.NotEqual(t, uuid.Nil, enqueued[0].EventID)
	require.Contains(t, string(enqueued[0].Payload), "resource_id")
	require.Equal(t, "catalog.video.media.created", enqueued[0].Headers["event_type"])
}

func TestCreateVideoService_AccumulatesAllValidationErrors(t *testing.T) {
	t.Parallel()

	ctrl, f := newCreateFixture(t)
	defer ctrl.Finish()

	missingCategory := uuid.New()
	f.categories.EXPECT().ExistsByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{missingCategory}).
		Return(nil, nil)

	input := services.CreateVideoInput{
		Title:       "",
		Description: "",
		Rating:      "UNRATED",
		Categories:  []uuid.UUID{missingCategory},
	}

	_, err := f.svc.Execute(context.Background(), input)
	require.Error(t, err)

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)

	messages := make([]string, 0)
	for _, e := range validationErr.Errors() {
		messages = append(messages, e.Message)
	}
	require.Equal(t, []string{
		fmt.Sprintf("Some categories could not be found: %s", missingCategory),
		"'title' should not be empty",
		"'description' should not be empty",
		"'launchedAt' should not be null",
		"'rating' should not be null",
	}, messages)
}

func TestCreateVideoService_MissingRelationsKeepRequestOrder(t *testing.T) {
	t.Parallel()

	ctrl, f := newCreateFixture(t)
	defer ctrl.Finish()

	first := uuid.New()
	second := uuid.New()
	third := uuid.New()
	requested := []uuid.UUID{first, second, first, third}

	f.categories.EXPECT().ExistsByIDs(gomock.Any(), gomock.Any(), requested).
		Return([]uuid.UUID{second}, nil)

	input := validCreateInput(requested)

	_, err := f.svc.Execute(context.Background(), input)
	require.Error(t, err)

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors(), 1)
	require.Equal(t,
		fmt.Sprintf("Some categories could not be found: %s, %s", first, third),
		validationErr.Errors()[0].Message)
}

func TestCreateVideoService_ExistenceLookupFailureIsInternal(t *testing.T) {
	t.Parallel()

	ctrl, f := newCreateFixture(t)
	defer ctrl.Finish()

	categoryID := uuid.New()
	f.categories.EXPECT().ExistsByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{categoryID}).
		Return(nil, errors.New("connection refused"))

	_, err := f.svc.Execute(context.Background(), validCreateInput([]uuid.UUID{categoryID}))
	require.Error(t, err)

	var validationErr *services.ValidationError
	require.False(t, errors.As(err, &validationErr))
	require.Equal(t, int32(500), kerrors.FromError(err).Code)
}

func TestCreateVideoService_StoreFailureCompensates(t *testing.T) {
	t.Parallel()

	ctrl, f := newCreateFixture(t)
	defer ctrl.Finish()

	f.storage.EXPECT().StoreVideo(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(po.AudioVideoMedia{}, errors.New("bucket unavailable"))
	f.storage.EXPECT().ClearResources(gomock.Any(), gomock.Any()).Times(1).Return(nil)

	input := validCreateInput(nil)
	input.Media = services.VideoMediaInput{
		Video: &po.Resource{Checksum: "abc123", Content: []byte("raw"), ContentType: "video/mp4", Name: "movie.mp4"},
	}

	_, err := f.svc.Execute(context.Background(), input)
	require.Error(t, err)
	require.Equal(t, int32(500), kerrors.FromError(err).Code)
	require.Equal(t, "VIDEO_INTERNAL_ERROR", kerrors.FromError(err).Reason)
}

func TestCreateVideoService_PersistFailureCompensates(t *testing.T) {
	t.Parallel()

	ctrl, f := newCreateFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("insert failed"))
	f.storage.EXPECT().ClearResources(gomock.Any(), gomock.Any()).Times(1).Return(nil)

	_, err := f.svc.Execute(context.Background(), validCreateInput(nil))
	require.Error(t, err)
	require.Equal(t, "VIDEO_INTERNAL_ERROR", kerrors.FromError(err).Reason)
}
