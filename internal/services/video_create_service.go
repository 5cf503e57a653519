package services

import (
	"context"
	"fmt"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/models/vo"
	"github.com/codeflix-tube/admin-catalog/internal/validation"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// VideoMediaInput 描述一次写请求携带的五个可选媒体资源。
type VideoMediaInput struct {
	Video         *po.Resource
	Trailer       *po.Resource
	Banner        *po.Resource
	Thumbnail     *po.Resource
	ThumbnailHalf *po.Resource
}

// CreateVideoInput 表示创建视频的完整输入。
type CreateVideoInput struct {
	Title       string
	Description string
	LaunchedAt  *int32
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string
	Categories  []uuid.UUID
	Genres      []uuid.UUID
	CastMembers []uuid.UUID
	Media       VideoMediaInput
}

// CreateVideoService 编排视频创建用例：
// 校验全部累积、媒体落盘、事务内持久化与事件入队，失败时补偿清理已写媒体。
type CreateVideoService struct {
	writer      *VideoWriter
	categories  CategoryExistence
	genres      GenreExistence
	castMembers CastMemberExistence
	storage     MediaStorage
	log         *log.Helper
}

// NewCreateVideoService 构造 CreateVideoService。
func NewCreateVideoService(
	writer *VideoWriter,
	categories CategoryExistence,
	genres GenreExistence,
	castMembers CastMemberExistence,
	storage MediaStorage,
	logger log.Logger,
) *CreateVideoService {
	return &CreateVideoService{
		writer:      writer,
		categories:  categories,
		genres:      genres,
		castMembers: castMembers,
		storage:     storage,
		log:         log.NewHelper(logger),
	}
}

// Execute 执行创建流程。校验失败返回 *ValidationError，
// 校验通过后的任何失败都会清理本次已写入的媒体再返回内部错误。
func (s *CreateVideoService) Execute(ctx context.Context, input CreateVideoInput) (*vo.VideoCreated, error) {
	rating, _ := po.RatingOf(input.Rating)
	video := po.NewVideo(
		input.Title,
		input.Description,
		input.LaunchedAt,
		input.Duration,
		input.Opened,
		input.Published,
		rating,
		po.NewIDSet(input.Categories...),
		po.NewIDSet(input.Genres...),
		po.NewIDSet(input.CastMembers...),
	)

	n := validation.NewNotification()
	if err := validateRelations(ctx, n, relationChecks{
		categories:  s.categories,
		genres:      s.genres,
		castMembers: s.castMembers,
	}, input.Categories, input.Genres, input.CastMembers); err != nil {
		return nil, NewInternalError(video.ID, err)
	}
	video.Validate(n)
	if n.HasError() {
		return nil, NewValidationError(n)
	}

	if _, err := attachMedia(ctx, s.storage, video, input.Media); err != nil {
		s.compensate(ctx, video.ID)
		return nil, NewInternalError(video.ID, err)
	}

	if err := s.writer.Create(ctx, video); err != nil {
		s.compensate(ctx, video.ID)
		return nil, NewInternalError(video.ID, err)
	}

	s.log.WithContext(ctx).Infof("CreateVideo: video_id=%s title=%s", video.ID, video.Title)
	return vo.NewVideoCreated(video), nil
}

// compensate 按前缀整组删除。新建视频的对象前缀只含本次请求写入的内容。
func (s *CreateVideoService) compensate(ctx context.Context, videoID uuid.UUID) {
	if err := s.storage.ClearResources(ctx, videoID); err != nil {
		s.log.WithContext(ctx).Errorf("clear media resources failed: video_id=%s err=%v", videoID, err)
	}
}

type relationChecks struct {
	categories  CategoryExistence
	genres      GenreExistence
	castMembers CastMemberExistence
}

// validateRelations 执行三类关联存在性校验，全部执行后再汇总结果。
func validateRelations(
	ctx context.Context,
	n *validation.Notification,
	checks relationChecks,
	categories, genres, castMembers []uuid.UUID,
) error {
	if err := checkAggregateExists(ctx, n, checks.categories, "categories", categories); err != nil {
		return err
	}
	if err := checkAggregateExists(ctx, n, checks.genres, "genres", genres); err != nil {
		return err
	}
	if err := checkAggregateExists(ctx, n, checks.castMembers, "cast members", castMembers); err != nil {
		return err
	}
	return nil
}

// attachMedia 依次写入请求携带的媒体资源并挂载到聚合槽位。
// 音视频槽位（video/trailer）挂载时会在聚合上登记待发布的转码触发事件。
// 返回本次已写入的对象位置，供失败补偿按名回收。
func attachMedia(ctx context.Context, storage MediaStorage, video *po.Video, media VideoMediaInput) ([]string, error) {
	slots := []struct {
		kind     po.MediaKind
		resource *po.Resource
	}{
		{po.MediaKindVideo, media.Video},
		{po.MediaKindTrailer, media.Trailer},
		{po.MediaKindBanner, media.Banner},
		{po.MediaKindThumbnail, media.Thumbnail},
		{po.MediaKindThumbnailHalf, media.ThumbnailHalf},
	}
	var written []string
	for _, slot := range slots {
		if slot.resource == nil {
			continue
		}
		res := *slot.resource
		res.Kind = slot.kind
		if slot.kind.IsRawVideo() {
			stored, err := storage.StoreVideo(ctx, video.ID, res)
			if err != nil {
				return written, fmt.Errorf("store %s media: %w", slot.kind, err)
			}
			written = append(written, stored.RawLocation)
			if slot.kind == po.MediaKindVideo {
				video.SetVideo(stored)
			} else {
				video.SetTrailer(stored)
			}
			continue
		}
		stored, err := storage.StoreImage(ctx, video.ID, res)
		if err != nil {
			return written, fmt.Errorf("store %s media: %w", slot.kind, err)
		}
		written = append(written, stored.Location)
		switch slot.kind {
		case po.MediaKindBanner:
			video.SetBanner(stored)
		case po.MediaKindThumbnail:
			video.SetThumbnail(stored)
		case po.MediaKindThumbnailHalf:
			video.SetThumbnailHalf(stored)
		}
	}
	return written, nil
}
