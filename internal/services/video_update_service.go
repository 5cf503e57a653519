package services

import (
	"context"
	stdErrors "errors"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/models/vo"
	"github.com/codeflix-tube/admin-catalog/internal/repositories"
	"github.com/codeflix-tube/admin-catalog/internal/validation"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// UpdateVideoInput 表示整体更新视频的完整输入。
// 所有字段无条件覆盖现有值，缺省即清空。
type UpdateVideoInput struct {
	VideoID     uuid.UUID
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

// UpdateVideoService 编排视频整体更新用例，流程与创建一致：
// 加载聚合、全量替换、累积校验、媒体落盘、事务持久化，失败时补偿清理。
type UpdateVideoService struct {
	writer      *VideoWriter
	repo        VideoRepo
	categories  CategoryExistence
	genres      GenreExistence
	castMembers CastMemberExistence
	storage     MediaStorage
	log         *log.Helper
}

// NewUpdateVideoService 构造 UpdateVideoService。
func NewUpdateVideoService(
	writer *VideoWriter,
	repo VideoRepo,
	categories CategoryExistence,
	genres GenreExistence,
	castMembers CastMemberExistence,
	storage MediaStorage,
	logger log.Logger,
) *UpdateVideoService {
	return &UpdateVideoService{
		writer:      writer,
		repo:        repo,
		categories:  categories,
		genres:      genres,
		castMembers: castMembers,
		storage:     storage,
		log:         log.NewHelper(logger),
	}
}

// Execute 执行更新流程。目标不存在返回 ErrVideoNotFound；
// 校验失败返回 *ValidationError；校验通过后的失败清理本次已写媒体再返回内部错误。
func (s *UpdateVideoService) Execute(ctx context.Context, input UpdateVideoInput) (*vo.VideoUpdated, error) {
	video, err := s.repo.FindByID(ctx, nil, input.VideoID)
	if err != nil {
		if stdErrors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, NewInternalError(input.VideoID, err)
	}

	rating, _ := po.RatingOf(input.Rating)
	video.Update(
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

	written, err := attachMedia(ctx, s.storage, video, input.Media)
	if err != nil {
		s.compensate(ctx, video.ID, written)
		return nil, NewInternalError(video.ID, err)
	}

	if err := s.writer.Update(ctx, video); err != nil {
		s.compensate(ctx, video.ID, written)
		return nil, NewInternalError(video.ID, err)
	}

	s.log.WithContext(ctx).Infof("UpdateVideo: video_id=%s title=%s", video.ID, video.Title)
	return vo.NewVideoUpdated(video), nil
}

// compensate 仅回收本次请求写入的对象；历史媒体仍被数据库现存行引用，不得触碰。
func (s *UpdateVideoService) compensate(ctx context.Context, videoID uuid.UUID, written []string) {
	if len(written) == 0 {
		return
	}
	if err := s.storage.RemoveObjects(ctx, written); err != nil {
		s.log.WithContext(ctx).Errorf("remove media objects failed: video_id=%s err=%v", videoID, err)
	}
}
