package services

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// MediaStatusInput 描述编码器回调携带的媒体状态。
type MediaStatusInput struct {
	VideoID    uuid.UUID
	ResourceID uuid.UUID
	Status     po.MediaStatus
	Folder     string
	Filename   string
}

// EncodedLocation 拼接编码产物的存储位置，仅在完成态有意义。
func (in MediaStatusInput) EncodedLocation() string {
	parts := make([]string, 0, 2)
	if in.Folder != "" {
		parts = append(parts, strings.TrimSuffix(in.Folder, "/"))
	}
	if in.Filename != "" {
		parts = append(parts, in.Filename)
	}
	return strings.Join(parts, "/")
}

// MediaStatusService 将编码器回调的状态收敛到视频聚合的媒体槽位。
// 回调按资源标识匹配槽位，无匹配或状态不推进时静默忽略，保证重放幂等。
type MediaStatusService struct {
	repo      VideoRepo
	txManager txmanager.Manager
	log       *log.Helper
}

// NewMediaStatusService 构造 MediaStatusService。
func NewMediaStatusService(repo VideoRepo, tx txmanager.Manager, logger log.Logger) *MediaStatusService {
	return &MediaStatusService{
		repo:      repo,
		txManager: tx,
		log:       log.NewHelper(logger),
	}
}

// Execute 在独立事务内执行一次状态收敛。
func (s *MediaStatusService) Execute(ctx context.Context, input MediaStatusInput) error {
	return s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		return s.Apply(txCtx, sess, input)
	})
}

// Apply 在调用方提供的会话内加载聚合、推进匹配槽位的状态并持久化。
// 目标视频不存在返回 ErrVideoNotFound，视为致命错误不重试。
func (s *MediaStatusService) Apply(ctx context.Context, sess txmanager.Session, input MediaStatusInput) error {
	video, err := s.repo.FindByID(ctx, sess, input.VideoID)
	if err != nil {
		if stdErrors.Is(err, repositories.ErrVideoNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	encodedLocation := ""
	if input.Status == po.MediaStatusCompleted {
		encodedLocation = input.EncodedLocation()
	}

	if !video.AdvanceMedia(input.ResourceID, input.Status, encodedLocation) {
		s.log.WithContext(ctx).Debugf(
			"media status ignored: video_id=%s resource_id=%s status=%s",
			input.VideoID, input.ResourceID, input.Status)
		return nil
	}

	if _, err := s.repo.Update(ctx, sess, video); err != nil {
		return err
	}
	s.log.WithContext(ctx).Infof(
		"media status applied: video_id=%s resource_id=%s status=%s",
		input.VideoID, input.ResourceID, input.Status)
	return nil
}
