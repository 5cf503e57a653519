package services

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/models/vo"
	"github.com/codeflix-tube/admin-catalog/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// VideoQueryService 封装视频只读与删除用例。
type VideoQueryService struct {
	repo      VideoRepo
	storage   MediaStorage
	txManager txmanager.Manager
	log       *log.Helper
}

// NewVideoQueryService 构造视频查询服务。
func NewVideoQueryService(repo VideoRepo, storage MediaStorage, tx txmanager.Manager, logger log.Logger) *VideoQueryService {
	return &VideoQueryService{
		repo:      repo,
		storage:   storage,
		txManager: tx,
		log:       log.NewHelper(logger),
	}
}

// GetVideo 查询单个视频聚合的完整视图。
func (s *VideoQueryService) GetVideo(ctx context.Context, videoID uuid.UUID) (*vo.VideoOutput, error) {
	var record *po.Video
	err := s.txManager.WithinReadOnlyTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		var repoErr error
		record, repoErr = s.repo.FindByID(txCtx, sess, videoID)
		return repoErr
	})
	if err != nil {
		if stdErrors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, NewInternalError(videoID, err)
	}
	return vo.NewVideoOutput(record), nil
}

// DeleteVideo 删除视频记录并清理其全部媒体资源。
// 记录删除成功后媒体清理失败仅记录日志，不回滚删除。
func (s *VideoQueryService) DeleteVideo(ctx context.Context, videoID uuid.UUID) (*vo.VideoDeleted, error) {
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		return s.repo.Delete(txCtx, sess, videoID)
	})
	if err != nil {
		if stdErrors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, NewInternalError(videoID, err)
	}
	if err := s.storage.ClearResources(ctx, videoID); err != nil {
		s.log.WithContext(ctx).Errorf("clear media resources failed: video_id=%s err=%v", videoID, err)
	}
	s.log.WithContext(ctx).Infof("DeleteVideo: video_id=%s", videoID)
	return vo.NewVideoDeleted(videoID, time.Now().UTC()), nil
}
