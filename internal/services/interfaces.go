package services

import (
	"context"

	"github.com/codeflix-tube/admin-catalog/internal/clients/mediastore"
	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/google/uuid"
)

// VideoRepo 定义视频聚合持久化能力。
type VideoRepo interface {
	Create(ctx context.Context, sess txmanager.Session, video *po.Video) (*po.Video, error)
	Update(ctx context.Context, sess txmanager.Session, video *po.Video) (*po.Video, error)
	FindByID(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.Video, error)
	Delete(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) error
}

// CategoryExistence 校验分类标识是否全部存在。
type CategoryExistence interface {
	ExistsByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID) ([]uuid.UUID, error)
}

// GenreExistence 校验题材标识是否全部存在。
type GenreExistence interface {
	ExistsByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID) ([]uuid.UUID, error)
}

// CastMemberExistence 校验演职人员标识是否全部存在。
type CastMemberExistence interface {
	ExistsByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID) ([]uuid.UUID, error)
}

// MediaStorage 定义媒体二进制的写入与清理能力。
type MediaStorage interface {
	StoreVideo(ctx context.Context, videoID uuid.UUID, resource po.Resource) (po.AudioVideoMedia, error)
	StoreImage(ctx context.Context, videoID uuid.UUID, resource po.Resource) (po.ImageMedia, error)
	RemoveObjects(ctx context.Context, locations []string) error
	ClearResources(ctx context.Context, videoID uuid.UUID) error
}

// OutboxEnqueuer 在业务事务内写入领域事件。
type OutboxEnqueuer interface {
	Enqueue(ctx context.Context, sess txmanager.Session, msg repositories.OutboxMessage) error
}

var (
	_ VideoRepo           = (*repositories.VideoRepository)(nil)
	_ CategoryExistence   = (*repositories.CategoryRepository)(nil)
	_ GenreExistence      = (*repositories.GenreRepository)(nil)
	_ CastMemberExistence = (*repositories.CastMemberRepository)(nil)
	_ MediaStorage        = (*mediastore.Storage)(nil)
	_ OutboxEnqueuer      = (*repositories.OutboxRepository)(nil)
)
