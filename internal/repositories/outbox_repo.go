package repositories

import (
	"context"
	"time"

	outboxpkg "github.com/bionicotaku/lingo-utils/outbox"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/outbox/store"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutboxMessage 描述需要写入 catalog.outbox_events 的领域事件数据。
// VideoMediaCreated 事件与视频聚合持久化处于同一事务。
type OutboxMessage = store.Message

// OutboxEvent 表示从数据库读出的待发布事件行。
type OutboxEvent = store.Event

// OutboxRepository 面向服务层封装事件出站表的读写。
type OutboxRepository struct {
	store *store.Repository
}

// NewOutboxRepository 构建 Outbox 仓储，schema 取自消息配置（默认 catalog）。
func NewOutboxRepository(db *pgxpool.Pool, logger log.Logger, cfg outboxcfg.Config) *OutboxRepository {
	repo, err := outboxpkg.NewRepository(db, logger, outboxpkg.RepositoryOptions{Schema: cfg.Schema})
	if err == nil {
		return &OutboxRepository{store: repo}
	}
	log.NewHelper(logger).Errorw("msg", "init outbox repository failed", "error", err)
	return &OutboxRepository{store: store.NewRepository(db, logger)}
}

// Enqueue 在当前事务内插入一条待发布事件。
func (r *OutboxRepository) Enqueue(ctx context.Context, sess txmanager.Session, msg OutboxMessage) error {
	return r.store.Enqueue(ctx, sess, msg)
}

// ClaimPending 认领一批到期的待发布事件并加锁。
func (r *OutboxRepository) ClaimPending(ctx context.Context, availableBefore, staleBefore time.Time, limit int, lockToken string) ([]OutboxEvent, error) {
	return r.store.ClaimPending(ctx, availableBefore, staleBefore, limit, lockToken)
}

// MarkPublished 将事件置为已发布。
func (r *OutboxRepository) MarkPublished(ctx context.Context, sess txmanager.Session, eventID uuid.UUID, lockToken string, publishedAt time.Time) error {
	return r.store.MarkPublished(ctx, sess, eventID, lockToken, publishedAt)
}

// Reschedule 在发布失败后把事件推迟到 nextAvailable 并记录错误。
func (r *OutboxRepository) Reschedule(ctx context.Context, sess txmanager.Session, eventID uuid.UUID, lockToken string, nextAvailable time.Time, lastErr string) error {
	return r.store.Reschedule(ctx, sess, eventID, lockToken, nextAvailable, lastErr)
}

// CountPending 返回尚未发布的事件数量。
func (r *OutboxRepository) CountPending(ctx context.Context) (int64, error) {
	return r.store.CountPending(ctx)
}

// Shared 暴露底层共享仓储，供发布 Runner 使用。
func (r *OutboxRepository) Shared() *store.Repository {
	return r.store
}
