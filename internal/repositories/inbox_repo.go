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

// InboxMessage 表示一条待记录的编码器回调事件。
type InboxMessage = store.InboxMessage

// InboxEvent 表示已落库的回调事件行。
type InboxEvent = store.InboxEvent

// InboxRepository 封装 catalog.inbox_events 的去重记录，保证回调重放幂等。
type InboxRepository struct {
	store *store.Repository
}

// NewInboxRepository 构建 Inbox 仓储，schema 取自消息配置。
func NewInboxRepository(db *pgxpool.Pool, logger log.Logger, cfg outboxcfg.Config) *InboxRepository {
	repo, err := outboxpkg.NewRepository(db, logger, outboxpkg.RepositoryOptions{Schema: cfg.Schema})
	if err == nil {
		return &InboxRepository{store: repo}
	}
	log.NewHelper(logger).Errorw("msg", "init inbox repository failed", "error", err)
	return &InboxRepository{store: store.NewRepository(db, logger)}
}

// Insert 在事务内记录回调事件，重复消息由唯一键拦截。
func (r *InboxRepository) Insert(ctx context.Context, sess txmanager.Session, event InboxMessage) error {
	return r.store.RecordInboxEvent(ctx, sess, event)
}

// MarkProcessed 标记事件处理成功。
func (r *InboxRepository) MarkProcessed(ctx context.Context, sess txmanager.Session, eventID uuid.UUID, processedAt time.Time) error {
	return r.store.MarkInboxProcessed(ctx, sess, eventID, processedAt)
}

// RecordError 写入事件处理失败的错误信息。
func (r *InboxRepository) RecordError(ctx context.Context, sess txmanager.Session, eventID uuid.UUID, lastErr string) error {
	return r.store.RecordInboxError(ctx, sess, eventID, lastErr)
}

// Shared 暴露底层共享仓储，供回调 Runner 使用。
func (r *InboxRepository) Shared() *store.Repository {
	return r.store
}
