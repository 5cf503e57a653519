package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	outboxevents "github.com/codeflix-tube/admin-catalog/internal/models/outbox_events"
	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// VideoWriter 负责在单个事务内持久化视频聚合并写入 Outbox 领域事件。
// 聚合上待发布的媒体事件与数据库写入同事务提交，保证两者原子可见。
type VideoWriter struct {
	repo      VideoRepo
	outbox    OutboxEnqueuer
	txManager txmanager.Manager
	metrics   *outboxMetrics
	log       *log.Helper
}

// NewVideoWriter 构造 VideoWriter。
func NewVideoWriter(repo VideoRepo, outbox OutboxEnqueuer, tx txmanager.Manager, logger log.Logger) *VideoWriter {
	return &VideoWriter{
		repo:      repo,
		outbox:    outbox,
		txManager: tx,
		metrics:   newOutboxMetrics("video_writer"),
		log:       log.NewHelper(logger),
	}
}

// Create 在事务内插入聚合并写入其全部待发布事件。
func (w *VideoWriter) Create(ctx context.Context, video *po.Video) error {
	return w.save(ctx, video, true)
}

// Update 在事务内整体覆盖聚合并写入其全部待发布事件。
func (w *VideoWriter) Update(ctx context.Context, video *po.Video) error {
	return w.save(ctx, video, false)
}

func (w *VideoWriter) save(ctx context.Context, video *po.Video, create bool) error {
	if video == nil {
		return fmt.Errorf("save video: video is nil")
	}
	err := w.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		var repoErr error
		if create {
			_, repoErr = w.repo.Create(txCtx, sess, video)
		} else {
			_, repoErr = w.repo.Update(txCtx, sess, video)
		}
		if repoErr != nil {
			return repoErr
		}
		for _, pending := range video.Events() {
			evt, buildErr := outboxevents.NewVideoMediaCreatedEvent(video, pending, uuid.New())
			if buildErr != nil {
				return fmt.Errorf("build media created event: %w", buildErr)
			}
			if err := w.enqueueOutbox(txCtx, sess, evt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	// 事件仅在事务成功提交后清空，失败时保留以便重试。
	video.ClearEvents()
	return nil
}

func (w *VideoWriter) enqueueOutbox(ctx context.Context, sess txmanager.Session, event *outboxevents.DomainEvent) error {
	payload, marshalErr := json.Marshal(event.Payload)
	if marshalErr != nil {
		w.metrics.recordFailure(ctx, event.Kind.String(), marshalErr)
		return fmt.Errorf("marshal event payload: %w", marshalErr)
	}

	attributes := outboxevents.BuildAttributes(event, outboxevents.SchemaVersionV1, outboxevents.TraceIDFromContext(ctx))

	availableAt := event.OccurredAt
	if availableAt.IsZero() {
		availableAt = time.Now().UTC()
	}

	msg := repositories.OutboxMessage{
		EventID:       event.EventID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.Kind.String(),
		Payload:       payload,
		Headers:       attributes,
		AvailableAt:   availableAt,
	}
	if err := w.outbox.Enqueue(ctx, sess, msg); err != nil {
		w.metrics.recordFailure(ctx, event.Kind.String(), err)
		return fmt.Errorf("enqueue outbox: %w", err)
	}
	w.metrics.recordSuccess(ctx, event.Kind.String(), event.OccurredAt)
	return nil
}
