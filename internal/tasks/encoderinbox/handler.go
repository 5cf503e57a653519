package encoderinbox

import (
	"context"
	"fmt"
	"time"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/services"

	"github.com/bionicotaku/lingo-utils/outbox/store"
	"github.com/bionicotaku/lingo-utils/txmanager"
	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// mediaStatusApplier 定义 Handler 所需的状态收敛能力。
type mediaStatusApplier interface {
	Apply(ctx context.Context, sess txmanager.Session, input services.MediaStatusInput) error
}

var _ mediaStatusApplier = (*services.MediaStatusService)(nil)

// EventHandler 处理编码器回调，在 Inbox 事务内收敛媒体状态。
type EventHandler struct {
	applier mediaStatusApplier
	log     *log.Helper
	metrics *metrics
}

// NewEventHandler 构造编码器回调处理器。
func NewEventHandler(applier mediaStatusApplier, logger log.Logger, metrics *metrics) *EventHandler {
	return &EventHandler{
		applier: applier,
		log:     log.NewHelper(logger),
		metrics: metrics,
	}
}

// Handle 校验载荷并将状态应用到视频聚合。
// 载荷非法或目标视频不存在视为致命错误，标记失败不重试；
// 未识别的状态标签静默跳过。
func (h *EventHandler) Handle(ctx context.Context, sess txmanager.Session, evt *Event, _ *store.InboxEvent) error {
	if evt == nil {
		return fmt.Errorf("encoderinbox: nil event")
	}

	videoID, err := uuid.Parse(evt.VideoID)
	if err != nil {
		return kerrors.BadRequest("invalid-video-id", "invalid video_id")
	}
	resourceID, err := uuid.Parse(evt.ResourceID)
	if err != nil {
		return kerrors.BadRequest("invalid-resource-id", "invalid resource_id")
	}
	status, ok := po.MediaStatusOf(evt.Status)
	if !ok {
		h.log.WithContext(ctx).Warnf("skip unknown media status: status=%s video=%s resource=%s",
			evt.Status, videoID, resourceID)
		return nil
	}

	input := services.MediaStatusInput{
		VideoID:    videoID,
		ResourceID: resourceID,
		Status:     status,
		Folder:     evt.Folder,
		Filename:   evt.Filename,
	}
	if err := h.applier.Apply(ctx, sess, input); err != nil {
		if h.metrics != nil {
			h.metrics.recordFailure(ctx)
		}
		return err
	}

	if h.metrics != nil {
		h.metrics.recordSuccess(ctx, evt.OccurredAt.UTC(), time.Now())
	}
	return nil
}
