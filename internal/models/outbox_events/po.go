package outboxevents

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind 标识领域事件类型。
type Kind int

// 领域事件类型常量。
const (
	// KindUnknown 表示未识别的事件类型。
	KindUnknown Kind = iota
	// KindVideoMediaCreated 表示媒体资源已挂载、等待转码触发的事件。
	KindVideoMediaCreated
)

func (k Kind) String() string {
	switch k {
	case KindVideoMediaCreated:
		return "catalog.video.media.created"
	default:
		return "catalog.event.unknown"
	}
}

// DomainEvent 表示领域层生成的标准事件。
type DomainEvent struct {
	EventID       uuid.UUID
	Kind          Kind
	AggregateID   uuid.UUID
	AggregateType string
	Version       int64
	OccurredAt    time.Time
	Payload       any
}

// VideoMediaCreated 描述媒体挂载事件载荷，供外部转码触发器消费。
type VideoMediaCreated struct {
	ResourceID uuid.UUID `json:"resource_id"`
	FilePath   string    `json:"file_path"`
	OccurredOn time.Time `json:"occurred_on"`
}

const (
	// AggregateTypeVideo 标识视频聚合类型，供 Outbox headers / attributes 使用。
	AggregateTypeVideo = "catalog.video"
	// SchemaVersionV1 描述事件载荷的当前 schema 版本。
	SchemaVersionV1 = "v1"
)

var (
	// ErrNilVideo 表示构建事件时视频聚合为空。
	ErrNilVideo = fmt.Errorf("event builder: video is nil")
	// ErrInvalidEventID 表示未提供合法的事件 ID。
	ErrInvalidEventID = fmt.Errorf("event builder: event id is required")
)
