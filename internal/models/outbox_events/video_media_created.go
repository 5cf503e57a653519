package outboxevents

import (
	"time"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/google/uuid"
)

// NewVideoMediaCreatedEvent 基于聚合待发布事件构建领域事件。
func NewVideoMediaCreatedEvent(video *po.Video, pending po.MediaCreatedEvent, eventID uuid.UUID) (*DomainEvent, error) {
	if video == nil {
		return nil, ErrNilVideo
	}
	if eventID == uuid.Nil {
		return nil, ErrInvalidEventID
	}

	occurredAt := pending.OccurredOn
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	occurredAt = occurredAt.UTC()

	payload := &VideoMediaCreated{
		ResourceID: pending.ResourceID,
		FilePath:   pending.FilePath,
		OccurredOn: occurredAt,
	}

	event := &DomainEvent{
		EventID:       eventID,
		Kind:          KindVideoMediaCreated,
		AggregateID:   video.ID,
		AggregateType: AggregateTypeVideo,
		Version:       VersionFromTime(occurredAt),
		OccurredAt:    occurredAt,
		Payload:       payload,
	}
	return event, nil
}
