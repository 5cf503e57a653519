package encoderinbox

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/services"

	"github.com/bionicotaku/lingo-utils/txmanager"
	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

type applierStub struct {
	inputs []services.MediaStatusInput
	err    error
}

func (s *applierStub) Apply(_ context.Context, _ txmanager.Session, input services.MediaStatusInput) error {
	s.inputs = append(s.inputs, input)
	return s.err
}

func newTestHandler(applier *applierStub) *EventHandler {
	return NewEventHandler(applier, log.NewStdLogger(io.Discard), nil)
}

func TestHandlerAppliesStatus(t *testing.T) {
	applier := &applierStub{}
	handler := newTestHandler(applier)

	evt := &Event{
		VideoID:    "7b61d0ed-1111-4c3e-9d93-aaaaaaaaaaaa",
		ResourceID: "8c22ebce-2222-4e87-bbbb-bbbbbbbbbbbb",
		Status:     "completed",
		Folder:     "videos/encoded",
		Filename:   "master.m3u8",
		OccurredAt: time.Now().UTC(),
	}
	if err := handler.Handle(context.Background(), nil, evt, nil); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(applier.inputs) != 1 {
		t.Fatalf("expected one apply call, got %d", len(applier.inputs))
	}
	input := applier.inputs[0]
	if input.VideoID.String() != evt.VideoID || input.ResourceID.String() != evt.ResourceID {
		t.Fatalf("identifier mismatch: %+v", input)
	}
	if input.Status != po.MediaStatusCompleted {
		t.Fatalf("status mismatch: %s", input.Status)
	}
	if input.EncodedLocation() != "videos/encoded/master.m3u8" {
		t.Fatalf("encoded location mismatch: %q", input.EncodedLocation())
	}
}

func TestHandlerRejectsInvalidIdentifiers(t *testing.T) {
	applier := &applierStub{}
	handler := newTestHandler(applier)

	err := handler.Handle(context.Background(), nil, &Event{VideoID: "broken", ResourceID: "x", Status: "completed"}, nil)
	if err == nil {
		t.Fatalf("expected error for invalid video id")
	}
	if kerrors.FromError(err).Code != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
	if len(applier.inputs) != 0 {
		t.Fatalf("applier must not run on invalid payload")
	}
}

func TestHandlerSkipsUnknownStatus(t *testing.T) {
	applier := &applierStub{}
	handler := newTestHandler(applier)

	evt := &Event{
		VideoID:    "7b61d0ed-1111-4c3e-9d93-aaaaaaaaaaaa",
		ResourceID: "8c22ebce-2222-4e87-bbbb-bbbbbbbbbbbb",
		Status:     "transcoding",
	}
	if err := handler.Handle(context.Background(), nil, evt, nil); err != nil {
		t.Fatalf("unknown status must be skipped, got %v", err)
	}
	if len(applier.inputs) != 0 {
		t.Fatalf("applier must not run for unknown status")
	}
}

func TestHandlerPropagatesApplyError(t *testing.T) {
	applier := &applierStub{err: errors.New("apply failed")}
	handler := newTestHandler(applier)

	evt := &Event{
		VideoID:    "7b61d0ed-1111-4c3e-9d93-aaaaaaaaaaaa",
		ResourceID: "8c22ebce-2222-4e87-bbbb-bbbbbbbbbbbb",
		Status:     "error",
	}
	if err := handler.Handle(context.Background(), nil, evt, nil); err == nil {
		t.Fatalf("expected apply error to propagate")
	}
}

func TestHandlerNilEvent(t *testing.T) {
	handler := newTestHandler(&applierStub{})
	if err := handler.Handle(context.Background(), nil, nil, nil); err == nil {
		t.Fatalf("expected error for nil event")
	}
}
