package encoderinbox

import (
	"testing"
	"time"
)

func TestDecoderJSON(t *testing.T) {
	decoder := newEventDecoder()
	payload := []byte(`{
		"video_id": " 7b61d0ed-1111-4c3e-9d93-aaaaaaaaaaaa ",
		"resource_id": "8c22ebce-2222-4e87-bbbb-bbbbbbbbbbbb",
		"status": " COMPLETED ",
		"encoded_video_folder": " videos/encoded ",
		"filename": "master.m3u8",
		"occurred_at": "2026-03-14T12:00:00Z"
	}`)

	evt, err := decoder.Decode(payload)
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if evt.VideoID != "7b61d0ed-1111-4c3e-9d93-aaaaaaaaaaaa" {
		t.Fatalf("video id not trimmed: %q", evt.VideoID)
	}
	if evt.Status != "completed" {
		t.Fatalf("status must be lowercased+trimmed, got %q", evt.Status)
	}
	if evt.Folder != "videos/encoded" {
		t.Fatalf("folder not trimmed: %q", evt.Folder)
	}
	if !evt.OccurredAt.Equal(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("occurred_at mismatch: %s", evt.OccurredAt)
	}
	if evt.Version != EventVersion {
		t.Fatalf("expected default version, got %q", evt.Version)
	}
}

func TestDecoderKeepsExplicitVersion(t *testing.T) {
	decoder := newEventDecoder()
	evt, err := decoder.Decode([]byte(`{"video_id":"a","status":"error","version":"v2"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if evt.Version != "v2" {
		t.Fatalf("explicit version must survive, got %q", evt.Version)
	}
}

func TestDecoderInvalidPayload(t *testing.T) {
	decoder := newEventDecoder()
	if _, err := decoder.Decode([]byte("not-json")); err == nil {
		t.Fatalf("expected decode error")
	}
}
