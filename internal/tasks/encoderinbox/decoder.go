// Package encoderinbox 消费外部编码器发布的媒体状态回调，
// 通过 Inbox Runner 去重后收敛到视频聚合。
package encoderinbox

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventVersion 表示编码器回调协议的版本常量。
const EventVersion = "v1"

// Event 描述编码器发布的媒体状态回调。
type Event struct {
	VideoID    string    `json:"video_id"`
	ResourceID string    `json:"resource_id"`
	Status     string    `json:"status"`
	Folder     string    `json:"encoded_video_folder"`
	Filename   string    `json:"filename"`
	OccurredAt time.Time `json:"occurred_at"`
	Version    string    `json:"version"`
}

type eventDecoder struct{}

func newEventDecoder() *eventDecoder {
	return &eventDecoder{}
}

// Decode 将原始 JSON 载荷解码为 Event。
func (d *eventDecoder) Decode(data []byte) (*Event, error) {
	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, fmt.Errorf("encoderinbox: decode payload: %w", err)
	}
	normalizeEvent(&evt)
	return &evt, nil
}

func normalizeEvent(evt *Event) {
	evt.VideoID = strings.TrimSpace(evt.VideoID)
	evt.ResourceID = strings.TrimSpace(evt.ResourceID)
	evt.Status = strings.ToLower(strings.TrimSpace(evt.Status))
	evt.Folder = strings.TrimSpace(evt.Folder)
	evt.Filename = strings.TrimSpace(evt.Filename)
	if evt.Version == "" {
		evt.Version = EventVersion
	}
}
