// Package po 定义领域实体与持久化对象，由 Repository 与 Service 层共享。
// Video 作为聚合根携带行为（更新、媒体槽位、自校验），媒体描述符为不可变值对象。
package po

import (
	"github.com/google/uuid"
)

// MediaStatus 表示媒体资源的转码生命周期状态。
type MediaStatus string

// 媒体状态常量定义
const (
	MediaStatusPending    MediaStatus = "pending"    // 已上传，等待转码
	MediaStatusProcessing MediaStatus = "processing" // 转码进行中
	MediaStatusCompleted  MediaStatus = "completed"  // 转码完成
	MediaStatusError      MediaStatus = "error"      // 转码失败
)

// MediaStatusOf 按标签解析媒体状态，未识别时返回 false。
func MediaStatusOf(label string) (MediaStatus, bool) {
	switch MediaStatus(label) {
	case MediaStatusPending, MediaStatusProcessing, MediaStatusCompleted, MediaStatusError:
		return MediaStatus(label), true
	default:
		return "", false
	}
}

// Terminal 报告状态是否为终态（completed/error）。
func (s MediaStatus) Terminal() bool {
	return s == MediaStatusCompleted || s == MediaStatusError
}

// MediaKind 标识视频聚合的五个可选媒体槽位。
type MediaKind string

// 媒体槽位常量定义
const (
	MediaKindVideo         MediaKind = "video"
	MediaKindTrailer       MediaKind = "trailer"
	MediaKindBanner        MediaKind = "banner"
	MediaKindThumbnail     MediaKind = "thumbnail"
	MediaKindThumbnailHalf MediaKind = "thumbnail_half"
)

// IsRawVideo 报告槽位是否承载原始音视频（需转码）。
func (k MediaKind) IsRawVideo() bool {
	return k == MediaKindVideo || k == MediaKindTrailer
}

// Resource 表示一次请求中待上传的原始内容。
type Resource struct {
	Checksum    string
	Content     []byte
	ContentType string
	Name        string
	Kind        MediaKind
}

// AudioVideoMedia 描述原始音视频资源。不可变；状态迁移时整体替换。
// 相等性仅由 (checksum, rawLocation) 决定，id/name/status 不参与比较。
type AudioVideoMedia struct {
	ID              uuid.UUID
	Checksum        string
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          MediaStatus
}

// NewAudioVideoMedia 构造待转码的音视频描述符。
func NewAudioVideoMedia(checksum, name, rawLocation string) AudioVideoMedia {
	return AudioVideoMedia{
		ID:          uuid.New(),
		Checksum:    checksum,
		Name:        name,
		RawLocation: rawLocation,
		Status:      MediaStatusPending,
	}
}

// WithStatus 返回携带新状态与转码位置的副本，其余字段保持不变。
func (m AudioVideoMedia) WithStatus(status MediaStatus, encodedLocation string) AudioVideoMedia {
	return AudioVideoMedia{
		ID:              m.ID,
		Checksum:        m.Checksum,
		Name:            m.Name,
		RawLocation:     m.RawLocation,
		EncodedLocation: encodedLocation,
		Status:          status,
	}
}

// Equals 按 (checksum, rawLocation) 判断内容等价。
func (m AudioVideoMedia) Equals(other AudioVideoMedia) bool {
	return m.Checksum == other.Checksum && m.RawLocation == other.RawLocation
}

// ImageMedia 描述图片资源。不可变；相等性由 (checksum, location) 决定。
type ImageMedia struct {
	ID       uuid.UUID
	Checksum string
	Name     string
	Location string
}

// NewImageMedia 构造图片描述符。
func NewImageMedia(checksum, name, location string) ImageMedia {
	return ImageMedia{
		ID:       uuid.New(),
		Checksum: checksum,
		Name:     name,
		Location: location,
	}
}

// Equals 按 (checksum, location) 判断内容等价。
func (m ImageMedia) Equals(other ImageMedia) bool {
	return m.Checksum == other.Checksum && m.Location == other.Location
}
