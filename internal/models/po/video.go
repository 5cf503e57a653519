package po

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/codeflix-tube/admin-catalog/internal/validation"
	"github.com/google/uuid"
)

// 字段约束常量。
const (
	titleMinLength       = 1
	titleMaxLength       = 255
	descriptionMinLength = 1
	descriptionMaxLength = 4000
)

// IDSet 表示一组外部聚合标识。零值即空集，语义上永不为 nil。
type IDSet map[uuid.UUID]struct{}

// NewIDSet 由标识列表构造集合，重复项自动去除。
func NewIDSet(ids ...uuid.UUID) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains 报告集合是否包含指定标识。
func (s IDSet) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Len 返回集合大小。
func (s IDSet) Len() int {
	return len(s)
}

// Slice 返回按字典序排序的标识切片，保证持久化顺序稳定。
func (s IDSet) Slice() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// MediaCreatedEvent 表示媒体资源已挂载到聚合的待发布领域事件。
// 发布由成功持久化后的调用方负责，发布后通过 ClearEvents 清空。
type MediaCreatedEvent struct {
	ResourceID uuid.UUID
	FilePath   string
	OccurredOn time.Time
}

// Video 表示视频聚合根。
// 不变式：UpdatedAt 单调不减，任何修改都会刷新；CreatedAt 与 ID 创建后不变。
type Video struct {
	ID          uuid.UUID
	Title       string
	Description string
	LaunchedAt  *int32
	Duration    float64
	Opened      bool
	Published   bool
	Rating      Rating

	Categories  IDSet
	Genres      IDSet
	CastMembers IDSet

	Video         *AudioVideoMedia
	Trailer       *AudioVideoMedia
	Banner        *ImageMedia
	Thumbnail     *ImageMedia
	ThumbnailHalf *ImageMedia

	CreatedAt time.Time
	UpdatedAt time.Time

	events []MediaCreatedEvent
}

// NewVideo 创建新的视频聚合，分配标识并将 CreatedAt/UpdatedAt 置为同一时刻。
// 不做校验；校验是独立的显式步骤（Validate）。
func NewVideo(
	title, description string,
	launchedAt *int32,
	duration float64,
	opened, published bool,
	rating Rating,
	categories, genres, castMembers IDSet,
) *Video {
	now := time.Now().UTC()
	return &Video{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		LaunchedAt:  launchedAt,
		Duration:    duration,
		Opened:      opened,
		Published:   published,
		Rating:      rating,
		Categories:  ensureSet(categories),
		Genres:      ensureSet(genres),
		CastMembers: ensureSet(castMembers),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Update 无条件逐字段替换（包括空值/非法值），并刷新 UpdatedAt。
// 不做校验；调用方随后显式执行 Validate。
func (v *Video) Update(
	title, description string,
	launchedAt *int32,
	duration float64,
	opened, published bool,
	rating Rating,
	categories, genres, castMembers IDSet,
) *Video {
	v.Title = title
	v.Description = description
	v.LaunchedAt = launchedAt
	v.Duration = duration
	v.Opened = opened
	v.Published = published
	v.Rating = rating
	v.Categories = ensureSet(categories)
	v.Genres = ensureSet(genres)
	v.CastMembers = ensureSet(castMembers)
	v.touch()
	return v
}

// Validate 独立执行全部字段校验，所有违规都追加到 Notification，不短路。
func (v *Video) Validate(n *validation.Notification) {
	validateLength(n, "title", v.Title, titleMinLength, titleMaxLength)
	validateLength(n, "description", v.Description, descriptionMinLength, descriptionMaxLength)
	if v.LaunchedAt == nil {
		n.Append(validation.NewError("'launchedAt' should not be null"))
	}
	if !v.Rating.Defined() {
		n.Append(validation.NewError("'rating' should not be null"))
	}
}

var _ validation.Validator = (*Video)(nil)

// SetVideo 挂载主视频资源并记录 VideoMediaCreated 领域事件。
func (v *Video) SetVideo(media AudioVideoMedia) *Video {
	v.Video = &media
	v.touch()
	v.recordMediaCreated(media)
	return v
}

// SetTrailer 挂载预告片资源并记录 VideoMediaCreated 领域事件。
func (v *Video) SetTrailer(media AudioVideoMedia) *Video {
	v.Trailer = &media
	v.touch()
	v.recordMediaCreated(media)
	return v
}

// SetBanner 挂载横幅图片。
func (v *Video) SetBanner(media ImageMedia) *Video {
	v.Banner = &media
	v.touch()
	return v
}

// SetThumbnail 挂载缩略图。
func (v *Video) SetThumbnail(media ImageMedia) *Video {
	v.Thumbnail = &media
	v.touch()
	return v
}

// SetThumbnailHalf 挂载半幅缩略图。
func (v *Video) SetThumbnailHalf(media ImageMedia) *Video {
	v.ThumbnailHalf = &media
	v.touch()
	return v
}

// AdvanceMedia 根据转码回调推进媒体状态。
// 依次匹配 video/trailer 槽位的媒体标识；命中时整体替换描述符并返回 true。
// 未命中（过期或重复消息）时保持原状返回 false，保证至少一次投递下的幂等。
// 已完成的槽位不会被 pending/processing 回退。
func (v *Video) AdvanceMedia(resourceID uuid.UUID, status MediaStatus, encodedLocation string) bool {
	apply := func(slot *AudioVideoMedia) (*AudioVideoMedia, bool) {
		if slot == nil || slot.ID != resourceID {
			return slot, false
		}
		if slot.Status == MediaStatusCompleted && !status.Terminal() {
			// 乱序回退保护：保持终态
			return slot, true
		}
		next := slot.WithStatus(status, encodedLocation)
		return &next, true
	}

	if next, ok := apply(v.Video); ok {
		if next != v.Video {
			v.Video = next
			v.touch()
		}
		return true
	}
	if next, ok := apply(v.Trailer); ok {
		if next != v.Trailer {
			v.Trailer = next
			v.touch()
		}
		return true
	}
	return false
}

// Events 返回按发生顺序排列的待发布领域事件。
func (v *Video) Events() []MediaCreatedEvent {
	if len(v.events) == 0 {
		return nil
	}
	out := make([]MediaCreatedEvent, len(v.events))
	copy(out, v.events)
	return out
}

// ClearEvents 在事件成功发布后清空待发布列表。
func (v *Video) ClearEvents() {
	v.events = nil
}

func (v *Video) recordMediaCreated(media AudioVideoMedia) {
	v.events = append(v.events, MediaCreatedEvent{
		ResourceID: media.ID,
		FilePath:   media.RawLocation,
		OccurredOn: time.Now().UTC(),
	})
}

// touch 刷新 UpdatedAt，保证单调不减。
func (v *Video) touch() {
	now := time.Now().UTC()
	if now.Before(v.UpdatedAt) {
		now = v.UpdatedAt
	}
	v.UpdatedAt = now
}

func ensureSet(s IDSet) IDSet {
	if s == nil {
		return IDSet{}
	}
	return s
}

func validateLength(n *validation.Notification, field, value string, min, max int) {
	if strings.TrimSpace(value) == "" {
		n.Append(validation.NewError(fmt.Sprintf("'%s' should not be empty", field)))
		return
	}
	if length := len([]rune(value)); length < min || length > max {
		n.Append(validation.NewError(fmt.Sprintf("'%s' must be between %d and %d characters", field, min, max)))
	}
}
