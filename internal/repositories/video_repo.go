// Package repositories 实现数据访问层，基于 pgx 手写查询。
package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrVideoNotFound 表示请求的视频不存在。
var ErrVideoNotFound = errors.New("video not found")

// querier 抽象连接池与事务的公共查询接口。
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// VideoRepository 提供视频聚合的持久化访问能力。
type VideoRepository struct {
	db  *pgxpool.Pool
	log *log.Helper
}

// NewVideoRepository 构造 VideoRepository 实例（供 Wire 注入使用）。
func NewVideoRepository(db *pgxpool.Pool, logger log.Logger) *VideoRepository {
	return &VideoRepository{
		db:  db,
		log: log.NewHelper(logger),
	}
}

func (r *VideoRepository) q(sess txmanager.Session) querier {
	if sess != nil && sess.Tx() != nil {
		return sess.Tx()
	}
	return r.db
}

const videoColumns = `id, title, description, launched_at, duration, opened, published, rating,
	category_ids, genre_ids, cast_member_ids,
	video, trailer, banner, thumbnail, thumbnail_half,
	created_at, updated_at`

// Create 插入完整的视频聚合。
func (r *VideoRepository) Create(ctx context.Context, sess txmanager.Session, video *po.Video) (*po.Video, error) {
	args, err := videoArgs(video)
	if err != nil {
		return nil, fmt.Errorf("encode video: %w", err)
	}

	_, err = r.q(sess).Exec(ctx, `
		INSERT INTO catalog.videos (`+videoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		args...)
	if err != nil {
		r.log.WithContext(ctx).Errorf("create video failed: video_id=%s err=%v", video.ID, err)
		return nil, fmt.Errorf("create video: %w", err)
	}

	r.log.WithContext(ctx).Infof("video created: video_id=%s title=%q", video.ID, video.Title)
	return video, nil
}

// Update 以聚合当前状态整体覆盖已有记录。
func (r *VideoRepository) Update(ctx context.Context, sess txmanager.Session, video *po.Video) (*po.Video, error) {
	args, err := videoArgs(video)
	if err != nil {
		return nil, fmt.Errorf("encode video: %w", err)
	}

	tag, err := r.q(sess).Exec(ctx, `
		UPDATE catalog.videos SET
			title = $2, description = $3, launched_at = $4, duration = $5,
			opened = $6, published = $7, rating = $8,
			category_ids = $9, genre_ids = $10, cast_member_ids = $11,
			video = $12, trailer = $13, banner = $14, thumbnail = $15, thumbnail_half = $16,
			created_at = $17, updated_at = $18
		WHERE id = $1`,
		args...)
	if err != nil {
		r.log.WithContext(ctx).Errorf("update video failed: video_id=%s err=%v", video.ID, err)
		return nil, fmt.Errorf("update video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrVideoNotFound
	}

	r.log.WithContext(ctx).Infof("video updated: video_id=%s", video.ID)
	return video, nil
}

// FindByID 按标识加载完整聚合。
func (r *VideoRepository) FindByID(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.Video, error) {
	row := r.q(sess).QueryRow(ctx, `
		SELECT `+videoColumns+`
		FROM catalog.videos
		WHERE id = $1`,
		videoID)

	video, err := scanVideo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("find video failed: video_id=%s err=%v", videoID, err)
		return nil, fmt.Errorf("find video: %w", err)
	}
	return video, nil
}

// Delete 删除视频记录。目标不存在时返回 ErrVideoNotFound。
func (r *VideoRepository) Delete(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) error {
	tag, err := r.q(sess).Exec(ctx, `DELETE FROM catalog.videos WHERE id = $1`, videoID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete video failed: video_id=%s err=%v", videoID, err)
		return fmt.Errorf("delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVideoNotFound
	}
	r.log.WithContext(ctx).Infof("video deleted: video_id=%s", videoID)
	return nil
}

// videoArgs 将聚合编码为与 videoColumns 对齐的参数列表。
func videoArgs(video *po.Video) ([]any, error) {
	videoJSON, err := marshalNullable(video.Video)
	if err != nil {
		return nil, err
	}
	trailerJSON, err := marshalNullable(video.Trailer)
	if err != nil {
		return nil, err
	}
	bannerJSON, err := marshalNullable(video.Banner)
	if err != nil {
		return nil, err
	}
	thumbJSON, err := marshalNullable(video.Thumbnail)
	if err != nil {
		return nil, err
	}
	thumbHalfJSON, err := marshalNullable(video.ThumbnailHalf)
	if err != nil {
		return nil, err
	}

	var rating *string
	if video.Rating.Defined() {
		value := string(video.Rating)
		rating = &value
	}

	return []any{
		video.ID,
		video.Title,
		video.Description,
		video.LaunchedAt,
		video.Duration,
		video.Opened,
		video.Published,
		rating,
		video.Categories.Slice(),
		video.Genres.Slice(),
		video.CastMembers.Slice(),
		videoJSON,
		trailerJSON,
		bannerJSON,
		thumbJSON,
		thumbHalfJSON,
		video.CreatedAt,
		video.UpdatedAt,
	}, nil
}

func scanVideo(row pgx.Row) (*po.Video, error) {
	var (
		video         po.Video
		rating        *string
		categories    []uuid.UUID
		genres        []uuid.UUID
		castMembers   []uuid.UUID
		videoJSON     []byte
		trailerJSON   []byte
		bannerJSON    []byte
		thumbJSON     []byte
		thumbHalfJSON []byte
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := row.Scan(
		&video.ID,
		&video.Title,
		&video.Description,
		&video.LaunchedAt,
		&video.Duration,
		&video.Opened,
		&video.Published,
		&rating,
		&categories,
		&genres,
		&castMembers,
		&videoJSON,
		&trailerJSON,
		&bannerJSON,
		&thumbJSON,
		&thumbHalfJSON,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rating != nil {
		video.Rating = po.Rating(*rating)
	}
	video.Categories = po.NewIDSet(categories...)
	video.Genres = po.NewIDSet(genres...)
	video.CastMembers = po.NewIDSet(castMembers...)
	video.CreatedAt = createdAt.UTC()
	video.UpdatedAt = updatedAt.UTC()

	if video.Video, err = unmarshalNullable[po.AudioVideoMedia](videoJSON); err != nil {
		return nil, err
	}
	if video.Trailer, err = unmarshalNullable[po.AudioVideoMedia](trailerJSON); err != nil {
		return nil, err
	}
	if video.Banner, err = unmarshalNullable[po.ImageMedia](bannerJSON); err != nil {
		return nil, err
	}
	if video.Thumbnail, err = unmarshalNullable[po.ImageMedia](thumbJSON); err != nil {
		return nil, err
	}
	if video.ThumbnailHalf, err = unmarshalNullable[po.ImageMedia](thumbHalfJSON); err != nil {
		return nil, err
	}
	return &video, nil
}

func marshalNullable[T any](value *T) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	return json.Marshal(value)
}

func unmarshalNullable[T any](data []byte) (*T, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return &value, nil
}
