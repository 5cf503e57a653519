// Package mediastore 基于 GCS 实现媒体资源的存取与清理。
// 对象按 videos/<videoID>/<kind>/<name> 布局，整组清理通过前缀删除完成。
package mediastore

import (
	"context"
	"errors"
	"fmt"
	"path"

	"cloud.google.com/go/storage"
	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Config 描述媒体存储所需配置。
type Config struct {
	Bucket   string
	Endpoint string
}

// NewClient 构造 GCS 客户端。Endpoint 非空时指向模拟器（本地联调）。
func NewClient(ctx context.Context, cfg Config) (*storage.Client, func(), error) {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("new storage client: %w", err)
	}
	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}

// Storage 实现 services.MediaStorage。
type Storage struct {
	client *storage.Client
	bucket string
	log    *log.Helper
}

// NewStorage 构造 Storage（供 Wire 注入使用）。
func NewStorage(client *storage.Client, cfg Config, logger log.Logger) *Storage {
	return &Storage{
		client: client,
		bucket: cfg.Bucket,
		log:    log.NewHelper(logger),
	}
}

// StoreVideo 上传原始音视频内容并返回待转码的媒体描述符。
func (s *Storage) StoreVideo(ctx context.Context, videoID uuid.UUID, res po.Resource) (po.AudioVideoMedia, error) {
	location, err := s.write(ctx, videoID, res)
	if err != nil {
		return po.AudioVideoMedia{}, err
	}
	return po.NewAudioVideoMedia(res.Checksum, res.Name, location), nil
}

// StoreImage 上传图片内容并返回媒体描述符。
func (s *Storage) StoreImage(ctx context.Context, videoID uuid.UUID, res po.Resource) (po.ImageMedia, error) {
	location, err := s.write(ctx, videoID, res)
	if err != nil {
		return po.ImageMedia{}, err
	}
	return po.NewImageMedia(res.Checksum, res.Name, location), nil
}

// RemoveObjects 按对象名精确删除，用于更新失败时只回收本次写入的对象。
func (s *Storage) RemoveObjects(ctx context.Context, locations []string) error {
	bucket := s.client.Bucket(s.bucket)
	for _, name := range locations {
		if err := bucket.Object(name).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
			return fmt.Errorf("delete object %s: %w", name, err)
		}
	}
	s.log.WithContext(ctx).Infof("media objects removed: count=%d", len(locations))
	return nil
}

// ClearResources 删除指定视频的全部已上传对象（尽力而为的补偿清理）。
func (s *Storage) ClearResources(ctx context.Context, videoID uuid.UUID) error {
	prefix := objectPrefix(videoID)
	bucket := s.client.Bucket(s.bucket)

	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return fmt.Errorf("list objects %s: %w", prefix, err)
		}
		if err := bucket.Object(attrs.Name).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
			return fmt.Errorf("delete object %s: %w", attrs.Name, err)
		}
	}

	s.log.WithContext(ctx).Infof("media resources cleared: video_id=%s", videoID)
	return nil
}

func (s *Storage) write(ctx context.Context, videoID uuid.UUID, res po.Resource) (string, error) {
	name := path.Join(objectPrefix(videoID), string(res.Kind), res.Name)

	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = res.ContentType
	if _, err := w.Write(res.Content); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object %s: %w", name, err)
	}

	s.log.WithContext(ctx).Debugf("media stored: object=%s size=%d", name, len(res.Content))
	return name, nil
}

func objectPrefix(videoID uuid.UUID) string {
	return path.Join("videos", videoID.String())
}
