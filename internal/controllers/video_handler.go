package controllers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"
	"mime"
	stdhttp "net/http"

	"github.com/codeflix-tube/admin-catalog/internal/controllers/dto"
	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/codeflix-tube/admin-catalog/internal/services"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

// 媒体上传的表单字段约定。
const (
	formFieldPayload       = "payload"
	formFieldVideo         = "video_file"
	formFieldTrailer       = "trailer_file"
	formFieldBanner        = "banner_file"
	formFieldThumbnail     = "thumb_file"
	formFieldThumbnailHalf = "thumb_half_file"

	maxUploadBytes = 512 << 20
)

// VideoHandler 暴露视频聚合的管理 HTTP 接口。
type VideoHandler struct {
	*BaseHandler
	create *services.CreateVideoService
	update *services.UpdateVideoService
	query  *services.VideoQueryService
	log    *log.Helper
}

// NewVideoHandler 构造 VideoHandler。
func NewVideoHandler(
	base *BaseHandler,
	create *services.CreateVideoService,
	update *services.UpdateVideoService,
	query *services.VideoQueryService,
	logger log.Logger,
) *VideoHandler {
	return &VideoHandler{
		BaseHandler: base,
		create:      create,
		update:      update,
		query:       query,
		log:         log.NewHelper(logger),
	}
}

// RegisterRoutes 将视频接口挂载到 HTTP Server。
func (h *VideoHandler) RegisterRoutes(srv *http.Server) {
	r := srv.Route("/v1")
	r.POST("/videos", h.CreateVideo)
	r.GET("/videos/{id}", h.GetVideo)
	r.PUT("/videos/{id}", h.UpdateVideo)
	r.DELETE("/videos/{id}", h.DeleteVideo)
}

// CreateVideo 处理 POST /v1/videos。
// 请求体为 JSON，或携带媒体文件的 multipart 表单（JSON 置于 payload 字段）。
func (h *VideoHandler) CreateVideo(ctx http.Context) error {
	body, media, err := decodeWriteRequest(ctx)
	if err != nil {
		return kerrors.BadRequest("INVALID_REQUEST", err.Error())
	}
	input, err := body.ToCreateInput()
	if err != nil {
		return kerrors.BadRequest("INVALID_REQUEST", err.Error())
	}
	input.Media = media

	meta := h.ExtractMetadata(ctx)
	reqCtx, cancel := h.WithTimeout(InjectRequestMeta(ctx, meta), HandlerTypeCommand)
	defer cancel()

	out, err := h.create.Execute(reqCtx, input)
	if err != nil {
		return h.renderError(ctx, err)
	}
	return ctx.Result(stdhttp.StatusCreated, dto.NewVideoCreatedResponse(out))
}

// GetVideo 处理 GET /v1/videos/{id}。
func (h *VideoHandler) GetVideo(ctx http.Context) error {
	videoID, err := pathVideoID(ctx)
	if err != nil {
		return err
	}
	reqCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	out, err := h.query.GetVideo(reqCtx, videoID)
	if err != nil {
		return h.renderError(ctx, err)
	}
	return ctx.Result(stdhttp.StatusOK, dto.NewVideoResponse(out))
}

// UpdateVideo 处理 PUT /v1/videos/{id}，语义为全量替换。
func (h *VideoHandler) UpdateVideo(ctx http.Context) error {
	videoID, err := pathVideoID(ctx)
	if err != nil {
		return err
	}
	body, media, err := decodeWriteRequest(ctx)
	if err != nil {
		return kerrors.BadRequest("INVALID_REQUEST", err.Error())
	}
	input, err := body.ToUpdateInput(videoID)
	if err != nil {
		return kerrors.BadRequest("INVALID_REQUEST", err.Error())
	}
	input.Media = media

	meta := h.ExtractMetadata(ctx)
	reqCtx, cancel := h.WithTimeout(InjectRequestMeta(ctx, meta), HandlerTypeCommand)
	defer cancel()

	out, err := h.update.Execute(reqCtx, input)
	if err != nil {
		return h.renderError(ctx, err)
	}
	return ctx.Result(stdhttp.StatusOK, dto.NewVideoUpdatedResponse(out))
}

// DeleteVideo 处理 DELETE /v1/videos/{id}。
func (h *VideoHandler) DeleteVideo(ctx http.Context) error {
	videoID, err := pathVideoID(ctx)
	if err != nil {
		return err
	}
	reqCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	out, err := h.query.DeleteVideo(reqCtx, videoID)
	if err != nil {
		return h.renderError(ctx, err)
	}
	return ctx.Result(stdhttp.StatusOK, dto.NewVideoDeletedResponse(out))
}

// renderError 将用例错误映射为 HTTP 响应。
// 校验失败以 422 返回完整错误列表，其余交由 Kratos 错误编码器处理。
func (h *VideoHandler) renderError(ctx http.Context, err error) error {
	var verr *services.ValidationError
	if stdErrors.As(err, &verr) {
		return ctx.JSON(stdhttp.StatusUnprocessableEntity, dto.NewValidationErrorResponse(verr.Errors()))
	}
	return err
}

func pathVideoID(ctx http.Context) (uuid.UUID, error) {
	raw := ctx.Vars().Get("id")
	videoID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, kerrors.BadRequest("INVALID_REQUEST", fmt.Sprintf("invalid video id %q", raw))
	}
	return videoID, nil
}

// decodeWriteRequest 解析创建/更新请求。
// multipart 表单时 JSON 主体位于 payload 字段，媒体文件按约定字段名携带；
// 纯 JSON 请求不携带媒体。
func decodeWriteRequest(ctx http.Context) (dto.VideoWriteRequest, services.VideoMediaInput, error) {
	var body dto.VideoWriteRequest
	var media services.VideoMediaInput

	req := ctx.Request()
	mediaType, _, _ := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if err := ctx.Bind(&body); err != nil {
			return body, media, fmt.Errorf("decode request body: %w", err)
		}
		return body, media, nil
	}

	if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
		return body, media, fmt.Errorf("parse multipart form: %w", err)
	}
	payload := req.FormValue(formFieldPayload)
	if payload == "" {
		return body, media, fmt.Errorf("multipart request is missing %q field", formFieldPayload)
	}
	if err := json.Unmarshal([]byte(payload), &body); err != nil {
		return body, media, fmt.Errorf("decode %q field: %w", formFieldPayload, err)
	}

	var err error
	if media.Video, err = formResource(req, formFieldVideo); err != nil {
		return body, media, err
	}
	if media.Trailer, err = formResource(req, formFieldTrailer); err != nil {
		return body, media, err
	}
	if media.Banner, err = formResource(req, formFieldBanner); err != nil {
		return body, media, err
	}
	if media.Thumbnail, err = formResource(req, formFieldThumbnail); err != nil {
		return body, media, err
	}
	if media.ThumbnailHalf, err = formResource(req, formFieldThumbnailHalf); err != nil {
		return body, media, err
	}
	return body, media, nil
}

func formResource(req *stdhttp.Request, field string) (*po.Resource, error) {
	file, header, err := req.FormFile(field)
	if err != nil {
		if stdErrors.Is(err, stdhttp.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %q file: %w", field, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %q content: %w", field, err)
	}
	sum := sha256.Sum256(content)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &po.Resource{
		Checksum:    hex.EncodeToString(sum[:]),
		Content:     content,
		ContentType: contentType,
		Name:        header.Filename,
	}, nil
}
