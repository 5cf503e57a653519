// Package metadata 提供后台请求元信息在 Context 中的存取工具，供控制器与服务层共享。
package metadata

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// RequestMeta 描述从请求头或上游网关解析出的后台操作上下文。
type RequestMeta struct {
	IdempotencyKey      string
	IfMatch             string
	IfNoneMatch         string
	OperatorID          string
	RawOperatorInfo     string
	InvalidOperatorInfo bool
}

// IsZero 判断元信息是否为空。
func (m RequestMeta) IsZero() bool {
	return m.IdempotencyKey == "" &&
		m.IfMatch == "" &&
		m.IfNoneMatch == "" &&
		m.OperatorID == "" &&
		m.RawOperatorInfo == "" &&
		!m.InvalidOperatorInfo
}

// OperatorUUID 尝试解析操作者标识为 UUID。
func (m RequestMeta) OperatorUUID() (uuid.UUID, bool) {
	if strings.TrimSpace(m.OperatorID) == "" {
		return uuid.Nil, false
	}
	value, err := uuid.Parse(m.OperatorID)
	if err != nil {
		return uuid.Nil, false
	}
	return value, true
}

type ctxKey struct{}

// Inject 将 RequestMeta 注入 Context。
func Inject(ctx context.Context, meta RequestMeta) context.Context {
	if meta.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 RequestMeta。
func FromContext(ctx context.Context) (RequestMeta, bool) {
	if ctx == nil {
		return RequestMeta{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(RequestMeta)
	return meta, ok
}

// OperatorIDFromUserInfo 从 X-Apigateway-Api-Userinfo 头中解析操作者标识。
func OperatorIDFromUserInfo(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	payload, err := decodeUserInfo(raw)
	if err != nil {
		return "", err
	}
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", err
	}
	for _, key := range []string{"sub", "user_id"} {
		if value, ok := claims[key].(string); ok && strings.TrimSpace(value) != "" {
			return value, nil
		}
	}
	return "", nil
}

func decodeUserInfo(raw string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.StdEncoding,
	}
	for _, enc := range encodings {
		if payload, err := enc.DecodeString(raw); err == nil {
			return payload, nil
		}
	}
	return nil, errors.New("decode userinfo header failed")
}
