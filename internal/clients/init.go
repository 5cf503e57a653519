// Package clients 封装与外部服务的交互客户端。
// 该层负责将外部存储/REST 调用封装为业务层接口。
package clients

import (
	"github.com/codeflix-tube/admin-catalog/internal/clients/mediastore"
	"github.com/google/wire"
)

// ProviderSet 暴露 Clients 层的构造函数供 Wire 依赖注入使用。
var ProviderSet = wire.NewSet(
	mediastore.NewClient,
	mediastore.NewStorage,
)
