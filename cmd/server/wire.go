//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

//go:generate go run github.com/google/wire/cmd/wire

package main

import (
	"context"

	"github.com/codeflix-tube/admin-catalog/internal/clients"
	"github.com/codeflix-tube/admin-catalog/internal/clients/mediastore"
	"github.com/codeflix-tube/admin-catalog/internal/controllers"
	configloader "github.com/codeflix-tube/admin-catalog/internal/infrastructure/configloader"
	httpserver "github.com/codeflix-tube/admin-catalog/internal/infrastructure/httpserver"
	"github.com/codeflix-tube/admin-catalog/internal/repositories"
	"github.com/codeflix-tube/admin-catalog/internal/services"
	encoderinbox "github.com/codeflix-tube/admin-catalog/internal/tasks/encoderinbox"
	outboxtasks "github.com/codeflix-tube/admin-catalog/internal/tasks/outbox"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2"
	"github.com/google/wire"
)

// wireApp 构建整个 Kratos 应用，分阶段装配依赖。
//
// Wire 会根据类型自动解析依赖关系并生成 wire_gen.go。
//
// 依赖注入顺序:
//  1. 配置加载: configloader.ProviderSet 解析配置并派生组件配置
//  2. 基础设施: gclog → observability → gcjwt → pgxpoolx → txmanager → gcpubsub
//  3. 外部客户端: clients.ProviderSet 构建 GCS 媒体存储
//  4. 业务层: repositories → services → controllers
//  5. 服务器: httpserver.ProviderSet 组装 HTTP Server
//  6. 后台任务: outbox 发布器 + 编码器回调消费者
//  7. 应用: newApp 创建 Kratos App
func wireApp(context.Context, configloader.Params) (*kratos.App, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet, // 配置加载与解析
		gclog.ProviderSet,        // 结构化日志
		gcjwt.ProviderSet,        // JWT 认证中间件
		obswire.ProviderSet,      // OpenTelemetry 追踪和指标
		pgxpoolx.ProviderSet,     // PostgreSQL 连接池
		txmanager.ProviderSet,    // 事务管理器
		gcpubsub.ProviderSet,     // Pub/Sub 发布与订阅
		clients.ProviderSet,      // GCS 媒体存储客户端
		httpserver.ProviderSet,   // HTTP Server
		repositories.ProviderSet, // 数据访问层
		wire.Bind(new(services.VideoRepo), new(*repositories.VideoRepository)),
		wire.Bind(new(services.CategoryExistence), new(*repositories.CategoryRepository)),
		wire.Bind(new(services.GenreExistence), new(*repositories.GenreRepository)),
		wire.Bind(new(services.CastMemberExistence), new(*repositories.CastMemberRepository)),
		wire.Bind(new(services.MediaStorage), new(*mediastore.Storage)),
		wire.Bind(new(services.OutboxEnqueuer), new(*repositories.OutboxRepository)),
		services.ProviderSet,    // 业务逻辑层
		controllers.ProviderSet, // 控制器层（HTTP handlers）
		outboxtasks.ProvideRunner,
		encoderinbox.ProvideRunner,
		newApp, // 组装 Kratos 应用
	))
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// 依赖注入详细文档
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
//
// 以下列出主要 Provider 函数及其依赖关系，供理解完整依赖图使用。
// Wire 会自动按照类型依赖顺序调用这些 Provider，生成的代码见 wire_gen.go。
//
// ┌─────────────────────────────────────────────────────────────────────────┐
// │ 1. 配置加载层 (configloader.ProviderSet)                                │
// └─────────────────────────────────────────────────────────────────────────┘
//
//   - configloader.LoadRuntimeConfig(configloader.Params) (RuntimeConfig, error)
//       读取 YAML 配置 + .env 覆盖，返回强类型运行时配置。
//
//   - configloader.ProvideServiceInfo(RuntimeConfig) ServiceInfo
//       提取服务元信息（名称/版本/环境/实例 ID）。
//
//   - configloader.ProvideLoggerConfig / ProvideObservabilityConfig /
//     ProvideObservabilityInfo / ProvideServerConfig / ProvideDatabaseConfig /
//     ProvidePgxConfig / ProvideTxConfig / ProvideJWTConfig /
//     ProvideMediaStoreConfig / ProvideMessagingConfig / ProvidePubSubConfig /
//     ProvidePubSubDependencies / ProvideOutboxConfig / ProvideHandlerTimeouts
//       将 RuntimeConfig 派生为各组件所需的配置结构。
//
// ┌─────────────────────────────────────────────────────────────────────────┐
// │ 2. 基础设施层                                                            │
// └─────────────────────────────────────────────────────────────────────────┘
//
//   - gclog.NewComponent / gclog.ProvideLogger → log.Logger
//   - obswire.NewComponent → Tracer/Meter Provider（含 cleanup）
//   - gcjwt.NewComponent / gcjwt.ProvideServerMiddleware → JWT 服务端中间件
//   - pgxpoolx.ProvideComponent / pgxpoolx.ProvidePool → *pgxpool.Pool
//   - txmanager.NewComponent / txmanager.ProvideManager → txmanager.Manager
//   - gcpubsub.ProviderSet → gcpubsub.Publisher + gcpubsub.Subscriber
//
// ┌─────────────────────────────────────────────────────────────────────────┐
// │ 3. 外部客户端层 (clients.ProviderSet)                                   │
// └─────────────────────────────────────────────────────────────────────────┘
//
//   - mediastore.NewClient(context.Context, mediastore.Config)
//       (*storage.Client, func(), error)
//       构建 GCS 客户端（支持模拟器端点）。
//
//   - mediastore.NewStorage(*storage.Client, mediastore.Config, log.Logger)
//       *mediastore.Storage
//       封装媒体文件的上传与清理，绑定到 services.MediaStorage。
//
// ┌─────────────────────────────────────────────────────────────────────────┐
// │ 4. 业务层 (repositories/services/controllers)                           │
// └─────────────────────────────────────────────────────────────────────────┘
//
//   - repositories.NewVideoRepository / NewCategoryRepository /
//     NewGenreRepository / NewCastMemberRepository / NewOutboxRepository
//       构造各聚合的数据访问层，接口绑定见上方 wire.Bind 列表。
//
//   - services.NewVideoWriter(services.VideoRepo, services.OutboxEnqueuer,
//       txmanager.Manager, log.Logger) *services.VideoWriter
//   - services.NewCreateVideoService / NewUpdateVideoService
//       组装创建/更新用例：关联校验、媒体上传、事务落库与补偿清理。
//   - services.NewVideoQueryService / NewMediaStatusService
//       查询/删除用例与编码状态回调用例。
//
//   - controllers.NewBaseHandler / controllers.NewVideoHandler
//       构造 HTTP 控制层。
//
// ┌─────────────────────────────────────────────────────────────────────────┐
// │ 5. 服务器与后台任务                                                      │
// └─────────────────────────────────────────────────────────────────────────┘
//
//   - httpserver.NewHTTPServer(configloader.ServerConfig, gcjwt.ServerMiddleware,
//       *controllers.VideoHandler, log.Logger) *http.Server
//
//   - outboxtasks.ProvideRunner → *outboxpublisher.Runner
//       轮询 outbox_events 并发布到 Pub/Sub。
//
//   - encoderinbox.ProvideRunner → *encoderinbox.Runner
//       订阅编码器回调, 经 inbox 去重后推进媒体状态机。
//
// ┌─────────────────────────────────────────────────────────────────────────┐
// │ 6. 应用层                                                                │
// └─────────────────────────────────────────────────────────────────────────┘
//
//   - newApp(*obswire.Component, log.Logger, *http.Server,
//            configloader.ServiceInfo, *outboxpublisher.Runner,
//            *encoderinbox.Runner) *kratos.App
//       将日志、观测组件、服务元信息、HTTP Server 与后台 worker 装配成 Kratos 应用。
