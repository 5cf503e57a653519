// Package main 提供目录管理 HTTP 服务的启动入口。
// 负责加载配置、初始化依赖（通过 Wire）、启动 HTTP Server 并优雅关闭。
package main

import (
	"context"
	"errors"
	"flag"
	"sync"

	configloader "github.com/codeflix-tube/admin-catalog/internal/infrastructure/configloader"
	encoderinbox "github.com/codeflix-tube/admin-catalog/internal/tasks/encoderinbox"

	obswire "github.com/bionicotaku/lingo-utils/observability"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	_ "go.uber.org/automaxprocs" // 自动设置 GOMAXPROCS 为容器 CPU 配额
)

// newApp 负责组装 Kratos 应用：注入观测组件、日志器、服务元信息以及 HTTP Server。
// Outbox 发布器与编码器回调消费者作为后台 worker 随应用生命周期启停。
func newApp(
	_ *obswire.Component,
	logger log.Logger,
	hs *http.Server,
	meta configloader.ServiceInfo,
	publisher *outboxpublisher.Runner,
	encoder *encoderinbox.Runner,
) *kratos.App {
	options := []kratos.Option{
		kratos.ID(meta.InstanceID),
		kratos.Name(meta.Name),
		kratos.Version(meta.Version),
		kratos.Metadata(map[string]string{"environment": meta.Environment}),
		kratos.Logger(logger),
		kratos.Server(hs),
	}

	type worker struct {
		name string
		run  func(context.Context) error
	}

	var workers []worker
	if publisher != nil {
		workers = append(workers, worker{name: "outbox publisher", run: publisher.Run})
	}
	if encoder != nil {
		workers = append(workers, worker{name: "encoder inbox", run: encoder.Run})
	}
	if len(workers) > 0 {
		var (
			wg      sync.WaitGroup
			cancels []context.CancelFunc
		)
		helper := log.NewHelper(logger)

		options = append(options,
			kratos.BeforeStart(func(ctx context.Context) error {
				cancels = make([]context.CancelFunc, len(workers))
				for i := range workers {
					runCtx, cancel := context.WithCancel(ctx)
					cancels[i] = cancel
					wg.Add(1)
					worker := workers[i]
					go func() {
						defer wg.Done()
						if err := worker.run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
							helper.Warnf("%s stopped: %v", worker.name, err)
						}
					}()
				}
				return nil
			}),
			kratos.AfterStop(func(ctx context.Context) error {
				for _, cancel := range cancels {
					if cancel != nil {
						cancel()
					}
				}
				done := make(chan struct{})
				go func() {
					wg.Wait()
					close(done)
				}()
				select {
				case <-ctx.Done():
				case <-done:
				}
				return nil
			}),
		)
	}

	return kratos.New(options...)
}

func main() {
	ctx := context.Background()

	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Parse()

	params := configloader.Params{
		ConfPath: *confFlag,
	}

	// wireApp 由 wire_gen.go 生成，依赖装配顺序见 wire.go。
	app, cleanupApp, err := wireApp(ctx, params)
	if err != nil {
		panic(err)
	}
	defer cleanupApp()

	if err := app.Run(); err != nil {
		panic(err)
	}
}
