// Package main 提供编码器回调消费者的独立进程入口。
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/codeflix-tube/admin-catalog/internal/infrastructure/configloader"
	encoderinbox "github.com/codeflix-tube/admin-catalog/internal/tasks/encoderinbox"
	"github.com/go-kratos/kratos/v2/log"
)

type encoderInboxApp struct {
	Runner *encoderinbox.Runner
	Logger log.Logger
}

func main() {
	ctx := context.Background()

	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Parse()

	params := configloader.Params{ConfPath: *confFlag}
	app, cleanup, err := wireEncoderInboxTask(ctx, params)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	logger := app.Logger
	if logger == nil {
		logger = log.NewStdLogger(os.Stdout)
	}
	helper := log.NewHelper(logger)

	if app.Runner == nil {
		helper.Warn("encoder inbox runner disabled (missing messaging.pubsub subscription configuration)")
		return
	}

	helper.Info("starting encoder inbox runner")

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Runner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		helper.Errorf("encoder inbox runner stopped unexpectedly: %v", err)
		os.Exit(1)
	}

	helper.Info("encoder inbox runner stopped")
}
