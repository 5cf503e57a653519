//go:build wireinject
// +build wireinject

// Package main 为编码器回调消费任务提供 Wire 依赖注入定义。
package main

import (
	"context"
	"fmt"

	configloader "github.com/codeflix-tube/admin-catalog/internal/infrastructure/configloader"
	"github.com/codeflix-tube/admin-catalog/internal/repositories"
	"github.com/codeflix-tube/admin-catalog/internal/services"
	encoderinbox "github.com/codeflix-tube/admin-catalog/internal/tasks/encoderinbox"

	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

var encoderInboxRepoSet = wire.NewSet(
	repositories.NewInboxRepository,
	repositories.NewVideoRepository,
)

func wireEncoderInboxTask(context.Context, configloader.Params) (*encoderInboxApp, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		gclog.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		txmanager.ProviderSet,
		gcpubsub.ProviderSet,
		encoderInboxRepoSet,
		wire.Bind(new(services.VideoRepo), new(*repositories.VideoRepository)),
		services.NewMediaStatusService,
		encoderinbox.ProvideRunner,
		newEncoderInboxApp,
	))
}

func newEncoderInboxApp(_ *obswire.Component, logger log.Logger, runner *encoderinbox.Runner) (*encoderInboxApp, error) {
	if runner == nil {
		return &encoderInboxApp{Logger: logger}, nil
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	return &encoderInboxApp{
		Runner: runner,
		Logger: logger,
	}, nil
}
