package encoderinbox

import (
	"github.com/codeflix-tube/admin-catalog/internal/repositories"
	"github.com/codeflix-tube/admin-catalog/internal/services"

	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
)

// ProvideRunner 装配编码器回调 Runner。
func ProvideRunner(
	applier *services.MediaStatusService,
	inboxRepo *repositories.InboxRepository,
	tx txmanager.Manager,
	subscriber gcpubsub.Subscriber,
	outboxCfg outboxcfg.Config,
	logger log.Logger,
) *Runner {
	if applier == nil || inboxRepo == nil || subscriber == nil || logger == nil {
		return nil
	}
	runner, err := NewRunner(RunnerParams{
		Subscriber: subscriber,
		InboxRepo:  inboxRepo,
		Applier:    applier,
		TxManager:  tx,
		Logger:     logger,
		Config:     outboxCfg.Inbox,
	})
	if err != nil {
		log.NewHelper(logger).Errorw("msg", "init encoder inbox runner failed", "error", err)
		return nil
	}
	return runner
}
