package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeflix-tube/admin-catalog/internal/validation"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/google/uuid"
)

type existenceLookup interface {
	ExistsByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID) ([]uuid.UUID, error)
}

// checkAggregateExists 校验请求中的关联标识是否全部存在。
// 缺失标识按请求顺序汇总为单条 Notification 错误；查询本身失败视为基础设施错误向上返回。
func checkAggregateExists(
	ctx context.Context,
	n *validation.Notification,
	lookup existenceLookup,
	kind string,
	requested []uuid.UUID,
) error {
	if len(requested) == 0 {
		return nil
	}
	found, err := lookup.ExistsByIDs(ctx, nil, requested)
	if err != nil {
		return fmt.Errorf("check %s existence: %w", kind, err)
	}
	existing := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}
	missing := make([]string, 0)
	seen := make(map[uuid.UUID]struct{}, len(requested))
	for _, id := range requested {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := existing[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		n.Append(validation.Error{
			Message: fmt.Sprintf("Some %s could not be found: %s", kind, strings.Join(missing, ", ")),
		})
	}
	return nil
}
