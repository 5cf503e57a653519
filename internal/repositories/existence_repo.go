package repositories

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository 提供类目聚合的批量存在性查询。
type CategoryRepository struct {
	db  *pgxpool.Pool
	log *log.Helper
}

// NewCategoryRepository 构造 CategoryRepository。
func NewCategoryRepository(db *pgxpool.Pool, logger log.Logger) *CategoryRepository {
	return &CategoryRepository{db: db, log: log.NewHelper(logger)}
}

// ExistsByIDs 返回传入标识中实际存在的子集。
func (r *CategoryRepository) ExistsByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID) ([]uuid.UUID, error) {
	return existsByIDs(ctx, r.pick(sess), "catalog.categories", ids)
}

func (r *CategoryRepository) pick(sess txmanager.Session) querier {
	if sess != nil && sess.Tx() != nil {
		return sess.Tx()
	}
	return r.db
}

// GenreRepository 提供分类聚合的批量存在性查询。
type GenreRepository struct {
	db  *pgxpool.Pool
	log *log.Helper
}

// NewGenreRepository 构造 GenreRepository。
func NewGenreRepository(db *pgxpool.Pool, logger log.Logger) *GenreRepository {
	return &GenreRepository{db: db, log: log.NewHelper(logger)}
}

// ExistsByIDs 返回传入标识中实际存在的子集。
func (r *GenreRepository) ExistsByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID) ([]uuid.UUID, error) {
	return existsByIDs(ctx, r.pick(sess), "catalog.genres", ids)
}

func (r *GenreRepository) pick(sess txmanager.Session) querier {
	if sess != nil && sess.Tx() != nil {
		return sess.Tx()
	}
	return r.db
}

// CastMemberRepository 提供演职人员聚合的批量存在性查询。
type CastMemberRepository struct {
	db  *pgxpool.Pool
	log *log.Helper
}

// NewCastMemberRepository 构造 CastMemberRepository。
func NewCastMemberRepository(db *pgxpool.Pool, logger log.Logger) *CastMemberRepository {
	return &CastMemberRepository{db: db, log: log.NewHelper(logger)}
}

// ExistsByIDs 返回传入标识中实际存在的子集。
func (r *CastMemberRepository) ExistsByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID) ([]uuid.UUID, error) {
	return existsByIDs(ctx, r.pick(sess), "catalog.cast_members", ids)
}

func (r *CastMemberRepository) pick(sess txmanager.Session) querier {
	if sess != nil && sess.Tx() != nil {
		return sess.Tx()
	}
	return r.db
}

// existsByIDs 以单次往返查询存在的标识；空集直接返回，不访问数据库。
func existsByIDs(ctx context.Context, q querier, table string, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT id FROM %s WHERE id = ANY($1)`, table), ids)
	if err != nil {
		return nil, fmt.Errorf("exists by ids %s: %w", table, err)
	}
	defer rows.Close()

	var found []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id %s: %w", table, err)
		}
		found = append(found, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ids %s: %w", table, err)
	}
	return found, nil
}
