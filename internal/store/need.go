package store

import (
	"context"
	"fmt"
	"time"

	"lumbungwarga/internal/utils"
	"lumbungwarga/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const needTableName = "lumbungwarga.need_requests"

var needColumns = utils.StructTagValues(types.NeedRequest{})

type NeedRepository struct {
	pool *pgxpool.Pool
}

func NewNeedRepository(pool *pgxpool.Pool) *NeedRepository {
	return &NeedRepository{pool: pool}
}

func (r *NeedRepository) Need(ctx context.Context, needID string) (*types.NeedRequest, error) {

	query, args, err := psql().Select(needColumns...).From(needTableName).
		Where(sq.Eq{"id": needID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate need query: %w", err)
	}

	var need = new(types.NeedRequest)
	err = pgxscan.Get(ctx, r.pool, need, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrNeedNotFound
		}
		return nil, fmt.Errorf("failed to fetch need: %w", err)
	}

	return need, nil
}

func (r *NeedRepository) Needs(ctx context.Context) ([]*types.NeedRequest, error) {

	query, args, err := psql().Select(needColumns...).From(needTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate needs query: %w", err)
	}

	var needs = make([]*types.NeedRequest, 0)
	err = pgxscan.Select(ctx, r.pool, &needs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch needs: %w", err)
	}

	return needs, nil
}

func (r *NeedRepository) CreateNeed(ctx context.Context, need *types.NeedRequest) error {

	now := time.Now()
	need.ID = utils.NanoID()
	need.CreatedAt = now
	need.UpdatedAt = now

	needMap := utils.StructToMap(need)

	query, args, err := psql().Insert(needTableName).SetMap(needMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert need query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create need")

}

// UpdateNeedFlags applies the verify/fulfill transitions. Only the provided
// flags are written.
func (r *NeedRepository) UpdateNeedFlags(ctx context.Context, needID string, update types.UpdateNeedRequest) error {

	setMap := map[string]any{
		"updated_at": time.Now(),
	}
	if update.IsVerified != nil {
		setMap["is_verified"] = *update.IsVerified
	}
	if update.IsFulfilled != nil {
		setMap["is_fulfilled"] = *update.IsFulfilled
	}

	query, args, err := psql().Update(needTableName).SetMap(setMap).Where(sq.Eq{"id": needID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update need query for need %s: %w", needID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update need %s: %w", needID, err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrNeedNotFound
	}

	return nil

}
