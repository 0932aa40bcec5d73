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

const stockTableName = "lumbungwarga.stock_items"

var stockColumns = utils.StructTagValues(types.StockItem{})

type StockRepository struct {
	pool *pgxpool.Pool
}

func NewStockRepository(pool *pgxpool.Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

func (r *StockRepository) StockItem(ctx context.Context, itemID string) (*types.StockItem, error) {

	query, args, err := psql().Select(stockColumns...).From(stockTableName).
		Where(sq.Eq{"id": itemID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate stock item query: %w", err)
	}

	var item = new(types.StockItem)
	err = pgxscan.Get(ctx, r.pool, item, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrStockNotFound
		}
		return nil, fmt.Errorf("failed to fetch stock item: %w", err)
	}

	item.Derive()
	return item, nil
}

func (r *StockRepository) StockItems(ctx context.Context) ([]*types.StockItem, error) {

	query, args, err := psql().Select(stockColumns...).From(stockTableName).
		OrderBy("added_date desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate stock query: %w", err)
	}

	var items = make([]*types.StockItem, 0)
	err = pgxscan.Select(ctx, r.pool, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock items: %w", err)
	}

	for _, item := range items {
		item.Derive()
	}

	return items, nil
}

func (r *StockRepository) CreateStockItem(ctx context.Context, item *types.StockItem) error {

	now := time.Now()
	item.ID = utils.NanoID()
	item.AddedDate = now
	item.CreatedAt = now
	item.UpdatedAt = now

	itemMap := utils.StructToMap(item)

	query, args, err := psql().Insert(stockTableName).SetMap(itemMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert stock query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return utils.ErrorWrapOrNil(err, "failed to create stock item")
	}

	item.Derive()
	return nil

}

func (r *StockRepository) UpdateStockItem(ctx context.Context, itemID string, update types.UpdateStockRequest) (*types.StockItem, error) {

	setMap := map[string]any{
		"updated_at": time.Now(),
	}
	if update.Name != nil {
		setMap["name"] = *update.Name
	}
	if update.Category != nil {
		setMap["category"] = *update.Category
	}
	if update.Quantity != nil {
		setMap["quantity"] = *update.Quantity
	}
	if update.Unit != nil {
		setMap["unit"] = *update.Unit
	}

	query, args, err := psql().Update(stockTableName).SetMap(setMap).Where(sq.Eq{"id": itemID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate update stock query for item %s: %w", itemID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, types.ErrStockNotFound
	}

	return r.StockItem(ctx, itemID)

}

func (r *StockRepository) DeleteStockItem(ctx context.Context, itemID string) error {

	query, args, err := psql().Delete(stockTableName).Where(sq.Eq{"id": itemID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete stock query for item %s: %w", itemID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete stock item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrStockNotFound
	}

	return nil

}
