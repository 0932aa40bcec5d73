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

const habitTableName = "lumbungwarga.eco_habit_logs"

var habitColumns = utils.StructTagValues(types.EcoHabitLog{})

type HabitRepository struct {
	pool *pgxpool.Pool
}

func NewHabitRepository(pool *pgxpool.Pool) *HabitRepository {
	return &HabitRepository{pool: pool}
}

func (r *HabitRepository) LogsByUser(ctx context.Context, userID string) ([]*types.EcoHabitLog, error) {

	query, args, err := psql().Select(habitColumns...).From(habitTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate habit logs query: %w", err)
	}

	var logs = make([]*types.EcoHabitLog, 0)
	err = pgxscan.Select(ctx, r.pool, &logs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch habit logs: %w", err)
	}

	for _, log := range logs {
		log.Derive()
	}

	return logs, nil
}

func (r *HabitRepository) CreateLog(ctx context.Context, log *types.EcoHabitLog) error {

	log.ID = utils.NanoID()
	log.CreatedAt = time.Now()

	logMap := utils.StructToMap(log)

	query, args, err := psql().Insert(habitTableName).SetMap(logMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert habit log query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return utils.ErrorWrapOrNil(err, "failed to create habit log")
	}

	log.Derive()
	return nil

}
