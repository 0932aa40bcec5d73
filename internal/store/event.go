package store

import (
	"context"
	"fmt"
	"time"

	"lumbungwarga/internal/utils"
	"lumbungwarga/pkg/types"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const eventTableName = "lumbungwarga.community_events"

var eventColumns = utils.StructTagValues(types.CommunityEvent{})

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Events(ctx context.Context) ([]*types.CommunityEvent, error) {

	query, args, err := psql().Select(eventColumns...).From(eventTableName).
		OrderBy("starts_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate events query: %w", err)
	}

	var events = make([]*types.CommunityEvent, 0)
	err = pgxscan.Select(ctx, r.pool, &events, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	return events, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *types.CommunityEvent) error {

	now := time.Now()
	event.ID = utils.NanoID()
	event.CreatedAt = now
	event.UpdatedAt = now

	eventMap := utils.StructToMap(event)

	query, args, err := psql().Insert(eventTableName).SetMap(eventMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert event query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create event")

}
