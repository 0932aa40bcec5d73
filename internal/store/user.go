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

const userTableName = "lumbungwarga.users"

var userColumns = utils.StructTagValues(types.UserProfile{})

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) User(ctx context.Context, userID string) (*types.UserProfile, error) {
	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user query: %w", err)
	}

	var user types.UserProfile
	err = pgxscan.Get(ctx, r.pool, &user, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) UsersByIDs(ctx context.Context, userIDs []string) ([]*types.UserProfile, error) {
	if len(userIDs) == 0 {
		return []*types.UserProfile{}, nil
	}

	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		Where(sq.Eq{"id": userIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate users query: %w", err)
	}

	var users = make([]*types.UserProfile, 0)
	err = pgxscan.Select(ctx, r.pool, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *types.UserProfile) error {

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	userMap := utils.StructToMap(user)

	query, args, err := psql().Insert(userTableName).SetMap(userMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert user query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create user")

}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, update types.UpdateProfileRequest) (*types.UserProfile, error) {

	setMap := map[string]any{
		"updated_at": time.Now(),
	}
	if update.Nama != nil {
		setMap["nama"] = *update.Nama
	}
	if update.PhoneNumber != nil {
		setMap["phone_number"] = nullable(*update.PhoneNumber)
	}
	if update.Bio != nil {
		setMap["bio"] = nullable(*update.Bio)
	}

	query, args, err := psql().Update(userTableName).SetMap(setMap).Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate update profile query for user %s: %w", userID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, types.ErrUserNotFound
	}

	return r.User(ctx, userID)

}

func (r *UserRepository) SetAvatarURL(ctx context.Context, userID, avatarURL string) error {

	query, args, err := psql().Update(userTableName).
		SetMap(map[string]any{
			"avatar_url": avatarURL,
			"updated_at": time.Now(),
		}).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate avatar update query for user %s: %w", userID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set avatar for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrUserNotFound
	}

	return nil

}

// AddCommunityPoints bumps poin_komunitas, used when a donation reaches
// delivered.
func (r *UserRepository) AddCommunityPoints(ctx context.Context, userID string, delta int) error {

	query, args, err := psql().Update(userTableName).
		Set("poin_komunitas", sq.Expr("poin_komunitas + ?", delta)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate points update query for user %s: %w", userID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to add community points")

}

// Leaderboard ranks residents by poin_komunitas plus the sum of their
// logged habit points.
func (r *UserRepository) Leaderboard(ctx context.Context, limit uint64) ([]*types.LeaderboardEntry, error) {

	query, args, err := psql().
		Select(
			"u.id AS user_id",
			"u.nama",
			"u.desa",
			"u.poin_komunitas + COALESCE(SUM(h.points), 0) AS total_points",
		).
		From(userTableName + " u").
		LeftJoin(habitTableName + " h ON h.user_id = u.id").
		GroupBy("u.id", "u.nama", "u.desa", "u.poin_komunitas").
		OrderBy("total_points desc", "u.nama asc").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate leaderboard query: %w", err)
	}

	var entries = make([]*types.LeaderboardEntry, 0)
	err = pgxscan.Select(ctx, r.pool, &entries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}

	return entries, nil
}
