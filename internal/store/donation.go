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

const donationTableName = "lumbungwarga.donations"

var donationColumns = utils.StructTagValues(types.Donation{})

type DonationRepository struct {
	pool *pgxpool.Pool
}

func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

func (r *DonationRepository) Donation(ctx context.Context, donationID string) (*types.Donation, error) {

	query, args, err := psql().Select(donationColumns...).From(donationTableName).
		Where(sq.Eq{"id": donationID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate donation query: %w", err)
	}

	var donation = new(types.Donation)
	err = pgxscan.Get(ctx, r.pool, donation, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrDonationNotFound
		}
		return nil, fmt.Errorf("failed to fetch donation: %w", err)
	}

	return donation, nil
}

func (r *DonationRepository) Donations(ctx context.Context) ([]*types.Donation, error) {

	query, args, err := psql().Select(donationColumns...).From(donationTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate donations query: %w", err)
	}

	var donations = make([]*types.Donation, 0)
	err = pgxscan.Select(ctx, r.pool, &donations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch donations: %w", err)
	}

	return donations, nil
}

func (r *DonationRepository) CreateDonation(ctx context.Context, donation *types.Donation) error {

	now := time.Now()
	donation.ID = utils.NanoID()
	donation.Status = types.DonationStatusAvailable
	donation.CreatedAt = now
	donation.UpdatedAt = now

	donationMap := utils.StructToMap(donation)

	query, args, err := psql().Insert(donationTableName).SetMap(donationMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert donation query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create donation")

}

// UpdateDonation applies a status change and/or a need link. The status
// progression is one-directional; a backward move is rejected before any
// write happens.
func (r *DonationRepository) UpdateDonation(ctx context.Context, donationID string, update types.UpdateDonationRequest) (*types.Donation, error) {

	donation, err := r.Donation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	setMap := map[string]any{
		"updated_at": time.Now(),
	}
	if update.Status != nil {
		if !donation.Status.CanAdvanceTo(*update.Status) {
			return nil, types.ErrBackwardTransition
		}
		setMap["status"] = *update.Status
		donation.Status = *update.Status
	}
	if update.NeedRequestID != nil {
		setMap["need_request_id"] = nullable(*update.NeedRequestID)
		donation.NeedRequestID = update.NeedRequestID
	}

	query, args, err := psql().Update(donationTableName).SetMap(setMap).Where(sq.Eq{"id": donationID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate update donation query for donation %s: %w", donationID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update donation %s: %w", donationID, err)
	}

	return donation, nil

}
