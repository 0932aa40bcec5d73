package seed

import (
	"context"
	"errors"
	"fmt"

	"lumbungwarga/internal/store"
	"lumbungwarga/internal/utils"
	"lumbungwarga/pkg/types"
)

type wargaSeed struct {
	ID          string
	Nama        string
	Email       string
	PhoneNumber string
	Role        types.Role
	Desa        string
	Poin        int
}

var fakeWarga = []wargaSeed{
	{ID: "11111111-1111-1111-1111-111111111111", Nama: "Siti Rahmawati", Email: "siti.rahmawati+seed1@example.com", PhoneNumber: "081234567001", Role: types.RoleKetua, Desa: "Sukamaju", Poin: 120},
	{ID: "22222222-2222-2222-2222-222222222222", Nama: "Budi Santoso", Email: "budi.santoso+seed2@example.com", PhoneNumber: "081234567002", Role: types.RoleWarga, Desa: "Sukamaju", Poin: 80},
	{ID: "33333333-3333-3333-3333-333333333333", Nama: "Dewi Lestari", Email: "dewi.lestari+seed3@example.com", PhoneNumber: "081234567003", Role: types.RoleWarga, Desa: "Mekarsari", Poin: 45},
	{ID: "44444444-4444-4444-4444-444444444444", Nama: "Agus Prasetyo", Email: "agus.prasetyo+seed4@example.com", PhoneNumber: "081234567004", Role: types.RoleWarga, Desa: "Mekarsari", Poin: 0},
	{ID: "55555555-5555-5555-5555-555555555555", Nama: "Rina Wulandari", Email: "rina.wulandari+seed5@example.com", PhoneNumber: "081234567005", Role: types.RoleAdmin, Desa: "Sukamaju", Poin: 200},
}

func SeedWarga(ctx context.Context, usersRepo *store.UserRepository) error {
	for _, warga := range fakeWarga {
		_, err := usersRepo.User(ctx, warga.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrUserNotFound) {
			return fmt.Errorf("failed to fetch warga %s: %w", warga.ID, err)
		}

		user := &types.UserProfile{
			ID:            warga.ID,
			Nama:          warga.Nama,
			Email:         warga.Email,
			PhoneNumber:   utils.StringPtr(warga.PhoneNumber),
			Role:          warga.Role,
			PoinKomunitas: warga.Poin,
			Desa:          warga.Desa,
		}

		if err := usersRepo.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("failed to create warga %s: %w", warga.ID, err)
		}
	}

	return nil
}

func seedWargaIDs() []string {
	ids := make([]string, 0, len(fakeWarga))
	for _, warga := range fakeWarga {
		ids = append(ids, warga.ID)
	}
	return ids
}
