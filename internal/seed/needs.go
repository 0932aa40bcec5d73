package seed

import (
	"context"
	"fmt"

	"lumbungwarga/internal/store"
	"lumbungwarga/pkg/types"

	"github.com/k0kubun/pp/v3"
)

type needSeed struct {
	ItemName    string
	Description string
	IsUrgent    bool
	Category    types.NeedCategory
	Needed      []string
}

var fakeNeeds = []needSeed{
	{ItemName: "Beras 10kg", Description: "Kebutuhan pokok untuk keluarga dengan 3 anak", IsUrgent: true, Category: types.NeedCategoryFood, Needed: []string{"beras", "minyak goreng"}},
	{ItemName: "Seragam sekolah SD", Description: "Ukuran anak umur 8 tahun", IsUrgent: false, Category: types.NeedCategoryClothes},
	{ItemName: "Buku pelajaran kelas 5", Description: "Paket buku tematik semester ganjil", IsUrgent: false, Category: types.NeedCategoryEducation, Needed: []string{"buku tematik", "alat tulis"}},
	{ItemName: "Obat demam anak", Description: "Untuk posyandu RW 03", IsUrgent: true, Category: types.NeedCategoryHealth},
}

// SeedNeeds inserts fixture needs spread over the seeded warga. Unlike
// warga, needs have generated IDs, so existing rows are detected by count.
func SeedNeeds(ctx context.Context, needsRepo *store.NeedRepository, verbose bool) error {
	existing, err := needsRepo.Needs(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch existing needs: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	wargaIDs := seedWargaIDs()

	for i, fixture := range fakeNeeds {
		need := &types.NeedRequest{
			UserID:      wargaIDs[i%len(wargaIDs)],
			ItemName:    fixture.ItemName,
			Description: fixture.Description,
			IsUrgent:    fixture.IsUrgent,
			Category:    fixture.Category,
			Needed:      fixture.Needed,
		}

		if err := needsRepo.CreateNeed(ctx, need); err != nil {
			return fmt.Errorf("failed to create need %q: %w", fixture.ItemName, err)
		}

		if verbose {
			pp.Println(need.ID, need.ItemName)
		}
	}

	return nil
}
