package storage

import (
	"math/rand"
	"time"

	"retailpulse.com/retailpulse/auth"
	"retailpulse.com/retailpulse/model"
	"retailpulse.com/retailpulse/utils"
)

// Seed provisions the reference data every deployment starts with: the store
// network, the admin account, one staff account per store, the brand/product
// catalogue, and today's inventory and target baselines.
func Seed(s *MemStorage, adminPassword string) error {
	stores := []model.Store{
		{Name: "Lagos - Ikeja", Location: "Ikeja, Lagos", Coordinates: "6.5955,3.3671"},
		{Name: "Lagos - Lekki", Location: "Lekki, Lagos", Coordinates: "6.593047,3.363732"},
		{Name: "Abuja - Central", Location: "Central, Abuja", Coordinates: "9.0765,7.3986"},
		{Name: "Port Harcourt", Location: "Port Harcourt", Coordinates: "4.8156,7.0498"},
	}
	for _, st := range stores {
		s.CreateStore(st)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	s.CreateUser(model.User{
		Phone:    "+2348000000000",
		StoreID:  1,
		IsAdmin:  true,
		Password: utils.Ptr(string(hash)),
	})

	staffPhones := []string{
		"+2348001234567",
		"+2348012345678",
		"+2348023456789",
		"+2348034567890",
	}
	for i, phone := range staffPhones {
		s.CreateUser(model.User{Phone: phone, StoreID: i + 1})
	}

	brandNames := []string{"Dettol", "Harpic", "Mortein", "Air Wick"}
	brands := make([]model.Brand, 0, len(brandNames))
	for _, name := range brandNames {
		brands = append(brands, s.CreateBrand(model.Brand{Name: name}))
	}

	products := []model.Product{
		{Name: "Dettol Original Soap 100g", BrandID: brands[0].ID},
		{Name: "Dettol Cool Soap 100g", BrandID: brands[0].ID},
		{Name: "Harpic Power Plus 500ml", BrandID: brands[1].ID},
		{Name: "Mortein Instant Power Spray 300ml", BrandID: brands[2].ID},
		{Name: "Air Wick Freshmatic Refill Lavender", BrandID: brands[3].ID},
	}
	created := make([]model.Product, 0, len(products))
	for _, p := range products {
		created = append(created, s.CreateProduct(p))
	}

	now := time.Now().In(s.loc)
	for _, st := range s.GetStores() {
		for _, p := range created {
			s.CreateInventory(model.Inventory{
				StoreID:      st.ID,
				ProductID:    p.ID,
				OpeningStock: rand.Intn(100) + 50,
				Date:         now,
			})
		}
	}

	// one baseline target per staff user for today
	for i := range staffPhones {
		s.CreateTarget(model.Target{
			UserID:                  i + 2, // admin is user 1
			StoreID:                 i + 1,
			EngagementDailyTarget:   50,
			ConversationDailyTarget: 30,
			Date:                    now,
		})
	}

	return nil
}
