package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailpulse.com/retailpulse/model"
	"retailpulse.com/retailpulse/utils"
)

func newTestStorage() *MemStorage {
	return NewMemStorage(nil, time.UTC)
}

func TestIDAllocation(t *testing.T) {
	s := newTestStorage()

	u1 := s.CreateUser(model.User{Phone: "+2348001111111", StoreID: 1})
	u2 := s.CreateUser(model.User{Phone: "+2348002222222", StoreID: 1})
	assert.Equal(t, 1, u1.ID)
	assert.Equal(t, 2, u2.ID)

	// counters are independent per entity type
	b := s.CreateBrand(model.Brand{Name: "Dettol"})
	assert.Equal(t, 1, b.ID)
}

func TestGetUserByPhoneExactMatch(t *testing.T) {
	s := newTestStorage()
	s.CreateUser(model.User{Phone: "+2348001234567", StoreID: 1})

	_, ok := s.GetUserByPhone("+2348001234567")
	assert.True(t, ok)

	_, ok = s.GetUserByPhone("2348001234567")
	assert.False(t, ok)

	_, ok = s.GetUserByPhone("")
	assert.False(t, ok)
}

func TestAttendanceOpenInvariant(t *testing.T) {
	s := newTestStorage()
	login := time.Date(2024, 3, 4, 7, 45, 0, 0, time.UTC)

	first, err := s.CreateAttendance(model.Attendance{
		UserID: 1, StoreID: 1, LoginTime: login, LoginStatus: model.LoginEarly, FaceScanLogin: "scan",
	})
	require.NoError(t, err)
	assert.True(t, first.Open())

	// a second open record for the same user is refused
	_, err = s.CreateAttendance(model.Attendance{
		UserID: 1, StoreID: 1, LoginTime: login.Add(time.Hour), LoginStatus: model.LoginLate, FaceScanLogin: "scan",
	})
	assert.ErrorIs(t, err, ErrOpenAttendance)

	// other users are unaffected
	_, err = s.CreateAttendance(model.Attendance{
		UserID: 2, StoreID: 1, LoginTime: login, LoginStatus: model.LoginEarly, FaceScanLogin: "scan",
	})
	require.NoError(t, err)

	// closing releases the slot
	logout := login.Add(8 * time.Hour)
	closed, ok := s.UpdateAttendance(first.ID, AttendanceUpdate{
		LogoutTime: &logout,
		Duration:   utils.Ptr(480),
	})
	require.True(t, ok)
	assert.False(t, closed.Open())
	assert.Equal(t, 480, *closed.Duration)

	_, ok = s.GetOpenAttendance(1)
	assert.False(t, ok)

	second, err := s.CreateAttendance(model.Attendance{
		UserID: 1, StoreID: 1, LoginTime: login.Add(24 * time.Hour), LoginStatus: model.LoginEarly, FaceScanLogin: "scan",
	})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestLatestVersusOpenAttendance(t *testing.T) {
	s := newTestStorage()
	day1 := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	a1, err := s.CreateAttendance(model.Attendance{UserID: 1, StoreID: 1, LoginTime: day1, LoginStatus: model.LoginOntime, FaceScanLogin: "scan"})
	require.NoError(t, err)
	logout := day1.Add(9 * time.Hour)
	_, ok := s.UpdateAttendance(a1.ID, AttendanceUpdate{LogoutTime: &logout, Duration: utils.Ptr(540)})
	require.True(t, ok)

	day2 := day1.Add(24 * time.Hour)
	a2, err := s.CreateAttendance(model.Attendance{UserID: 1, StoreID: 1, LoginTime: day2, LoginStatus: model.LoginOntime, FaceScanLogin: "scan"})
	require.NoError(t, err)

	latest, ok := s.GetLatestAttendance(1)
	require.True(t, ok)
	assert.Equal(t, a2.ID, latest.ID)

	open, ok := s.GetOpenAttendance(1)
	require.True(t, ok)
	assert.Equal(t, a2.ID, open.ID)

	// after the second record closes, latest still points at it but open is gone
	logout2 := day2.Add(8 * time.Hour)
	s.UpdateAttendance(a2.ID, AttendanceUpdate{LogoutTime: &logout2, Duration: utils.Ptr(480)})

	latest, ok = s.GetLatestAttendance(1)
	require.True(t, ok)
	assert.Equal(t, a2.ID, latest.ID)

	_, ok = s.GetOpenAttendance(1)
	assert.False(t, ok)
}

func TestUpdateInventoryRecomputesUnitsSold(t *testing.T) {
	s := newTestStorage()
	inv := s.CreateInventory(model.Inventory{StoreID: 1, ProductID: 1, OpeningStock: 100, Date: time.Now()})
	assert.Nil(t, inv.ClosingStock)
	assert.Nil(t, inv.UnitsSold)

	updated, ok := s.UpdateInventory(inv.ID, 85)
	require.True(t, ok)
	assert.Equal(t, 85, *updated.ClosingStock)
	assert.Equal(t, 15, *updated.UnitsSold)

	// resubmission overwrites, never accumulates
	updated, ok = s.UpdateInventory(inv.ID, 30)
	require.True(t, ok)
	assert.Equal(t, 70, *updated.UnitsSold)

	// closing above opening clamps at zero
	updated, ok = s.UpdateInventory(inv.ID, 120)
	require.True(t, ok)
	assert.Equal(t, 0, *updated.UnitsSold)

	_, ok = s.UpdateInventory(999, 10)
	assert.False(t, ok)
}

func TestInventoryJoinSkipsOrphans(t *testing.T) {
	s := newTestStorage()
	brand := s.CreateBrand(model.Brand{Name: "Dettol"})
	product := s.CreateProduct(model.Product{Name: "Dettol Original Soap 100g", BrandID: brand.ID})

	s.CreateInventory(model.Inventory{StoreID: 1, ProductID: product.ID, OpeningStock: 100, Date: time.Now()})
	// dangling product reference
	s.CreateInventory(model.Inventory{StoreID: 1, ProductID: 999, OpeningStock: 50, Date: time.Now()})
	// product whose brand is missing
	orphanProduct := s.CreateProduct(model.Product{Name: "Mystery", BrandID: 999})
	s.CreateInventory(model.Inventory{StoreID: 1, ProductID: orphanProduct.ID, OpeningStock: 50, Date: time.Now()})

	items := s.GetInventoryByStoreID(1)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].Product.ID)
	assert.Equal(t, brand.Name, items[0].Product.Brand.Name)
}

func TestCatalogueQueries(t *testing.T) {
	s := newTestStorage()
	store := s.CreateStore(model.Store{Name: "Lagos - Ikeja", Location: "Ikeja, Lagos", Coordinates: "6.5955,3.3671"})
	dettol := s.CreateBrand(model.Brand{Name: "Dettol"})
	harpic := s.CreateBrand(model.Brand{Name: "Harpic"})
	soap := s.CreateProduct(model.Product{Name: "Dettol Original Soap 100g", BrandID: dettol.ID})
	s.CreateProduct(model.Product{Name: "Dettol Cool Soap 100g", BrandID: dettol.ID})
	s.CreateProduct(model.Product{Name: "Harpic Power Plus 500ml", BrandID: harpic.ID})

	assert.Len(t, s.GetProductsByBrandID(dettol.ID), 2)
	assert.Len(t, s.GetProductsByBrandID(harpic.ID), 1)
	assert.Empty(t, s.GetProductsByBrandID(999))

	s.CreateInventory(model.Inventory{StoreID: store.ID, ProductID: soap.ID, OpeningStock: 100, Date: time.Now()})
	s.CreateInventory(model.Inventory{StoreID: 2, ProductID: soap.ID, OpeningStock: 40, Date: time.Now()})

	rows := s.GetInventoryByProductID(soap.ID)
	require.Len(t, rows, 2)
	assert.Equal(t, store.ID, rows[0].StoreID)

	full, ok := s.GetStoreWithInventory(store.ID)
	require.True(t, ok)
	assert.Equal(t, store.Name, full.Name)
	require.Len(t, full.Inventory, 1)
	assert.Equal(t, dettol.Name, full.Inventory[0].Product.Brand.Name)

	_, ok = s.GetStoreWithInventory(999)
	assert.False(t, ok)
}

func TestTargetDayMatch(t *testing.T) {
	s := newTestStorage()
	morning := time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC)
	target := s.CreateTarget(model.Target{UserID: 1, StoreID: 1, EngagementDailyTarget: 50, ConversationDailyTarget: 30, Date: morning})

	got, ok := s.GetTargetByUserIDAndDate(1, morning.Add(10*time.Hour))
	require.True(t, ok)
	assert.Equal(t, target.ID, got.ID)

	_, ok = s.GetTargetByUserIDAndDate(1, morning.Add(24*time.Hour))
	assert.False(t, ok)

	_, ok = s.GetTargetByUserIDAndDate(2, morning)
	assert.False(t, ok)
}

func TestUpdateTargetPartial(t *testing.T) {
	s := newTestStorage()
	target := s.CreateTarget(model.Target{UserID: 1, StoreID: 1, EngagementDailyTarget: 50, ConversationDailyTarget: 30, Date: time.Now()})

	updated, ok := s.UpdateTarget(target.ID, TargetUpdate{EngagementAchieved: utils.Ptr(12)})
	require.True(t, ok)
	assert.Equal(t, 12, updated.EngagementAchieved)
	assert.Equal(t, 50, updated.EngagementDailyTarget)
	assert.Equal(t, 0, updated.ConversationAchieved)

	_, ok = s.UpdateTarget(999, TargetUpdate{})
	assert.False(t, ok)
}

func TestSeed(t *testing.T) {
	s := newTestStorage()
	require.NoError(t, Seed(s, "admin123"))

	stores := s.GetStores()
	assert.Len(t, stores, 4)
	assert.Equal(t, "6.5955,3.3671", stores[0].Coordinates)

	admin, ok := s.GetUserByPhone("+2348000000000")
	require.True(t, ok)
	assert.True(t, admin.IsAdmin)
	require.NotNil(t, admin.Password)
	assert.NotEqual(t, "admin123", *admin.Password)

	staff, ok := s.GetUserByPhone("+2348001234567")
	require.True(t, ok)
	assert.False(t, staff.IsAdmin)
	assert.Equal(t, 1, staff.StoreID)

	assert.Len(t, s.GetBrands(), 4)
	assert.Len(t, s.GetProducts(), 5)
	for _, st := range stores {
		items := s.GetInventoryByStoreID(st.ID)
		assert.Len(t, items, 5)
		for _, item := range items {
			assert.GreaterOrEqual(t, item.OpeningStock, 50)
			assert.Nil(t, item.ClosingStock)
		}
	}
}
