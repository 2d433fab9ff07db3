package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"retailpulse.com/retailpulse/core"
	"retailpulse.com/retailpulse/model"
	"retailpulse.com/retailpulse/utils"
)

// MemStorage keeps every entity in maps guarded by a single RWMutex, so each
// mutation runs to completion without interleaving. IDs are monotonic per
// entity type and never reused.
type MemStorage struct {
	mu sync.RWMutex

	users     map[int]model.User
	stores    map[int]model.Store
	atts      map[int]model.Attendance
	targets   map[int]model.Target
	brands    map[int]model.Brand
	products  map[int]model.Product
	inventory map[int]model.Inventory

	// userID -> attendance ID of the record without a logout yet
	openAtts map[int]int

	nextUserID      int
	nextStoreID     int
	nextAttID       int
	nextTargetID    int
	nextBrandID     int
	nextProductID   int
	nextInventoryID int

	logger *logrus.Logger
	loc    *time.Location
}

func NewMemStorage(logger *logrus.Logger, loc *time.Location) *MemStorage {
	if loc == nil {
		loc = utils.LagosTZ
	}
	return &MemStorage{
		users:     make(map[int]model.User),
		stores:    make(map[int]model.Store),
		atts:      make(map[int]model.Attendance),
		targets:   make(map[int]model.Target),
		brands:    make(map[int]model.Brand),
		products:  make(map[int]model.Product),
		inventory: make(map[int]model.Inventory),
		openAtts:  make(map[int]int),

		nextUserID:      1,
		nextStoreID:     1,
		nextAttID:       1,
		nextTargetID:    1,
		nextBrandID:     1,
		nextProductID:   1,
		nextInventoryID: 1,

		logger: logger,
		loc:    loc,
	}
}

// logSkip records a join that dropped a row over a dangling foreign key.
func (m *MemStorage) logSkip(funcName, entity string, id int) {
	if m.logger == nil {
		return
	}
	m.logger.WithFields(logrus.Fields{
		"module":   "storage",
		"funcName": funcName,
		"entity":   entity,
		"id":       id,
	}).Warn("skipping row with dangling reference")
}

// Users

func (m *MemStorage) GetUser(id int) (model.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	return u, ok
}

func (m *MemStorage) GetUserByPhone(phone string) (model.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Phone == phone {
			return u, true
		}
	}
	return model.User{}, false
}

func (m *MemStorage) CreateUser(u model.User) model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = m.nextUserID
	m.nextUserID++
	m.users[u.ID] = u
	return u
}

// Stores

func (m *MemStorage) GetStore(id int) (model.Store, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.stores[id]
	return s, ok
}

func (m *MemStorage) GetStores() []model.Store {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Store, 0, len(m.stores))
	for _, s := range m.stores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemStorage) CreateStore(s model.Store) model.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.nextStoreID
	m.nextStoreID++
	m.stores[s.ID] = s
	return s
}

// Attendance

func (m *MemStorage) CreateAttendance(a model.Attendance) (model.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.openAtts[a.UserID]; exists {
		return model.Attendance{}, ErrOpenAttendance
	}

	a.ID = m.nextAttID
	m.nextAttID++
	a.LogoutTime = nil
	a.Duration = nil
	m.atts[a.ID] = a
	m.openAtts[a.UserID] = a.ID
	return a, nil
}

func (m *MemStorage) UpdateAttendance(id int, upd AttendanceUpdate) (model.Attendance, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.atts[id]
	if !ok {
		return model.Attendance{}, false
	}
	if upd.LogoutTime != nil {
		a.LogoutTime = upd.LogoutTime
		if m.openAtts[a.UserID] == id {
			delete(m.openAtts, a.UserID)
		}
	}
	if upd.Duration != nil {
		a.Duration = upd.Duration
	}
	if upd.FaceScanLogout != nil {
		a.FaceScanLogout = upd.FaceScanLogout
	}
	m.atts[id] = a
	return a, true
}

func (m *MemStorage) GetAttendanceByUserID(userID int) []model.Attendance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.attendanceWhere(func(a model.Attendance) bool { return a.UserID == userID })
}

func (m *MemStorage) GetAttendanceByStoreID(storeID int) []model.Attendance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.attendanceWhere(func(a model.Attendance) bool { return a.StoreID == storeID })
}

// attendanceWhere expects the caller to hold at least the read lock.
func (m *MemStorage) attendanceWhere(pred func(model.Attendance) bool) []model.Attendance {
	out := make([]model.Attendance, 0)
	for _, a := range m.atts {
		if pred(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetLatestAttendance returns the record with the maximum login time for the
// user, open or closed.
func (m *MemStorage) GetLatestAttendance(userID int) (model.Attendance, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest model.Attendance
	found := false
	for _, a := range m.atts {
		if a.UserID != userID {
			continue
		}
		if !found || a.LoginTime.After(latest.LoginTime) {
			latest = a
			found = true
		}
	}
	return latest, found
}

// GetOpenAttendance returns the user's record that has not been logged out
// yet, if any. At most one exists.
func (m *MemStorage) GetOpenAttendance(userID int) (model.Attendance, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.openAtts[userID]
	if !ok {
		return model.Attendance{}, false
	}
	a, ok := m.atts[id]
	return a, ok
}

func (m *MemStorage) GetAllAttendance() []model.FullAttendance {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.FullAttendance, 0, len(m.atts))
	for _, a := range m.atts {
		user, uok := m.users[a.UserID]
		store, sok := m.stores[a.StoreID]
		if !uok || !sok {
			m.logSkip("GetAllAttendance", "attendance", a.ID)
			continue
		}
		out = append(out, model.FullAttendance{Attendance: a, User: user, Store: store})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Targets

func (m *MemStorage) CreateTarget(t model.Target) model.Target {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = m.nextTargetID
	m.nextTargetID++
	m.targets[t.ID] = t
	return t
}

func (m *MemStorage) UpdateTarget(id int, upd TargetUpdate) (model.Target, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.targets[id]
	if !ok {
		return model.Target{}, false
	}
	if upd.EngagementDailyTarget != nil {
		t.EngagementDailyTarget = *upd.EngagementDailyTarget
	}
	if upd.EngagementAchieved != nil {
		t.EngagementAchieved = *upd.EngagementAchieved
	}
	if upd.ConversationDailyTarget != nil {
		t.ConversationDailyTarget = *upd.ConversationDailyTarget
	}
	if upd.ConversationAchieved != nil {
		t.ConversationAchieved = *upd.ConversationAchieved
	}
	m.targets[id] = t
	return t, true
}

func (m *MemStorage) GetTargetByUserIDAndDate(userID int, date time.Time) (model.Target, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.targets {
		if t.UserID == userID && utils.SameDay(t.Date, date, m.loc) {
			return t, true
		}
	}
	return model.Target{}, false
}

func (m *MemStorage) GetTargetsByStoreID(storeID int) []model.FullTarget {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.FullTarget, 0)
	for _, t := range m.targets {
		if t.StoreID != storeID {
			continue
		}
		user, uok := m.users[t.UserID]
		store, sok := m.stores[t.StoreID]
		if !uok || !sok {
			m.logSkip("GetTargetsByStoreID", "target", t.ID)
			continue
		}
		out = append(out, model.FullTarget{Target: t, User: user, Store: store})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Brands

func (m *MemStorage) GetBrands() []model.Brand {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Brand, 0, len(m.brands))
	for _, b := range m.brands {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemStorage) CreateBrand(b model.Brand) model.Brand {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = m.nextBrandID
	m.nextBrandID++
	m.brands[b.ID] = b
	return b
}

// Products

func (m *MemStorage) GetProducts() []model.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemStorage) GetProductsByBrandID(brandID int) []model.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Product, 0)
	for _, p := range m.products {
		if p.BrandID == brandID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemStorage) CreateProduct(p model.Product) model.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextProductID
	m.nextProductID++
	m.products[p.ID] = p
	return p
}

// Inventory

func (m *MemStorage) CreateInventory(i model.Inventory) model.Inventory {
	m.mu.Lock()
	defer m.mu.Unlock()
	i.ID = m.nextInventoryID
	m.nextInventoryID++
	i.ClosingStock = nil
	i.UnitsSold = nil
	m.inventory[i.ID] = i
	return i
}

// UpdateInventory records the reported closing stock and recomputes units
// sold through the shared reconciliation rule.
func (m *MemStorage) UpdateInventory(id int, closingStock int) (model.Inventory, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inv, ok := m.inventory[id]
	if !ok {
		return model.Inventory{}, false
	}
	inv.ClosingStock = &closingStock
	res := core.Reconcile(inv.OpeningStock, inv.ClosingStock)
	inv.UnitsSold = &res.UnitsSold
	m.inventory[id] = inv
	return inv, true
}

// GetInventoryByStoreID joins inventory rows with their product and brand.
// Rows with a dangling product or brand reference are skipped and logged
// rather than failing the whole query.
func (m *MemStorage) GetInventoryByStoreID(storeID int) []model.InventoryItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.InventoryItem, 0)
	for _, inv := range m.inventory {
		if inv.StoreID != storeID {
			continue
		}
		product, ok := m.products[inv.ProductID]
		if !ok {
			m.logSkip("GetInventoryByStoreID", "inventory", inv.ID)
			continue
		}
		brand, ok := m.brands[product.BrandID]
		if !ok {
			m.logSkip("GetInventoryByStoreID", "inventory", inv.ID)
			continue
		}
		out = append(out, model.InventoryItem{
			Inventory: inv,
			Product:   model.ProductWithBrand{Product: product, Brand: brand},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemStorage) GetInventoryByProductID(productID int) []model.Inventory {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Inventory, 0)
	for _, inv := range m.inventory {
		if inv.ProductID == productID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemStorage) GetStoreWithInventory(storeID int) (model.StoreWithInventory, bool) {
	store, ok := m.GetStore(storeID)
	if !ok {
		return model.StoreWithInventory{}, false
	}
	return model.StoreWithInventory{
		Store:     store,
		Inventory: m.GetInventoryByStoreID(storeID),
	}, true
}
