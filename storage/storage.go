// Package storage holds the process-lifetime entity store. The backing
// implementation is in-memory and resets on restart; everything is exposed
// through the Storage interface so handlers never touch globals.
package storage

import (
	"errors"
	"time"

	"retailpulse.com/retailpulse/model"
)

// ErrOpenAttendance is returned when a second open attendance record would be
// created for the same user.
var ErrOpenAttendance = errors.New("user already has an open attendance record")

// AttendanceUpdate carries the closing fields of a shift. Nil fields are left
// untouched.
type AttendanceUpdate struct {
	LogoutTime     *time.Time
	Duration       *int
	FaceScanLogout *string
}

// TargetUpdate is a partial update of a daily target. Nil fields are left
// untouched.
type TargetUpdate struct {
	EngagementDailyTarget   *int
	EngagementAchieved      *int
	ConversationDailyTarget *int
	ConversationAchieved    *int
}

type Storage interface {
	GetUser(id int) (model.User, bool)
	GetUserByPhone(phone string) (model.User, bool)
	CreateUser(u model.User) model.User

	GetStore(id int) (model.Store, bool)
	GetStores() []model.Store
	CreateStore(s model.Store) model.Store

	CreateAttendance(a model.Attendance) (model.Attendance, error)
	UpdateAttendance(id int, upd AttendanceUpdate) (model.Attendance, bool)
	GetAttendanceByUserID(userID int) []model.Attendance
	GetAttendanceByStoreID(storeID int) []model.Attendance
	GetLatestAttendance(userID int) (model.Attendance, bool)
	GetOpenAttendance(userID int) (model.Attendance, bool)
	GetAllAttendance() []model.FullAttendance

	CreateTarget(t model.Target) model.Target
	UpdateTarget(id int, upd TargetUpdate) (model.Target, bool)
	GetTargetByUserIDAndDate(userID int, date time.Time) (model.Target, bool)
	GetTargetsByStoreID(storeID int) []model.FullTarget

	GetBrands() []model.Brand
	CreateBrand(b model.Brand) model.Brand

	GetProducts() []model.Product
	GetProductsByBrandID(brandID int) []model.Product
	CreateProduct(p model.Product) model.Product

	CreateInventory(i model.Inventory) model.Inventory
	UpdateInventory(id int, closingStock int) (model.Inventory, bool)
	GetInventoryByStoreID(storeID int) []model.InventoryItem
	GetInventoryByProductID(productID int) []model.Inventory
	GetStoreWithInventory(storeID int) (model.StoreWithInventory, bool)
}
