package model

import "time"

type LoginStatus string

const (
	LoginEarly  LoginStatus = "early"
	LoginOntime LoginStatus = "ontime"
	LoginLate   LoginStatus = "late"
)

type User struct {
	ID      int    `json:"id"`
	Phone   string `json:"phone"`
	StoreID int    `json:"storeId"`
	IsAdmin bool   `json:"isAdmin"`

	// bcrypt hash, staff accounts have none
	Password *string `json:"-"`
}

type Store struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	// "lat,lng"
	Coordinates string `json:"coordinates"`
}

type Attendance struct {
	ID             int         `json:"id"`
	UserID         int         `json:"userId"`
	StoreID        int         `json:"storeId"`
	LoginTime      time.Time   `json:"loginTime"`
	LoginStatus    LoginStatus `json:"loginStatus"`
	LogoutTime     *time.Time  `json:"logoutTime"`
	Duration       *int        `json:"duration"` // minutes
	FaceScanLogin  string      `json:"faceScanLogin"`
	FaceScanLogout *string     `json:"faceScanLogout"`
}

// Open reports whether the record has not been closed by a logout yet.
func (a Attendance) Open() bool {
	return a.LogoutTime == nil
}

type Target struct {
	ID                      int       `json:"id"`
	UserID                  int       `json:"userId"`
	StoreID                 int       `json:"storeId"`
	EngagementDailyTarget   int       `json:"engagementDailyTarget"`
	EngagementAchieved      int       `json:"engagementAchieved"`
	ConversationDailyTarget int       `json:"conversationDailyTarget"`
	ConversationAchieved    int       `json:"conversationAchieved"`
	Date                    time.Time `json:"date"`
}

type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	BrandID int    `json:"brandId"`
}

type Inventory struct {
	ID           int       `json:"id"`
	StoreID      int       `json:"storeId"`
	ProductID    int       `json:"productId"`
	OpeningStock int       `json:"openingStock"`
	ClosingStock *int      `json:"closingStock"`
	UnitsSold    *int      `json:"unitsSold"`
	Date         time.Time `json:"date"`
}

// ProductWithBrand is a Product joined with its Brand.
type ProductWithBrand struct {
	Product
	Brand Brand `json:"brand"`
}

// InventoryItem is an Inventory row joined with its Product and Brand.
type InventoryItem struct {
	Inventory
	Product ProductWithBrand `json:"product"`
}

// FullTarget is a Target joined with its User and Store.
type FullTarget struct {
	Target
	User  User  `json:"user"`
	Store Store `json:"store"`
}

// FullAttendance is an Attendance record joined with its User and Store.
type FullAttendance struct {
	Attendance
	User  User  `json:"user"`
	Store Store `json:"store"`
}

// StoreWithInventory is a Store with its joined inventory rows.
type StoreWithInventory struct {
	Store
	Inventory []InventoryItem `json:"inventory"`
}
