package handlers

import (
	"retailpulse.com/retailpulse/core"
	"retailpulse.com/retailpulse/model"
	"retailpulse.com/retailpulse/utils"
)

type Coordinates struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type LoginRequest struct {
	Phone       string       `json:"phone" binding:"required"`
	StoreID     int          `json:"storeId" binding:"required"`
	Coordinates *Coordinates `json:"coordinates" binding:"required"`
	FaceScan    string       `json:"faceScan" binding:"required"`
}

type AdminLoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	FaceScan *string `json:"faceScan"`
}

type UpdateTargetRequest struct {
	EngagementDailyTarget   *int `json:"engagementDailyTarget" binding:"omitempty,gte=0"`
	EngagementAchieved      *int `json:"engagementAchieved" binding:"omitempty,gte=0"`
	ConversationDailyTarget *int `json:"conversationDailyTarget" binding:"omitempty,gte=0"`
	ConversationAchieved    *int `json:"conversationAchieved" binding:"omitempty,gte=0"`
}

type UpdateInventoryRequest struct {
	ClosingStock *int `json:"closingStock" binding:"required,gte=0"`
}

// InventoryItemDTO is a joined inventory row with the reconciled stock
// status the dashboards render.
type InventoryItemDTO struct {
	model.InventoryItem
	Status string `json:"status"`
}

func toInventoryDTO(item model.InventoryItem) InventoryItemDTO {
	return InventoryItemDTO{
		InventoryItem: item,
		Status:        core.Reconcile(item.OpeningStock, item.ClosingStock).Label(),
	}
}

func toInventoryDTOs(items []model.InventoryItem) []InventoryItemDTO {
	return utils.Map(items, toInventoryDTO)
}

type LoginResponse struct {
	User        model.User         `json:"user"`
	Store       model.Store        `json:"store"`
	Attendance  model.Attendance   `json:"attendance"`
	Target      model.Target       `json:"target"`
	Inventory   []InventoryItemDTO `json:"inventory"`
	LoginStatus model.LoginStatus  `json:"loginStatus"`
}

type Summary struct {
	TotalStores  int `json:"totalStores"`
	ActiveStores int `json:"activeStores"`
	EarlyCount   int `json:"earlyCount"`
	OntimeCount  int `json:"ontimeCount"`
	LateCount    int `json:"lateCount"`
}

type AdminLoginResponse struct {
	User       model.User             `json:"user"`
	Stores     []model.Store          `json:"stores"`
	Attendance []model.FullAttendance `json:"attendance"`
	Summary    Summary                `json:"summary"`
}

type CurrentUserResponse struct {
	User       model.User        `json:"user"`
	Store      model.Store       `json:"store"`
	Attendance *model.Attendance `json:"attendance"`
	Target     *model.Target     `json:"target"`
}

// StorePerformance is one store's reconciled inventory view for the admin
// dashboard.
type StorePerformance struct {
	Store model.Store        `json:"store"`
	Items []InventoryItemDTO `json:"items"`
}
