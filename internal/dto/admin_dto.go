package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Abuse ---

type AbuseFlagResponse struct {
	ShopId   uuid.UUID `json:"shop_id"`
	ShopName string    `json:"shop_name"`
	Type     string    `json:"type"`
	Severity string    `json:"severity"`
	Count    int       `json:"count"`
	Rate     float64   `json:"rate"`
}

type AbuseReportResponse struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Flags       []AbuseFlagResponse `json:"flags"`
}

type HighRiskShopResponse struct {
	ShopId      uuid.UUID `json:"shop_id"`
	ShopName    string    `json:"shop_name"`
	NoShowCount int64     `json:"no_show_count"`
	TotalCount  int64     `json:"total_count"`
	NoShowRate  float64   `json:"no_show_rate"`
}

// --- Audit trail ---

type AdminLogListRequest struct {
	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
	SubjectId string `query:"subject_id" validate:"omitempty,uuid"`
}

type AdminLogResponse struct {
	Id        uuid.UUID              `json:"id"`
	ActorId   uuid.UUID              `json:"actor_id"`
	ActorRole string                 `json:"actor_role"`
	Action    string                 `json:"action"`
	SubjectId uuid.UUID              `json:"subject_id"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type AdminLogListResponse struct {
	Items []AdminLogResponse `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
