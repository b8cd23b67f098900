package dto

type SettlementResultDTO struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Order settled"`
	OrderID string `json:"order_id" example:"8f14e45f-ceea-467e-a8a4-4c1f2b1e4f6a"`
}
