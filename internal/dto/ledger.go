package dto

import "github.com/Soufian-A/runners-erp/internal/domain"

type ReconciliationResponseDTO struct {
	DriverID  string       `json:"driver_id"`
	Wallet    domain.Money `json:"wallet"`
	LedgerSum domain.Money `json:"ledger_sum"`
	Balanced  bool         `json:"balanced"`
}

type ClientBalanceResponseDTO struct {
	ClientID string       `json:"client_id"`
	Balance  domain.Money `json:"balance"`
}
