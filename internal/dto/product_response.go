package dto

import "github.com/keerthanakottapalli/ShopSphere/internal/domain"

type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Page     int64            `json:"page"`
	Pages    int64            `json:"pages"`
}
