package mapper

import (
	"motoservice-be/internal/entity"
	"motoservice-be/internal/model"
)

type InvoiceMapper struct{}

func NewInvoiceMapper() *InvoiceMapper {
	return &InvoiceMapper{}
}

func (m *InvoiceMapper) ToEntity(i *model.Invoice) *entity.Invoice {
	if i == nil {
		return nil
	}
	return &entity.Invoice{
		Id:                 i.Id,
		BookingId:          i.BookingId,
		BaseCost:           i.BaseCost,
		ExtraCharges:       i.ExtraCharges,
		TotalAmount:        i.TotalAmount,
		PlatformCommission: i.PlatformCommission,
		ShopCommission:     i.ShopCommission,
		Status:             entity.InvoiceStatus(i.Status),
		IssuedDate:         i.IssuedDate,
	}
}

func (m *InvoiceMapper) ToModel(i *entity.Invoice) *model.Invoice {
	if i == nil {
		return nil
	}
	return &model.Invoice{
		Id:                 i.Id,
		BookingId:          i.BookingId,
		BaseCost:           i.BaseCost,
		ExtraCharges:       i.ExtraCharges,
		TotalAmount:        i.TotalAmount,
		PlatformCommission: i.PlatformCommission,
		ShopCommission:     i.ShopCommission,
		Status:             string(i.Status),
		IssuedDate:         i.IssuedDate,
	}
}
