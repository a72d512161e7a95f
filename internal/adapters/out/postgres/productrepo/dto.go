// Package productrepo implements product persistence over GORM, mapping the
// product entity to its relational representation.
package productrepo

import (
	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"size:255"`
	Price         decimal.Decimal `gorm:"type:numeric(14,2)"`
	WeightKg      decimal.Decimal `gorm:"type:numeric(10,3)"`
	IsActive      bool            `gorm:"index"`
	StockQuantity int
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID().Bytes(),
		Name:          p.Name(),
		Price:         p.Price(),
		WeightKg:      p.WeightKg(),
		IsActive:      p.IsActive(),
		StockQuantity: p.StockQuantity(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price, dto.WeightKg, dto.IsActive, dto.StockQuantity)
}
