package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/taimoorarshad43/PishPosh2-Backend/models"
	"gorm.io/gorm"
)

// DBResolver resolves cart entries against the products table.
type DBResolver struct {
	DB *gorm.DB
}

func (r DBResolver) Resolve(ctx context.Context, productID uint) (*Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("cart: resolve product %d: %w", productID, err)
	}

	return &Product{
		ID:          product.ProductID,
		Name:        product.ProductName,
		Description: product.ProductDescription,
		Price:       product.Price,
		Image:       product.DecodeImage(),
	}, nil
}
