package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-gateway/internal/backend"
	"github.com/MKhiriev/go-catalog-gateway/models"
)

const productsResource = "products"

type productReader struct{}

// NewProductReader reads every product, newest first.
func NewProductReader() ProductReader {
	return productReader{}
}

func (productReader) ReadProducts(ctx context.Context, client *backend.Client) ([]models.Product, error) {
	var products []models.Product
	err := client.From(productsResource).
		Select().
		Order("created_at", false).
		Execute(ctx, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}
