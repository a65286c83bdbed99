package repository

import (
	"context"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

type OrderRepository interface {
	Load(ctx context.Context) ([]model.Order, error)
	Replace(ctx context.Context, orders []model.Order) error
}

type orderRepo struct{ store *store.Client }

func NewOrderRepository(s *store.Client) OrderRepository { return &orderRepo{store: s} }

func (r *orderRepo) Load(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if _, err := r.store.Get(ctx, keyOrders, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (r *orderRepo) Replace(ctx context.Context, orders []model.Order) error {
	return r.store.Set(ctx, keyOrders, orders)
}

// SupplierRepository is the append-only set of distinct supplier names,
// grown implicitly when an order introduces a new one.
type SupplierRepository interface {
	Load(ctx context.Context) ([]string, error)
	// Add appends name if absent; a no-op (and no write) otherwise.
	Add(ctx context.Context, name string) error
}

type supplierRepo struct{ store *store.Client }

func NewSupplierRepository(s *store.Client) SupplierRepository { return &supplierRepo{store: s} }

func (r *supplierRepo) Load(ctx context.Context) ([]string, error) {
	var suppliers []string
	if _, err := r.store.Get(ctx, keySuppliers, &suppliers); err != nil {
		return nil, err
	}
	if suppliers == nil {
		suppliers = []string{}
	}
	return suppliers, nil
}

func (r *supplierRepo) Add(ctx context.Context, name string) error {
	suppliers, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for _, s := range suppliers {
		if s == name {
			return nil
		}
	}
	return r.store.Set(ctx, keySuppliers, append(suppliers, name))
}
