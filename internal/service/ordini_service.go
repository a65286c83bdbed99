package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/dto"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
)

var ErrSupplierRequired = errors.New("fornitore obbligatorio")

// OrderFilter selects which orders List returns.
type OrderFilter string

const (
	OrdersAll       OrderFilter = "all"
	OrdersActive    OrderFilter = "active"
	OrdersCompleted OrderFilter = "completed"
)

type OrdiniService interface {
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	Suppliers(ctx context.Context) ([]string, error)
	// Create prepends a new order; a NewSupplier name joins the supplier set.
	Create(ctx context.Context, req dto.OrderRequest) (*model.Order, error)
	Update(ctx context.Context, id string, req dto.OrderRequest) (*model.Order, error)
	ToggleCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ordiniService struct {
	orders    repository.OrderRepository
	suppliers repository.SupplierRepository
}

func NewOrdiniService(orders repository.OrderRepository, suppliers repository.SupplierRepository) OrdiniService {
	return &ordiniService{orders: orders, suppliers: suppliers}
}

func (s *ordiniService) List(ctx context.Context, filter OrderFilter) ([]model.Order, error) {
	all, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" || filter == OrdersAll {
		return all, nil
	}
	out := make([]model.Order, 0, len(all))
	for _, o := range all {
		if (filter == OrdersActive && !o.Completed) || (filter == OrdersCompleted && o.Completed) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *ordiniService) Suppliers(ctx context.Context) ([]string, error) {
	return s.suppliers.Load(ctx)
}

// resolveSupplier picks the new name over the existing one and records it.
func (s *ordiniService) resolveSupplier(ctx context.Context, req dto.OrderRequest) (string, error) {
	name := req.Supplier
	if req.NewSupplier != "" {
		name = req.NewSupplier
		if err := s.suppliers.Add(ctx, name); err != nil {
			return "", err
		}
	}
	if name == "" {
		return "", ErrSupplierRequired
	}
	return name, nil
}

// keptItems drops blank rows from the order form.
func keptItems(items []dto.OrderItemInput) []model.OrderItem {
	out := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		if it.Name != "" {
			out = append(out, model.OrderItem{Name: it.Name, Qty: it.Qty})
		}
	}
	return out
}

func (s *ordiniService) Create(ctx context.Context, req dto.OrderRequest) (*model.Order, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	supplier, err := s.resolveSupplier(ctx, req)
	if err != nil {
		return nil, err
	}
	order := model.Order{
		ID:        uuid.NewString(),
		Supplier:  supplier,
		Date:      req.Date,
		Deadline:  req.Deadline,
		Items:     keptItems(req.Items),
		Notes:     req.Notes,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	all, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	// Newest first, as the order list renders them.
	if err := s.orders.Replace(ctx, append([]model.Order{order}, all...)); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *ordiniService) Update(ctx context.Context, id string, req dto.OrderRequest) (*model.Order, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	supplier, err := s.resolveSupplier(ctx, req)
	if err != nil {
		return nil, err
	}
	all, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID != id {
			continue
		}
		all[i].Supplier = supplier
		all[i].Date = req.Date
		all[i].Deadline = req.Deadline
		all[i].Items = keptItems(req.Items)
		all[i].Notes = req.Notes
		if err := s.orders.Replace(ctx, all); err != nil {
			return nil, err
		}
		o := all[i]
		return &o, nil
	}
	return nil, ErrNotFound
}

func (s *ordiniService) ToggleCompleted(ctx context.Context, id string) error {
	all, err := s.orders.Load(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			all[i].Completed = !all[i].Completed
			return s.orders.Replace(ctx, all)
		}
	}
	return ErrNotFound
}

func (s *ordiniService) Delete(ctx context.Context, id string) error {
	all, err := s.orders.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.Order, 0, len(all))
	for _, o := range all {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(all) {
		return ErrNotFound
	}
	return s.orders.Replace(ctx, kept)
}
