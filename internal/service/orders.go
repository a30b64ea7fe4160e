package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"jolof-kitchen/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrEmptyCart         = errors.New("order has no items")
	ErrMissingCustomer   = errors.New("customer name and phone are required")
	ErrZoneRequired      = errors.New("delivery orders require a delivery zone")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrRefExhausted      = errors.New("could not allocate a unique order reference")
)

// orderRefAttempts bounds the re-roll loop when a fresh order reference
// collides with one already in the log.
const orderRefAttempts = 10

// newOrderRef is swapped out in tests to force collisions.
var newOrderRef = domain.NewOrderRef

// BuildItem materializes one cart line. The dish and extras are copied by
// value so catalog edits never reach into past orders. Duplicate extras
// collapse to one: the selection is a set.
func BuildItem(dish domain.Dish, extras []domain.Extra, quantity int) (domain.OrderItem, error) {
	if quantity < 1 {
		return domain.OrderItem{}, ErrInvalidQuantity
	}

	var chosen []domain.Extra
	seen := make(map[string]bool)
	extrasTotal := 0
	for _, e := range extras {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		chosen = append(chosen, e)
		extrasTotal += e.Price
	}

	return domain.OrderItem{
		ID:         domain.NewItemID(),
		Dish:       dish,
		Extras:     chosen,
		Quantity:   quantity,
		TotalPrice: (dish.Price + extrasTotal) * quantity,
	}, nil
}

// BuildOrder assembles a full order from a cart. It is pure: nothing is
// persisted until the caller hands the result to OrderService.Place.
func BuildOrder(items []domain.OrderItem, name, phone string, mode domain.OrderMode, zone *domain.LocationZone, payment domain.PaymentMethod) (domain.Order, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return domain.Order{}, ErrMissingCustomer
	}
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	subtotal := 0
	for _, item := range items {
		subtotal += item.TotalPrice
	}

	order := domain.Order{
		ID:            domain.NewOrderRef(),
		CustomerName:  name,
		CustomerPhone: phone,
		Mode:          mode,
		PaymentMethod: payment,
		Items:         items,
		Subtotal:      subtotal,
		Status:        domain.StatusReceived,
		CreatedAt:     time.Now().UTC(),
	}
	if mode == domain.ModeDelivery && zone != nil {
		z := *zone
		order.Location = &z
		order.DeliveryFee = z.DeliveryFee
	}
	order.TotalAmount = order.Subtotal + order.DeliveryFee
	return order, nil
}

type OrderService struct {
	repo   OrderRepository
	events EventPublisher
}

func NewOrderService(repo OrderRepository, events EventPublisher) *OrderService {
	return &OrderService{repo: repo, events: events}
}

// Place appends the order to the log. Delivery orders must carry a zone,
// and the reference is re-rolled if it collides with the persisted log.
func (s *OrderService) Place(order domain.Order) (domain.Order, error) {
	if order.Mode == domain.ModeDelivery && order.Location == nil {
		return domain.Order{}, ErrZoneRequired
	}

	existing := make(map[string]bool)
	for _, o := range s.repo.Orders() {
		existing[o.ID] = true
	}
	for i := 0; i < orderRefAttempts && existing[order.ID]; i++ {
		order.ID = newOrderRef()
	}
	if existing[order.ID] {
		return domain.Order{}, ErrRefExhausted
	}

	if err := s.repo.AppendOrder(order); err != nil {
		return domain.Order{}, err
	}
	s.publish(domain.EventOrderPlaced, order)
	return order, nil
}

// List returns the log newest-first for the admin views.
func (s *OrderService) List() []domain.Order {
	orders := s.repo.Orders()
	listed := make([]domain.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		listed = append(listed, orders[i])
	}
	return listed
}

// Find looks an order up by reference, ignoring case so customers can
// type the reference however it was written down.
func (s *OrderService) Find(id string) (domain.Order, error) {
	for _, o := range s.repo.Orders() {
		if strings.EqualFold(o.ID, id) {
			return o, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

// TrackingResult is what the customer tracking view renders: the order
// plus how far along the four-step timeline it is.
type TrackingResult struct {
	Order         domain.Order `json:"order"`
	ProgressIndex int          `json:"progressIndex"`
}

func (s *OrderService) Track(id string) (*TrackingResult, error) {
	order, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	return &TrackingResult{Order: order, ProgressIndex: domain.ProgressIndex(order.Status)}, nil
}

// SetStatus moves an order through its lifecycle. Only the status field
// ever changes after creation.
func (s *OrderService) SetStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	orders := s.repo.Orders()
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if !domain.CanTransition(orders[i].Status, status) {
			return domain.Order{}, ErrInvalidTransition
		}
		orders[i].Status = status
		if err := s.repo.SaveOrders(orders); err != nil {
			return domain.Order{}, err
		}
		s.publish(domain.EventStatusChanged, orders[i])
		return orders[i], nil
	}
	return domain.Order{}, ErrOrderNotFound
}

func (s *OrderService) publish(eventType string, order domain.Order) {
	if s.events == nil {
		return
	}
	evt := domain.OrderEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		OrderID:     order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.events.PublishOrderEvent(evt); err != nil {
		log.Printf("WARNING: failed to publish %s event for order %s: %v", eventType, order.ID, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
