package gateway

import (
	"encoding/json"
	"fmt"
	"log"

	"jolof-kitchen/internal/domain"
	"jolof-kitchen/internal/storage"
)

// Gateway is the persistence layer both the storefront and the admin area
// read and write. Each collection lives in its own slot; an empty or
// undecodable slot degrades to the seed data without ever writing the
// defaults back.
type Gateway struct {
	Store storage.SlotStore
}

func New(store storage.SlotStore) *Gateway {
	return &Gateway{Store: store}
}

func (g *Gateway) Dishes() []domain.Dish {
	raw, err := g.Store.Load(storage.SlotDishes)
	if err != nil {
		if err != storage.ErrSlotEmpty {
			log.Printf("[gateway] dish slot unreadable, serving defaults: %v", err)
		}
		return domain.DefaultDishes()
	}
	var dishes []domain.Dish
	if err := json.Unmarshal(raw, &dishes); err != nil {
		log.Printf("[gateway] dish slot corrupt, serving defaults: %v", err)
		return domain.DefaultDishes()
	}
	return dishes
}

func (g *Gateway) SaveDishes(dishes []domain.Dish) error {
	return g.save(storage.SlotDishes, dishes)
}

func (g *Gateway) Extras() []domain.Extra {
	raw, err := g.Store.Load(storage.SlotExtras)
	if err != nil {
		if err != storage.ErrSlotEmpty {
			log.Printf("[gateway] extras slot unreadable, serving defaults: %v", err)
		}
		return domain.DefaultExtras()
	}
	var extras []domain.Extra
	if err := json.Unmarshal(raw, &extras); err != nil {
		log.Printf("[gateway] extras slot corrupt, serving defaults: %v", err)
		return domain.DefaultExtras()
	}
	return extras
}

func (g *Gateway) SaveExtras(extras []domain.Extra) error {
	return g.save(storage.SlotExtras, extras)
}

// Orders returns the order log in insertion order. Unlike the catalogs,
// an empty or corrupt slot degrades to no orders, not to seed data.
func (g *Gateway) Orders() []domain.Order {
	raw, err := g.Store.Load(storage.SlotOrders)
	if err != nil {
		if err != storage.ErrSlotEmpty {
			log.Printf("[gateway] order slot unreadable: %v", err)
		}
		return []domain.Order{}
	}
	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		log.Printf("[gateway] order slot corrupt: %v", err)
		return []domain.Order{}
	}
	return orders
}

func (g *Gateway) SaveOrders(orders []domain.Order) error {
	return g.save(storage.SlotOrders, orders)
}

func (g *Gateway) AppendOrder(order domain.Order) error {
	return g.SaveOrders(append(g.Orders(), order))
}

func (g *Gateway) IsAuthenticated() bool {
	raw, err := g.Store.Load(storage.SlotAuth)
	return err == nil && string(raw) == "true"
}

func (g *Gateway) SetAuthenticated(v bool) error {
	if v {
		return g.Store.Save(storage.SlotAuth, []byte("true"))
	}
	return g.Store.Delete(storage.SlotAuth)
}

func (g *Gateway) save(slot string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", slot, err)
	}
	return g.Store.Save(slot, raw)
}
