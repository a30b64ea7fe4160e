package service

import "jolof-kitchen/internal/domain"

type CatalogRepository interface {
	Dishes() []domain.Dish
	SaveDishes([]domain.Dish) error
	Extras() []domain.Extra
	SaveExtras([]domain.Extra) error
}

type OrderRepository interface {
	Orders() []domain.Order
	SaveOrders([]domain.Order) error
	AppendOrder(domain.Order) error
}

type SessionRepository interface {
	IsAuthenticated() bool
	SetAuthenticated(bool) error
}

type EventPublisher interface {
	PublishOrderEvent(domain.OrderEvent) error
}

type CatalogServiceInterface interface {
	ListDishes() []domain.Dish
	ActiveDishes() []domain.Dish
	UpsertDish(domain.Dish) (domain.Dish, error)
	ToggleDish(id string) error
	RemoveDish(id string) error
	ListExtras() []domain.Extra
	ActiveExtras() []domain.Extra
	UpsertExtra(domain.Extra) (domain.Extra, error)
	ToggleExtra(id string) error
	RemoveExtra(id string) error
}

type OrderServiceInterface interface {
	Place(domain.Order) (domain.Order, error)
	List() []domain.Order
	Find(id string) (domain.Order, error)
	Track(id string) (*TrackingResult, error)
	SetStatus(id string, status domain.OrderStatus) (domain.Order, error)
}

type AuthServiceInterface interface {
	Login(user, pass string) error
	Logout() error
	IsAuthenticated() bool
}
