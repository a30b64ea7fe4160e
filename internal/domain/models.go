package domain

import "time"

type OrderStatus string

const (
	StatusReceived  OrderStatus = "Reçue"
	StatusPreparing OrderStatus = "En préparation"
	StatusReady     OrderStatus = "Prête"
	StatusDelivered OrderStatus = "Livrée"
	StatusCancelled OrderStatus = "Annulée"
)

type OrderMode string

const (
	ModeOnSite   OrderMode = "Sur place"
	ModeTakeaway OrderMode = "À emporter"
	ModeDelivery OrderMode = "Livraison"
)

// Valid reports whether the mode is one of the three the restaurant
// serves. Anything else coming off the wire is rejected.
func (m OrderMode) Valid() bool {
	return m == ModeOnSite || m == ModeTakeaway || m == ModeDelivery
}

type PaymentMethod string

const (
	PaymentWave        PaymentMethod = "Wave"
	PaymentOrangeMoney PaymentMethod = "Orange Money"
	PaymentCash        PaymentMethod = "Espèces"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentWave || p == PaymentOrangeMoney || p == PaymentCash
}

type MenuCategory string

const (
	CategoryJolofChicken MenuCategory = "Jolof Chicken"
	CategoryCombos       MenuCategory = "Menus combos"
	CategorySides        MenuCategory = "Accompagnements"
	CategoryExtras       MenuCategory = "Surplus"
)

type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       int          `json:"price"`
	Image       string       `json:"image"`
	Active      bool         `json:"active"`
	Category    MenuCategory `json:"category"`
}

type Extra struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Image  string `json:"image"`
	Active bool   `json:"active"`
}

type LocationZone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DeliveryFee int    `json:"deliveryFee"`
}

// OrderItem carries value snapshots of the dish and extras so later catalog
// edits never alter historical orders.
type OrderItem struct {
	ID         string  `json:"id"`
	Dish       Dish    `json:"dish"`
	Extras     []Extra `json:"extras"`
	Quantity   int     `json:"quantity"`
	TotalPrice int     `json:"totalPrice"`
}

type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Mode          OrderMode     `json:"mode"`
	Location      *LocationZone `json:"location,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Items         []OrderItem   `json:"items"`
	Subtotal      int           `json:"subtotal"`
	DeliveryFee   int           `json:"deliveryFee"`
	TotalAmount   int           `json:"totalAmount"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// OrderEvent is published to the broker when an order is placed or its
// status changes.
type OrderEvent struct {
	EventID     string      `json:"event_id"`
	Type        string      `json:"type"`
	OrderID     string      `json:"order_id"`
	Status      OrderStatus `json:"status"`
	TotalAmount int         `json:"total_amount"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "status_changed"
)

var progressSteps = []OrderStatus{StatusReceived, StatusPreparing, StatusReady, StatusDelivered}

// ProgressIndex maps a status to its position on the customer tracking
// timeline. Cancelled and unrecognized statuses map to 0.
func ProgressIndex(status OrderStatus) int {
	for i, s := range progressSteps {
		if s == status {
			return i
		}
	}
	return 0
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether staff may move an order from one status to
// another. Forward jumps are allowed, backward moves are not, and any
// non-terminal order may be cancelled.
func CanTransition(from, to OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	fromIdx, toIdx := -1, -1
	for i, s := range progressSteps {
		if s == from {
			fromIdx = i
		}
		if s == to {
			toIdx = i
		}
	}
	return fromIdx >= 0 && toIdx > fromIdx
}
