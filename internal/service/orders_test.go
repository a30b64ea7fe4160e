package service_test

import (
	"regexp"
	"testing"
	"time"

	"jolof-kitchen/internal/domain"
	"jolof-kitchen/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders []domain.Order
}

func (f *fakeOrderRepo) Orders() []domain.Order {
	return append([]domain.Order(nil), f.orders...)
}

func (f *fakeOrderRepo) SaveOrders(orders []domain.Order) error {
	f.orders = orders
	return nil
}

func (f *fakeOrderRepo) AppendOrder(order domain.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

var _ service.OrderRepository = (*fakeOrderRepo)(nil)

type fakePublisher struct {
	events []domain.OrderEvent
}

func (f *fakePublisher) PublishOrderEvent(evt domain.OrderEvent) error {
	f.events = append(f.events, evt)
	return nil
}

var _ service.EventPublisher = (*fakePublisher)(nil)

var (
	testDish  = domain.Dish{ID: "1", Name: "Jolof Chicken Classique", Price: 3500, Active: true, Category: domain.CategoryJolofChicken}
	testEgg   = domain.Extra{ID: "e2", Name: "Œuf", Price: 300, Active: true}
	testSides = domain.Extra{ID: "e3", Name: "Alloco", Price: 700, Active: true}
	testZone  = domain.LocationZone{ID: "l3", Name: "Ouakam / Mermoz", DeliveryFee: 1500}
)

func TestBuildItemPricing(t *testing.T) {
	item, err := service.BuildItem(testDish, []domain.Extra{testEgg, testSides}, 2)
	require.NoError(t, err)

	assert.Equal(t, 9000, item.TotalPrice)
	assert.Equal(t, 2, item.Quantity)
	assert.Len(t, item.ID, 9)
}

func TestBuildItemRejectsBadQuantity(t *testing.T) {
	for _, quantity := range []int{0, -1, -5} {
		_, err := service.BuildItem(testDish, nil, quantity)
		assert.ErrorIs(t, err, service.ErrInvalidQuantity)
	}
}

func TestBuildItemDeduplicatesExtras(t *testing.T) {
	item, err := service.BuildItem(testDish, []domain.Extra{testEgg, testEgg, testSides}, 1)
	require.NoError(t, err)

	assert.Len(t, item.Extras, 2)
	assert.Equal(t, 4500, item.TotalPrice)
}

func TestBuildItemSnapshotsDish(t *testing.T) {
	dish := testDish
	item, err := service.BuildItem(dish, nil, 1)
	require.NoError(t, err)

	dish.Price = 9999
	assert.Equal(t, 3500, item.Dish.Price)
}

func cartOfOne(t *testing.T) []domain.OrderItem {
	t.Helper()
	item, err := service.BuildItem(testDish, []domain.Extra{testEgg, testSides}, 2)
	require.NoError(t, err)
	return []domain.OrderItem{item}
}

func TestBuildOrderDeliveryTotals(t *testing.T) {
	order, err := service.BuildOrder(cartOfOne(t), "Awa Diop", "771234567", domain.ModeDelivery, &testZone, domain.PaymentWave)
	require.NoError(t, err)

	assert.Equal(t, 9000, order.Subtotal)
	assert.Equal(t, 1500, order.DeliveryFee)
	assert.Equal(t, 10500, order.TotalAmount)
	require.NotNil(t, order.Location)
	assert.Equal(t, "l3", order.Location.ID)
	assert.Equal(t, domain.StatusReceived, order.Status)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{4}$`), order.ID)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestBuildOrderNoFeeOutsideDelivery(t *testing.T) {
	for _, mode := range []domain.OrderMode{domain.ModeOnSite, domain.ModeTakeaway} {
		order, err := service.BuildOrder(cartOfOne(t), "Awa Diop", "771234567", mode, &testZone, domain.PaymentCash)
		require.NoError(t, err)

		assert.Zero(t, order.DeliveryFee)
		assert.Nil(t, order.Location)
		assert.Equal(t, order.Subtotal, order.TotalAmount)
	}
}

func TestBuildOrderValidation(t *testing.T) {
	tests := []struct {
		name     string
		customer string
		phone    string
		items    []domain.OrderItem
		wantErr  error
	}{
		{"missing name", "", "771234567", cartOfOne(t), service.ErrMissingCustomer},
		{"blank phone", "Awa Diop", "   ", cartOfOne(t), service.ErrMissingCustomer},
		{"empty cart", "Awa Diop", "771234567", nil, service.ErrEmptyCart},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.BuildOrder(testCase.items, testCase.customer, testCase.phone, domain.ModeTakeaway, nil, domain.PaymentCash)
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestPlaceRequiresZoneForDelivery(t *testing.T) {
	svc := service.NewOrderService(&fakeOrderRepo{}, nil)

	_, err := svc.Place(domain.Order{ID: "A4B7", Mode: domain.ModeDelivery})
	assert.ErrorIs(t, err, service.ErrZoneRequired)
}

func TestPlaceRerollsCollidingReference(t *testing.T) {
	repo := &fakeOrderRepo{orders: []domain.Order{{ID: "A4B7"}}}
	svc := service.NewOrderService(repo, nil)

	placed, err := svc.Place(domain.Order{ID: "A4B7", Mode: domain.ModeTakeaway})
	require.NoError(t, err)

	assert.NotEqual(t, "A4B7", placed.ID)
	assert.Len(t, placed.ID, 4)
	assert.Len(t, repo.orders, 2)
}

func TestPlacePublishesEvent(t *testing.T) {
	publisher := &fakePublisher{}
	svc := service.NewOrderService(&fakeOrderRepo{}, publisher)

	placed, err := svc.Place(domain.Order{ID: "A4B7", Mode: domain.ModeTakeaway, TotalAmount: 10500, Status: domain.StatusReceived})
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	evt := publisher.events[0]
	assert.Equal(t, domain.EventOrderPlaced, evt.Type)
	assert.Equal(t, placed.ID, evt.OrderID)
	assert.Equal(t, 10500, evt.TotalAmount)
	assert.NotEmpty(t, evt.EventID)
}

func seedOrder(status domain.OrderStatus) *fakeOrderRepo {
	return &fakeOrderRepo{orders: []domain.Order{{
		ID:        "A4B7",
		Status:    status,
		CreatedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}}}
}

func TestSetStatusDeliveredThenTracking(t *testing.T) {
	repo := seedOrder(domain.StatusReceived)
	svc := service.NewOrderService(repo, nil)

	updated, err := svc.SetStatus("A4B7", domain.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, updated.Status)

	// lookup ignores case; all four steps render completed
	result, err := svc.Track("a4b7")
	require.NoError(t, err)
	assert.Equal(t, 3, result.ProgressIndex)
	assert.Equal(t, domain.StatusDelivered, result.Order.Status)
}

func TestSetStatusRejectsBackwardMoves(t *testing.T) {
	svc := service.NewOrderService(seedOrder(domain.StatusReady), nil)

	_, err := svc.SetStatus("A4B7", domain.StatusReceived)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestSetStatusCancelAndLock(t *testing.T) {
	repo := seedOrder(domain.StatusPreparing)
	svc := service.NewOrderService(repo, nil)

	_, err := svc.SetStatus("A4B7", domain.StatusCancelled)
	require.NoError(t, err)

	_, err = svc.SetStatus("A4B7", domain.StatusReady)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	result, err := svc.Track("A4B7")
	require.NoError(t, err)
	assert.Equal(t, 0, result.ProgressIndex, "cancelled orders show no progress")
}

func TestSetStatusUnknownOrder(t *testing.T) {
	svc := service.NewOrderService(&fakeOrderRepo{}, nil)

	_, err := svc.SetStatus("ZZZZ", domain.StatusReady)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestSetStatusUnknownStatus(t *testing.T) {
	svc := service.NewOrderService(seedOrder(domain.StatusReceived), nil)

	_, err := svc.SetStatus("A4B7", domain.OrderStatus("Bogus"))
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestSetStatusPublishesEvent(t *testing.T) {
	publisher := &fakePublisher{}
	svc := service.NewOrderService(seedOrder(domain.StatusReceived), publisher)

	_, err := svc.SetStatus("A4B7", domain.StatusPreparing)
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, domain.EventStatusChanged, publisher.events[0].Type)
	assert.Equal(t, domain.StatusPreparing, publisher.events[0].Status)
}

func TestTrackUnknownReference(t *testing.T) {
	svc := service.NewOrderService(&fakeOrderRepo{}, nil)

	result, err := svc.Track("QQQQ")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestListNewestFirst(t *testing.T) {
	repo := &fakeOrderRepo{orders: []domain.Order{{ID: "AAAA"}, {ID: "BBBB"}, {ID: "CCCC"}}}
	svc := service.NewOrderService(repo, nil)

	listed := svc.List()
	require.Len(t, listed, 3)
	assert.Equal(t, "CCCC", listed[0].ID)
	assert.Equal(t, "AAAA", listed[2].ID)
}
