package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"jolof-kitchen/internal/domain"
	"jolof-kitchen/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	Auth    service.AuthServiceInterface
	QR      service.QRGenerator
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, auth service.AuthServiceInterface, qr service.QRGenerator) *Handler {
	return &Handler{Catalog: catalog, Orders: orders, Auth: auth, QR: qr}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/extras", h.getExtras).Methods("GET")
	r.HandleFunc("/api/locations", h.getLocations).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.trackOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/admin/login", h.login).Methods("POST")
	r.HandleFunc("/api/admin/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/admin/session", h.session).Methods("GET")

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(h.requireAuth)
	admin.HandleFunc("/orders", h.listOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", h.setOrderStatus).Methods("PUT")

	admin.HandleFunc("/dishes", h.listDishes).Methods("GET")
	admin.HandleFunc("/dishes", h.createDish).Methods("POST")
	admin.HandleFunc("/dishes/{id}", h.updateDish).Methods("PUT")
	admin.HandleFunc("/dishes/{id}", h.deleteDish).Methods("DELETE")
	admin.HandleFunc("/dishes/{id}/toggle", h.toggleDish).Methods("POST")

	admin.HandleFunc("/extras", h.listExtras).Methods("GET")
	admin.HandleFunc("/extras", h.createExtra).Methods("POST")
	admin.HandleFunc("/extras/{id}", h.updateExtra).Methods("PUT")
	admin.HandleFunc("/extras/{id}", h.deleteExtra).Methods("DELETE")
	admin.HandleFunc("/extras/{id}/toggle", h.toggleExtra).Methods("POST")
}

func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Auth.IsAuthenticated() {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "jolof-kitchen",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.ActiveDishes())
}

func (h *Handler) getExtras(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.ActiveExtras())
}

func (h *Handler) getLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.DeliveryZones())
}

type orderItemPayload struct {
	DishID   string   `json:"dishId"`
	ExtraIDs []string `json:"extraIds"`
	Quantity int      `json:"quantity"`
}

type orderPayload struct {
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone"`
	Mode          domain.OrderMode     `json:"mode"`
	LocationID    string               `json:"locationId"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Items         []orderItemPayload   `json:"items"`
}

// createOrder snapshots catalog records into the order and prices it
// server-side; the payload only carries identifiers and quantities.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload orderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !payload.Mode.Valid() {
		http.Error(w, "Unknown order mode: "+string(payload.Mode), http.StatusBadRequest)
		return
	}
	if !payload.PaymentMethod.Valid() {
		http.Error(w, "Unknown payment method: "+string(payload.PaymentMethod), http.StatusBadRequest)
		return
	}

	dishes := make(map[string]domain.Dish)
	for _, d := range h.Catalog.ActiveDishes() {
		dishes[d.ID] = d
	}
	extras := make(map[string]domain.Extra)
	for _, e := range h.Catalog.ActiveExtras() {
		extras[e.ID] = e
	}

	var items []domain.OrderItem
	for _, line := range payload.Items {
		dish, ok := dishes[line.DishID]
		if !ok {
			http.Error(w, "Unknown dish: "+line.DishID, http.StatusBadRequest)
			return
		}
		var lineExtras []domain.Extra
		for _, id := range line.ExtraIDs {
			extra, ok := extras[id]
			if !ok {
				http.Error(w, "Unknown extra: "+id, http.StatusBadRequest)
				return
			}
			lineExtras = append(lineExtras, extra)
		}
		item, err := service.BuildItem(dish, lineExtras, line.Quantity)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		items = append(items, item)
	}

	var zone *domain.LocationZone
	if payload.LocationID != "" {
		z, ok := domain.ZoneByID(payload.LocationID)
		if !ok {
			http.Error(w, "Unknown delivery zone: "+payload.LocationID, http.StatusBadRequest)
			return
		}
		zone = &z
	}

	order, err := service.BuildOrder(items, payload.CustomerName, payload.CustomerPhone, payload.Mode, zone, payload.PaymentMethod)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err = h.Orders.Place(order)
	if err != nil {
		if errors.Is(err, service.ErrZoneRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) trackOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.Orders.Track(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Find(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	png, err := h.QR.Generate(order.ID)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Auth.Login(creds.Username, creds.Password); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": h.Auth.IsAuthenticated()})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.List())
}

type statusPayload struct {
	Status domain.OrderStatus `json:"status"`
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.SetStatus(mux.Vars(r)["id"], payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidTransition):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.ListDishes())
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = ""
	dish, err := h.Catalog.UpsertDish(dish)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = mux.Vars(r)["id"]
	dish, err := h.Catalog.UpsertDish(dish)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.RemoveDish(mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleDish(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.ToggleDish(mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.Catalog.ListDishes())
}

func (h *Handler) listExtras(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.ListExtras())
}

func (h *Handler) createExtra(w http.ResponseWriter, r *http.Request) {
	var extra domain.Extra
	if err := json.NewDecoder(r.Body).Decode(&extra); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	extra.ID = ""
	extra, err := h.Catalog.UpsertExtra(extra)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, extra)
}

func (h *Handler) updateExtra(w http.ResponseWriter, r *http.Request) {
	var extra domain.Extra
	if err := json.NewDecoder(r.Body).Decode(&extra); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	extra.ID = mux.Vars(r)["id"]
	extra, err := h.Catalog.UpsertExtra(extra)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, extra)
}

func (h *Handler) deleteExtra(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.RemoveExtra(mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleExtra(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.ToggleExtra(mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.Catalog.ListExtras())
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
