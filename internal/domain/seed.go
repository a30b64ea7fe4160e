package domain

// Reference data served when a storage slot is empty. The gateway never
// writes these back on its own; the first explicit save persists the
// working set.

var seedDishes = []Dish{
	{
		ID:          "1",
		Name:        "Jolof Chicken Classique",
		Description: "Le riz jolof signature avec un poulet braisé tendre et savoureux.",
		Price:       3500,
		Image:       "https://images.unsplash.com/photo-1567620832903-9fc6debc209f?auto=format&fit=crop&q=80",
		Active:      true,
		Category:    CategoryJolofChicken,
	},
	{
		ID:          "2",
		Name:        "Jolof Chicken Spicy",
		Description: "Pour les amateurs de sensations fortes, pimenté à souhait !",
		Price:       3800,
		Image:       "https://images.unsplash.com/photo-1626777552726-4a6b54c97e46?auto=format&fit=crop&q=80",
		Active:      true,
		Category:    CategoryJolofChicken,
	},
	{
		ID:          "3",
		Name:        "Combo Duo 2 Pers.",
		Description: "2 portions de riz Jolof, poulet braisé, alloco et boissons.",
		Price:       8000,
		Image:       "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?auto=format&fit=crop&q=80",
		Active:      true,
		Category:    CategoryCombos,
	},
	{
		ID:          "4",
		Name:        "Combo Familial 4 Pers.",
		Description: "4 portions de riz Jolof, 1 poulet entier braisé, frites et boissons.",
		Price:       15000,
		Image:       "https://images.unsplash.com/photo-1562967914-608f82629710?auto=format&fit=crop&q=80",
		Active:      true,
		Category:    CategoryCombos,
	},
	{
		ID:          "5",
		Name:        "Braisé Solo",
		Description: "Demi-poulet braisé uniquement, servi avec oignons et piment.",
		Price:       3000,
		Image:       "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?auto=format&fit=crop&q=80",
		Active:      true,
		Category:    CategorySides,
	},
	{
		ID:          "6",
		Name:        "Alloco Maison",
		Description: "Bananes plantains frites, dorées et fondantes.",
		Price:       700,
		Image:       "https://images.unsplash.com/photo-1614332287897-cdc485fa562d?auto=format&fit=crop&q=80",
		Active:      true,
		Category:    CategorySides,
	},
}

var seedExtras = []Extra{
	{ID: "e1", Name: "Poulet extra", Price: 1000, Active: true, Image: "https://images.unsplash.com/photo-1606728035253-49e8a23146de?auto=format&fit=crop&q=80"},
	{ID: "e2", Name: "Œuf", Price: 300, Active: true, Image: "https://images.unsplash.com/photo-1525351484163-7529414344d8?auto=format&fit=crop&q=80"},
	{ID: "e3", Name: "Alloco", Price: 700, Active: true, Image: "https://images.unsplash.com/photo-1614332287897-cdc485fa562d?auto=format&fit=crop&q=80"},
	{ID: "e4", Name: "Frites", Price: 500, Active: true, Image: "https://images.unsplash.com/photo-1630384066252-198c3d706560?auto=format&fit=crop&q=80"},
	{ID: "e5", Name: "Sauce spéciale", Price: 300, Active: true, Image: "https://images.unsplash.com/photo-1472476443507-c7a5948772fc?auto=format&fit=crop&q=80"},
	{ID: "e6", Name: "Piment 🔥", Price: 200, Active: true, Image: "https://images.unsplash.com/photo-1596450514735-373361f1c7e9?auto=format&fit=crop&q=80"},
}

var deliveryZones = []LocationZone{
	{ID: "l1", Name: "Plateau", DeliveryFee: 1000},
	{ID: "l2", Name: "Almadies / Ngor", DeliveryFee: 2000},
	{ID: "l3", Name: "Ouakam / Mermoz", DeliveryFee: 1500},
	{ID: "l4", Name: "Dakar Plateau", DeliveryFee: 1000},
	{ID: "l5", Name: "Guédiawaye / Pikine", DeliveryFee: 2500},
	{ID: "l6", Name: "Parcelles Assainies", DeliveryFee: 2000},
}

// DefaultDishes returns a fresh copy of the seed catalog.
func DefaultDishes() []Dish {
	return append([]Dish(nil), seedDishes...)
}

// DefaultExtras returns a fresh copy of the seed add-on catalog.
func DefaultExtras() []Extra {
	return append([]Extra(nil), seedExtras...)
}

// DeliveryZones returns the static delivery zones and their flat fees.
func DeliveryZones() []LocationZone {
	return append([]LocationZone(nil), deliveryZones...)
}

// ZoneByID looks up a delivery zone. The second return is false when the
// id is unknown.
func ZoneByID(id string) (LocationZone, bool) {
	for _, z := range deliveryZones {
		if z.ID == id {
			return z, true
		}
	}
	return LocationZone{}, false
}
