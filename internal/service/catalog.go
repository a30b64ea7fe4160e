package service

import "jolof-kitchen/internal/domain"

// CatalogService owns the dish and add-on catalogs. Every mutation is a
// whole-collection read-modify-write against the repository; a missing
// identifier is a silent no-op, never an error.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListDishes() []domain.Dish {
	return s.repo.Dishes()
}

func (s *CatalogService) ActiveDishes() []domain.Dish {
	var active []domain.Dish
	for _, d := range s.repo.Dishes() {
		if d.Active {
			active = append(active, d)
		}
	}
	return active
}

func (s *CatalogService) UpsertDish(dish domain.Dish) (domain.Dish, error) {
	dishes := s.repo.Dishes()
	if dish.ID == "" {
		dish.ID = domain.NewDishID()
		dishes = append(dishes, dish)
	} else {
		for i := range dishes {
			if dishes[i].ID == dish.ID {
				dishes[i] = dish
			}
		}
	}
	return dish, s.repo.SaveDishes(dishes)
}

func (s *CatalogService) ToggleDish(id string) error {
	dishes := s.repo.Dishes()
	for i := range dishes {
		if dishes[i].ID == id {
			dishes[i].Active = !dishes[i].Active
		}
	}
	return s.repo.SaveDishes(dishes)
}

func (s *CatalogService) RemoveDish(id string) error {
	dishes := s.repo.Dishes()
	kept := dishes[:0]
	for _, d := range dishes {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	return s.repo.SaveDishes(kept)
}

func (s *CatalogService) ListExtras() []domain.Extra {
	return s.repo.Extras()
}

func (s *CatalogService) ActiveExtras() []domain.Extra {
	var active []domain.Extra
	for _, e := range s.repo.Extras() {
		if e.Active {
			active = append(active, e)
		}
	}
	return active
}

func (s *CatalogService) UpsertExtra(extra domain.Extra) (domain.Extra, error) {
	extras := s.repo.Extras()
	if extra.ID == "" {
		extra.ID = domain.NewExtraID()
		extras = append(extras, extra)
	} else {
		for i := range extras {
			if extras[i].ID == extra.ID {
				extras[i] = extra
			}
		}
	}
	return extra, s.repo.SaveExtras(extras)
}

func (s *CatalogService) ToggleExtra(id string) error {
	extras := s.repo.Extras()
	for i := range extras {
		if extras[i].ID == id {
			extras[i].Active = !extras[i].Active
		}
	}
	return s.repo.SaveExtras(extras)
}

func (s *CatalogService) RemoveExtra(id string) error {
	extras := s.repo.Extras()
	kept := extras[:0]
	for _, e := range extras {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return s.repo.SaveExtras(kept)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
