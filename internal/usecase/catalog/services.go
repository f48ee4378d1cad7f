package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

type ServiceFilter struct {
	Category string
	Active   *bool
	Search   string
}

type ServicePatch struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Description *string  `json:"description,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

func (p ServicePatch) fields() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil {
		m["category"] = strings.ToLower(strings.TrimSpace(*p.Category))
	}
	if p.Price != nil {
		m["price"] = *p.Price
	}
	if p.DurationMin != nil {
		m["duration_min"] = *p.DurationMin
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	if p.Active != nil {
		m["active"] = *p.Active
	}
	return m
}

type Services struct {
	crud[*models.Service]
}

func NewServices(coll store.Collection[*models.Service], audit *audit.Dispatcher) *Services {
	return &Services{crud[*models.Service]{coll: coll, audit: audit, entity: "service"}}
}

// List pushes the equality part to the store and matches the search text
// in process.
func (s *Services) List(ctx context.Context, f ServiceFilter) ([]*models.Service, error) {
	where := store.Filter{}
	if f.Category != "" {
		where["category"] = strings.ToLower(f.Category)
	}
	if f.Active != nil {
		where["active"] = *f.Active
	}

	list, err := s.coll.Query(ctx, store.Query{Where: where, OrderBy: "name"})
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search == "" {
		return list, nil
	}

	out := make([]*models.Service, 0, len(list))
	for _, svc := range list {
		if strings.Contains(strings.ToLower(svc.Name), search) ||
			strings.Contains(strings.ToLower(svc.Description), search) {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (s *Services) Create(ctx context.Context, sess *session.Context, svc *models.Service) (*models.Service, error) {
	svc.ID = ""
	svc.Name = strings.TrimSpace(svc.Name)
	svc.Category = models.Category(strings.ToLower(string(svc.Category)))
	return s.create(ctx, sess, svc)
}

func (s *Services) Get(ctx context.Context, id string) (*models.Service, error) {
	return s.get(ctx, id)
}

func (s *Services) Update(ctx context.Context, sess *session.Context, id string, p ServicePatch) (*models.Service, error) {
	return s.update(ctx, sess, id, p.fields())
}

func (s *Services) Delete(ctx context.Context, sess *session.Context, id string) error {
	return s.delete(ctx, sess, id)
}
