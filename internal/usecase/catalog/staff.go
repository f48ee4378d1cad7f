package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type StaffPatch struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

func (p StaffPatch) fields() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Specialty != nil {
		m["specialty"] = *p.Specialty
	}
	if p.Email != nil {
		m["email"] = validators.NormalizeEmail(*p.Email)
	}
	if p.Phone != nil {
		m["phone"] = validators.NormalizePhone(*p.Phone)
	}
	if p.Active != nil {
		m["active"] = *p.Active
	}
	return m
}

type Staff struct {
	crud[*models.Staff]
}

func NewStaff(coll store.Collection[*models.Staff], audit *audit.Dispatcher) *Staff {
	return &Staff{crud[*models.Staff]{coll: coll, audit: audit, entity: "staff"}}
}

func (s *Staff) List(ctx context.Context, active *bool) ([]*models.Staff, error) {
	where := store.Filter{}
	if active != nil {
		where["active"] = *active
	}
	return s.coll.Query(ctx, store.Query{Where: where, OrderBy: "name"})
}

func (s *Staff) Create(ctx context.Context, sess *session.Context, st *models.Staff) (*models.Staff, error) {
	st.ID = ""
	st.Name = strings.TrimSpace(st.Name)
	st.Email = validators.NormalizeEmail(st.Email)
	st.Phone = validators.NormalizePhone(st.Phone)
	return s.create(ctx, sess, st)
}

func (s *Staff) Get(ctx context.Context, id string) (*models.Staff, error) {
	return s.get(ctx, id)
}

func (s *Staff) Update(ctx context.Context, sess *session.Context, id string, p StaffPatch) (*models.Staff, error) {
	return s.update(ctx, sess, id, p.fields())
}

func (s *Staff) Delete(ctx context.Context, sess *session.Context, id string) error {
	return s.delete(ctx, sess, id)
}
