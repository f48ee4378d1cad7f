package models

import "time"

func stamp(created, updated *time.Time, now time.Time) {
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

func (b *Booking) Stamp(now time.Time)              { stamp(&b.CreatedAt, &b.UpdatedAt, now) }
func (s *Service) Stamp(now time.Time)              { stamp(&s.CreatedAt, &s.UpdatedAt, now) }
func (s *Staff) Stamp(now time.Time)                { stamp(&s.CreatedAt, &s.UpdatedAt, now) }
func (u *UserProfile) Stamp(now time.Time)          { stamp(&u.CreatedAt, &u.UpdatedAt, now) }
func (c *Credential) Stamp(now time.Time)           { stamp(&c.CreatedAt, &c.UpdatedAt, now) }
func (s *Settings) Stamp(now time.Time)             { stamp(&s.CreatedAt, &s.UpdatedAt, now) }
func (m *ContactMessage) Stamp(now time.Time)       { stamp(&m.CreatedAt, &m.UpdatedAt, now) }
func (n *NewsletterSubscriber) Stamp(now time.Time) { stamp(&n.CreatedAt, &n.UpdatedAt, now) }
func (g *GalleryImage) Stamp(now time.Time)         { stamp(&g.CreatedAt, &g.UpdatedAt, now) }
func (a *AuditLog) Stamp(now time.Time)             { stamp(&a.CreatedAt, &a.UpdatedAt, now) }
