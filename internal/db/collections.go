package db

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/infra/document"
	"github.com/BruksfildServices01/salon-booking/internal/infra/kv"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

// Collections is the full set of record collections on one backend.
type Collections struct {
	Bookings    store.Collection[*models.Booking]
	Services    store.Collection[*models.Service]
	Staff       store.Collection[*models.Staff]
	Profiles    store.Collection[*models.UserProfile]
	Credentials store.Collection[*models.Credential]
	Settings    store.Collection[*models.Settings]
	Messages    store.Collection[*models.ContactMessage]
	Subscribers store.Collection[*models.NewsletterSubscriber]
	Gallery     store.Collection[*models.GalleryImage]
	AuditLogs   store.Collection[*models.AuditLog]
}

func newOf[T any]() func() *T {
	return func() *T { return new(T) }
}

func NewKVCollections(rdb *redis.Client, log *zap.Logger) *Collections {
	return &Collections{
		Bookings:    kv.NewCollection(rdb, store.Bookings, newOf[models.Booking](), log),
		Services:    kv.NewCollection(rdb, store.Services, newOf[models.Service](), log),
		Staff:       kv.NewCollection(rdb, store.Staff, newOf[models.Staff](), log),
		Profiles:    kv.NewCollection(rdb, store.UserProfiles, newOf[models.UserProfile](), log),
		Credentials: kv.NewCollection(rdb, store.Credentials, newOf[models.Credential](), log),
		Settings:    kv.NewCollection(rdb, store.Settings, newOf[models.Settings](), log),
		Messages:    kv.NewCollection(rdb, store.ContactMessages, newOf[models.ContactMessage](), log),
		Subscribers: kv.NewCollection(rdb, store.NewsletterSubscribers, newOf[models.NewsletterSubscriber](), log),
		Gallery:     kv.NewCollection(rdb, store.Gallery, newOf[models.GalleryImage](), log),
		AuditLogs:   kv.NewCollection(rdb, store.AuditLogs, newOf[models.AuditLog](), log),
	}
}

func NewDocumentCollections(db *gorm.DB, hub *document.Hub, log *zap.Logger) *Collections {
	return &Collections{
		Bookings:    document.NewCollection(db, hub, store.Bookings, newOf[models.Booking](), log),
		Services:    document.NewCollection(db, hub, store.Services, newOf[models.Service](), log),
		Staff:       document.NewCollection(db, hub, store.Staff, newOf[models.Staff](), log),
		Profiles:    document.NewCollection(db, hub, store.UserProfiles, newOf[models.UserProfile](), log),
		Credentials: document.NewCollection(db, hub, store.Credentials, newOf[models.Credential](), log),
		Settings:    document.NewCollection(db, hub, store.Settings, newOf[models.Settings](), log),
		Messages:    document.NewCollection(db, hub, store.ContactMessages, newOf[models.ContactMessage](), log),
		Subscribers: document.NewCollection(db, hub, store.NewsletterSubscribers, newOf[models.NewsletterSubscriber](), log),
		Gallery:     document.NewCollection(db, hub, store.Gallery, newOf[models.GalleryImage](), log),
		AuditLogs:   document.NewCollection(db, hub, store.AuditLogs, newOf[models.AuditLog](), log),
	}
}
