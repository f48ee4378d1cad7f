package gallery

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
)

type UploadInput struct {
	Title    string
	Category string
	File     io.Reader
}

type Service struct {
	images  store.Collection[*models.GalleryImage]
	objects ObjectStore
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewService(
	images store.Collection[*models.GalleryImage],
	objects ObjectStore,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Service {
	return &Service{images: images, objects: objects, audit: audit, log: log}
}

func (s *Service) List(ctx context.Context, category string) ([]*models.GalleryImage, error) {
	where := store.Filter{}
	if category != "" {
		where["category"] = strings.ToLower(category)
	}
	return s.images.Query(ctx, store.Query{Where: where, OrderBy: "created_at", Desc: true})
}

func (s *Service) Upload(ctx context.Context, sess *session.Context, in UploadInput) (*models.GalleryImage, error) {
	category := models.Category(strings.ToLower(strings.TrimSpace(in.Category)))
	if !category.Valid() {
		return nil, httperr.Field("category", "invalid_category", "Category must be hair, skin, bridal or spa.")
	}

	enc, err := Process(in.File)
	if err != nil {
		return nil, err
	}

	key := "gallery/" + string(category) + "/" + uuid.NewString() + ".webp"
	if err := s.objects.Put(ctx, key, enc.Data, "image/webp"); err != nil {
		return nil, errors.Join(store.ErrUnavailable, err)
	}

	img := &models.GalleryImage{
		Title:     strings.TrimSpace(in.Title),
		Category:  category,
		ObjectKey: key,
		URL:       s.objects.URL(key),
		Width:     enc.Width,
		Height:    enc.Height,
	}
	if _, err := s.images.Add(ctx, img); err != nil {
		if derr := s.objects.Delete(ctx, key); derr != nil {
			s.log.Warn("orphaned gallery object", zap.String("key", key), zap.Error(derr))
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   "gallery_uploaded",
		Entity:   "gallery",
		EntityID: img.ID,
	})
	return img, nil
}

// Delete drops the record first; a leftover object is only logged.
func (s *Service) Delete(ctx context.Context, sess *session.Context, id string) error {
	img, err := s.images.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return httperr.ErrBusiness("image_not_found")
	}
	if err != nil {
		return err
	}

	if err := s.images.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.objects.Delete(ctx, img.ObjectKey); err != nil {
		s.log.Warn("gallery object not removed", zap.String("key", img.ObjectKey), zap.Error(err))
	}

	s.audit.Dispatch(audit.Event{
		UserID:   sess.UserID,
		Action:   "gallery_deleted",
		Entity:   "gallery",
		EntityID: id,
	})
	return nil
}
