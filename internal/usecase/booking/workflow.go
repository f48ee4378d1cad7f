package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/payment"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/store"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// payLockTTL bounds how long a crashed Pay can block its draft.
const payLockTTL = 60 * time.Second

// DraftStore keeps in-progress drafts between requests. Lock guards a
// draft while it is being paid.
type DraftStore interface {
	Save(ctx context.Context, id string, d *domain.Draft) error
	Load(ctx context.Context, id string) (*domain.Draft, error)
	Lock(ctx context.Context, id string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, id string) error
}

type PayInput struct {
	CardToken string
	Method    string
}

type Workflow struct {
	drafts       DraftStore
	services     store.Collection[*models.Service]
	staff        store.Collection[*models.Staff]
	bookings     store.Collection[*models.Booking]
	availability *GetAvailability
	gateway      payment.Gateway
	audit        *audit.Dispatcher
	metrics      *metrics.Metrics
	feePercent   float64
	log          *zap.Logger
	now          func() time.Time
}

func NewWorkflow(
	drafts DraftStore,
	services store.Collection[*models.Service],
	staff store.Collection[*models.Staff],
	bookings store.Collection[*models.Booking],
	availability *GetAvailability,
	gateway payment.Gateway,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	feePercent float64,
	log *zap.Logger,
) *Workflow {
	return &Workflow{
		drafts:       drafts,
		services:     services,
		staff:        staff,
		bookings:     bookings,
		availability: availability,
		gateway:      gateway,
		audit:        audit,
		metrics:      m,
		feePercent:   feePercent,
		log:          log,
		now:          timezone.Now,
	}
}

// Start opens a new draft. A signed-in customer is linked to it and their
// profile pre-fills the contact fields.
func (w *Workflow) Start(ctx context.Context, sess *session.Context) (*domain.Draft, error) {
	d := domain.NewDraft(uuid.NewString(), w.now())

	if sess != nil {
		d.CustomerID = sess.UserID
		d.CustomerEmail = sess.Email
		if sess.Profile != nil {
			d.CustomerName = sess.Profile.Name
			d.CustomerPhone = sess.Profile.Phone
		}
	}

	if err := w.drafts.Save(ctx, d.ID, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (w *Workflow) Get(ctx context.Context, id string) (*domain.Draft, error) {
	d, err := w.drafts.Load(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.ErrBusiness("draft_not_found")
	}
	return d, err
}

// step loads the draft, applies fn and saves it only when fn succeeded, so
// a failed step leaves the stored draft untouched.
func (w *Workflow) step(ctx context.Context, id string, fn func(d *domain.Draft) error) (*domain.Draft, error) {
	d, err := w.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	if err := w.drafts.Save(ctx, id, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (w *Workflow) ChooseService(ctx context.Context, id, serviceID string) (*domain.Draft, error) {
	return w.step(ctx, id, func(d *domain.Draft) error {
		svc, err := w.services.Get(ctx, serviceID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return d.SelectService(svc)
	})
}

// ChooseStaff with an empty id means any available stylist.
func (w *Workflow) ChooseStaff(ctx context.Context, id, staffID string) (*domain.Draft, error) {
	return w.step(ctx, id, func(d *domain.Draft) error {
		if staffID == "" {
			return d.SelectStaff(nil)
		}
		st, err := w.staff.Get(ctx, staffID)
		if errors.Is(err, store.ErrNotFound) {
			return httperr.Field("staff_id", "staff_not_found", "Choose a stylist from the list.")
		}
		if err != nil {
			return err
		}
		return d.SelectStaff(st)
	})
}

func (w *Workflow) ChooseDate(ctx context.Context, id, date string) (*domain.Draft, error) {
	return w.step(ctx, id, func(d *domain.Draft) error {
		return d.SelectDate(date, w.now())
	})
}

func (w *Workflow) ChooseTime(ctx context.Context, id, clock string) (*domain.Draft, error) {
	return w.step(ctx, id, func(d *domain.Draft) error {
		if d.Step != domain.StepTime {
			return httperr.ErrBusiness("wrong_step")
		}
		slots, err := w.availability.Execute(ctx, d.Date, d.StaffID)
		if err != nil {
			return err
		}
		return d.SelectTime(clock, slots)
	})
}

func (w *Workflow) EnterDetails(ctx context.Context, id string, in domain.Details) (*domain.Draft, error) {
	return w.step(ctx, id, func(d *domain.Draft) error {
		return d.EnterDetails(in, w.feePercent)
	})
}

func (w *Workflow) Back(ctx context.Context, id string) (*domain.Draft, error) {
	return w.step(ctx, id, func(d *domain.Draft) error {
		return d.Back()
	})
}

// Pay charges price plus platform fee and persists the booking. The slot
// is not re-checked here; concurrent drafts for one slot can both confirm.
// One draft is charged at most once: the receipt is kept on the draft, so a
// retry after a failed write only persists the booking.
func (w *Workflow) Pay(ctx context.Context, id string, in PayInput) (*domain.Draft, *models.Booking, error) {
	locked, err := w.drafts.Lock(ctx, id, payLockTTL)
	if err != nil {
		return nil, nil, err
	}
	if !locked {
		return nil, nil, httperr.ErrBusiness("payment_in_progress")
	}
	defer func() {
		if err := w.drafts.Unlock(context.WithoutCancel(ctx), id); err != nil {
			w.log.Warn("draft lock not released", zap.String("draft_id", id), zap.Error(err))
		}
	}()

	d, err := w.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	b, err := d.Booking(w.now())
	if err != nil {
		return nil, nil, err
	}

	if d.PaymentRef == "" {
		if err := w.charge(ctx, d, in); err != nil {
			return nil, nil, err
		}
	}
	b.PaymentRef = d.PaymentRef

	bookingID, err := w.bookings.Add(ctx, b)
	if err != nil {
		w.log.Error("booking not persisted after payment",
			zap.String("draft_id", d.ID),
			zap.String("payment_ref", d.PaymentRef),
			zap.Error(err),
		)
		return nil, nil, err
	}

	if err := d.Confirm(bookingID); err != nil {
		return nil, nil, err
	}
	if err := w.drafts.Save(ctx, d.ID, d); err != nil {
		w.log.Warn("confirmed draft not saved", zap.String("draft_id", d.ID), zap.Error(err))
	}

	w.metrics.BookingConfirmed()
	w.audit.Dispatch(audit.Event{
		UserID:   b.CustomerID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: bookingID,
		Metadata: map[string]any{"payment_ref": d.PaymentRef, "total": d.Total},
	})

	return d, b, nil
}

// charge authorizes the draft total and records the receipt on the draft
// before anything else can fail.
func (w *Workflow) charge(ctx context.Context, d *domain.Draft, in PayInput) error {
	receipt, err := w.gateway.Authorize(ctx, payment.Charge{
		Amount:      d.Total,
		Email:       d.CustomerEmail,
		CardToken:   in.CardToken,
		Method:      in.Method,
		Description: d.ServiceName,
		Reference:   d.ID,
	})
	if errors.Is(err, payment.ErrDeclined) {
		w.metrics.PaymentResult(metrics.PaymentDeclined)
		w.log.Info("payment declined", zap.String("draft_id", d.ID), zap.Error(err))
		return httperr.ErrBusiness("payment_declined")
	}
	if err != nil {
		w.metrics.PaymentResult(metrics.PaymentError)
		return fmt.Errorf("%w: payment: %v", store.ErrUnavailable, err)
	}
	w.metrics.PaymentResult(metrics.PaymentApproved)

	d.PaymentRef = receipt.Reference
	if err := w.drafts.Save(ctx, d.ID, d); err != nil {
		w.log.Error("paid draft not saved",
			zap.String("draft_id", d.ID),
			zap.String("payment_ref", receipt.Reference),
			zap.Error(err),
		)
	}
	return nil
}
