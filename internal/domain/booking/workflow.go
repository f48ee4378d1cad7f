package booking

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// ===============================
// Steps
// ===============================

type Step string

const (
	StepService   Step = "service"
	StepStaff     Step = "staff"
	StepDate      Step = "date"
	StepTime      Step = "time"
	StepDetails   Step = "details"
	StepPayment   Step = "payment"
	StepConfirmed Step = "confirmed"
)

var order = []Step{StepService, StepStaff, StepDate, StepTime, StepDetails, StepPayment, StepConfirmed}

func (s Step) index() int {
	for i, st := range order {
		if st == s {
			return i
		}
	}
	return -1
}

// ===============================
// Draft
// ===============================

// Draft is the booking being assembled by the multi-step flow. Steps only
// move forward one at a time after their input validates, or back by one.
type Draft struct {
	ID   string `json:"id"`
	Step Step   `json:"step"`

	ServiceID   string  `json:"service_id,omitempty"`
	ServiceName string  `json:"service_name,omitempty"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min,omitempty"`

	StaffID   string `json:"staff_id,omitempty"`
	StaffName string `json:"staff_name,omitempty"`

	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`

	CustomerID    string `json:"customer_id,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	Notes         string `json:"notes,omitempty"`

	PlatformFee float64 `json:"platform_fee"`
	Total       float64 `json:"total"`

	// PaymentRef is set once the charge is approved and never charged again.
	PaymentRef string `json:"payment_ref,omitempty"`

	BookingID string    `json:"booking_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Details struct {
	Name  string
	Email string
	Phone string
	Notes string
}

func NewDraft(id string, now time.Time) *Draft {
	return &Draft{ID: id, Step: StepService, CreatedAt: now}
}

func (d *Draft) expect(step Step) error {
	if d.Step != step {
		return httperr.ErrBusiness("wrong_step")
	}
	return nil
}

func (d *Draft) advance() {
	if i := d.Step.index(); i >= 0 && i < len(order)-1 {
		d.Step = order[i+1]
	}
}

// ===============================
// Transitions
// ===============================

func (d *Draft) SelectService(svc *models.Service) error {
	if err := d.expect(StepService); err != nil {
		return err
	}
	if svc == nil || !svc.Active {
		return httperr.Field("service_id", "service_not_found", "Choose a service from the catalog.")
	}

	d.ServiceID = svc.ID
	d.ServiceName = svc.Name
	d.Price = svc.Price
	d.DurationMin = svc.DurationMin
	d.advance()
	return nil
}

// SelectStaff accepts nil for "any available stylist".
func (d *Draft) SelectStaff(staff *models.Staff) error {
	if err := d.expect(StepStaff); err != nil {
		return err
	}

	d.StaffID, d.StaffName = "", ""
	if staff != nil {
		if !staff.Active {
			return httperr.Field("staff_id", "staff_not_found", "Choose a stylist from the list.")
		}
		d.StaffID = staff.ID
		d.StaffName = staff.Name
	}
	d.advance()
	return nil
}

func (d *Draft) SelectDate(date string, now time.Time) error {
	if err := d.expect(StepDate); err != nil {
		return err
	}

	day, err := timezone.ParseDate(date, now.Location())
	if err != nil {
		return httperr.Field("date", "invalid_date", "Use the YYYY-MM-DD format.")
	}
	if day.Format(timezone.DateLayout) < timezone.Today(now) {
		return httperr.Field("date", "date_in_past", "Pick today or a later date.")
	}

	d.Date = day.Format(timezone.DateLayout)
	d.Time = ""
	d.advance()
	return nil
}

// SelectTime requires start to be one of the slots offered for the date.
func (d *Draft) SelectTime(start string, slots []TimeSlot) error {
	if err := d.expect(StepTime); err != nil {
		return err
	}

	for _, s := range slots {
		if s.Start == start {
			d.Time = start
			d.advance()
			return nil
		}
	}
	return httperr.Field("time", "slot_unavailable", "That time is no longer available.")
}

func (d *Draft) EnterDetails(in Details, feePercent float64) error {
	if err := d.expect(StepDetails); err != nil {
		return err
	}
	if err := ValidateDetails(in); err != nil {
		return err
	}

	d.CustomerName = strings.TrimSpace(in.Name)
	d.CustomerEmail = validators.NormalizeEmail(in.Email)
	d.CustomerPhone = validators.NormalizePhone(in.Phone)
	d.Notes = strings.TrimSpace(in.Notes)

	d.PlatformFee = PlatformFee(d.Price, feePercent)
	d.Total = ChargeAmount(d.Price, feePercent)
	d.advance()
	return nil
}

// Back returns to the previous step. The first step and a confirmed draft
// have nowhere to go back to.
func (d *Draft) Back() error {
	i := d.Step.index()
	if i <= 0 || d.Step == StepConfirmed || d.PaymentRef != "" {
		return httperr.ErrBusiness("cannot_go_back")
	}
	d.Step = order[i-1]
	return nil
}

// Booking assembles the record to persist once payment succeeded. It
// re-validates every field so a draft never confirms with bad data.
func (d *Draft) Booking(now time.Time) (*models.Booking, error) {
	if err := d.expect(StepPayment); err != nil {
		return nil, err
	}

	b := &models.Booking{
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		CustomerPhone: d.CustomerPhone,
		ServiceID:     d.ServiceID,
		ServiceName:   d.ServiceName,
		DurationMin:   d.DurationMin,
		StaffID:       d.StaffID,
		StaffName:     d.StaffName,
		Date:          d.Date,
		Time:          d.Time,
		Status:        InitialStatus(),
		Price:         d.Price,
		PlatformFee:   d.PlatformFee,
		PaymentRef:    d.PaymentRef,
		Notes:         d.Notes,
		CreatedAt:     now,
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (d *Draft) Confirm(bookingID string) error {
	if err := d.expect(StepPayment); err != nil {
		return err
	}
	d.BookingID = bookingID
	d.advance()
	return nil
}

func ValidateDetails(in Details) error {
	var errs httperr.ValidationErrors

	if strings.TrimSpace(in.Name) == "" {
		errs.Add("name", "required", "Name is required.")
	}
	if !validators.IsEmail(in.Email) {
		errs.Add("email", "invalid_email", "Enter a valid email address.")
	}
	if !validators.IsPhone(in.Phone) {
		errs.Add("phone", "invalid_phone", "Enter a valid phone number.")
	}

	return errs.Err()
}
