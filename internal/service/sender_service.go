package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"
	"time"

	"condopark/internal/entities"
	"condopark/internal/repository"
	"condopark/internal/utils"

	"github.com/sirupsen/logrus"
)

// Notifier is told about ledger mutations after they have been stored.
// Implementations must not fail the operation that triggered them.
type Notifier interface {
	BookingCreated(ctx context.Context, booking entities.Booking, slot entities.Slot)
	BookingStatusChanged(ctx context.Context, booking entities.Booking)
}

type NopNotifier struct{}

func (NopNotifier) BookingCreated(context.Context, entities.Booking, entities.Slot) {}
func (NopNotifier) BookingStatusChanged(context.Context, entities.Booking)          {}

var statusEmailTemplate = template.Must(template.New("status").Parse(`<p>Hello {{.ParkerName}},</p>
<p>Your parking booking <strong>{{.BookingID}}</strong> is now <strong>{{.Status}}</strong>.</p>
<ul>
  <li>Plate: {{.PlateNumber}}</li>
  <li>From: {{.Start}}</li>
  <li>Until: {{.End}}</li>
</ul>
{{if .GateCode}}<p>Show this code at the gate: <strong>{{.GateCode}}</strong></p>{{end}}
<p>CondoPark</p>`))

type statusEmailData struct {
	ParkerName  string
	BookingID   string
	Status      string
	PlateNumber string
	Start       string
	End         string
	GateCode    string
}

// SenderService sends an SMS to the slot owner when a booking is requested and
// an e-mail to the parker when a guard changes the booking status. Deliveries
// run in the background; Wait blocks until all of them finished.
type SenderService struct {
	Users  repository.UserRepository
	mailer Mailer
	texter Texter
	loc    *time.Location
	wg     sync.WaitGroup
}

func NewSenderService(users repository.UserRepository, mailer Mailer, texter Texter) *SenderService {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		loc = time.FixedZone("PHT", 8*60*60)
	}
	return &SenderService{Users: users, mailer: mailer, texter: texter, loc: loc}
}

func (s *SenderService) BookingCreated(_ context.Context, booking entities.Booking, slot entities.Slot) {
	if s.texter == nil || slot.OwnerContact == "" {
		return
	}
	body := fmt.Sprintf("CondoPark: new booking request %s for slot %s (%s %s), plate %s, %s to %s.",
		booking.ID, slot.SlotNumber, slot.Tower, slot.Floor, booking.PlateNumber,
		booking.StartTime.In(s.loc).Format("02/01 15:04"),
		booking.EndTime.In(s.loc).Format("02/01 15:04"),
	)
	to := slot.OwnerContact

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.texter.SendSMS(to, body); err != nil {
			utils.Logger.WithFields(logrus.Fields{
				"booking_id": booking.ID,
				"error":      err.Error(),
			}).Warn("Booking created, but the owner SMS failed")
		}
	}()
}

func (s *SenderService) BookingStatusChanged(ctx context.Context, booking entities.Booking) {
	if s.mailer == nil {
		return
	}
	parker, err := s.Users.GetByID(ctx, booking.ParkerID)
	if err != nil {
		utils.Logger.WithFields(logrus.Fields{
			"booking_id": booking.ID,
			"parker_id":  booking.ParkerID,
			"error":      err.Error(),
		}).Warn("Cannot notify parker, user lookup failed")
		return
	}

	subject, plain, html, err := s.statusEmail(booking)
	if err != nil {
		utils.Logger.WithField("booking_id", booking.ID).Errorf("Error rendering status email: %v", err)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.mailer.SendEmail(parker.Email, parker.Name, subject, plain, html); err != nil {
			utils.Logger.WithFields(logrus.Fields{
				"booking_id": booking.ID,
				"error":      err.Error(),
			}).Warn("Booking status changed, but the parker email failed")
		}
	}()
}

// Wait blocks until every queued delivery has completed.
func (s *SenderService) Wait() {
	s.wg.Wait()
}

func (s *SenderService) statusEmail(b entities.Booking) (subject, plain, html string, err error) {
	data := statusEmailData{
		ParkerName:  b.ParkerName,
		BookingID:   b.ID,
		Status:      string(b.Status),
		PlateNumber: b.PlateNumber,
		Start:       b.StartTime.In(s.loc).Format("02 Jan 2006 15:04 MST"),
		End:         b.EndTime.In(s.loc).Format("02 Jan 2006 15:04 MST"),
	}
	if b.QRCodeData != nil && b.Status == entities.StatusApproved {
		data.GateCode = *b.QRCodeData
	}

	subject = fmt.Sprintf("Your CondoPark booking is %s - Code: %s", data.Status, data.BookingID)
	plain = fmt.Sprintf(
		"Hello %s,\n\nYour parking booking %s is now %s.\n\nPlate: %s\nFrom: %s\nUntil: %s\n",
		data.ParkerName, data.BookingID, data.Status, data.PlateNumber, data.Start, data.End,
	)
	if data.GateCode != "" {
		plain += fmt.Sprintf("\nShow this code at the gate: %s\n", data.GateCode)
	}

	var buf bytes.Buffer
	if err := statusEmailTemplate.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	return subject, plain, buf.String(), nil
}
