package usecase

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"strings"
	"time"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrInvalidRecipient = errors.New("invalid email recipient")

const (
	brDateLayout     = "02/01/2006"
	brDateTimeLayout = "02/01/2006, 15:04:05"
)

// INotificationUseCase sends transactional email.
type INotificationUseCase interface {
	SendBookingConfirmation(ctx context.Context, b entities.Booking) error
	SendTestEmail(ctx context.Context, to string) error
	VerifySMTP(ctx context.Context) error
}

type NotificationUseCase struct {
	mailer   interfaces.IMailer
	packages interfaces.ITravelPackageRepository
	logger   *zap.Logger
	loc      *time.Location
	now      func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(mailer interfaces.IMailer, packages interfaces.ITravelPackageRepository, logger *zap.Logger) *NotificationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.FixedZone("BRT", -3*60*60)
	}
	return &NotificationUseCase{
		mailer:   mailer,
		packages: packages,
		logger:   logger,
		loc:      loc,
		now:      time.Now,
	}
}

// SendBookingConfirmation mails the passenger a summary of the booking and
// its travel package.
func (u *NotificationUseCase) SendBookingConfirmation(ctx context.Context, b entities.Booking) error {
	to := strings.TrimSpace(b.Email)
	if to == "" {
		return ErrInvalidRecipient
	}

	pkg, err := u.packages.GetByID(ctx, b.TravelPackageID)
	if err != nil {
		return err
	}
	if pkg.ID == "" {
		return ErrTravelPackageNotFound
	}

	html, err := render(bookingConfirmationTemplate, bookingConfirmationView{
		Brand:            brandName,
		BookingID:        b.ID,
		FullName:         b.FullName,
		CPF:              b.CPF,
		RG:               b.RG,
		Phone:            b.Phone,
		Email:            to,
		BirthDate:        b.BirthDate.UTC().Format(brDateLayout),
		BoardingLocation: b.BoardingLocation,
		City:             b.City,
		PackageName:      pkg.Name,
		Price:            formatBRL(pkg.Price),
		TravelMonth:      pkg.TravelMonth,
		TravelDate:       pkg.TravelDate,
		ReturnDate:       pkg.ReturnDate,
		TravelTime:       pkg.TravelTime,
		SentAt:           u.now().In(u.loc).Format(brDateTimeLayout),
	})
	if err != nil {
		return err
	}

	err = u.mailer.Send(ctx, interfaces.Email{
		To:      to,
		Subject: "Confirmação de Reserva - " + pkg.Name,
		HTML:    html,
	})
	if err != nil {
		u.logger.Warn("[notification][usecase] booking confirmation not sent", zap.String("booking_id", b.ID), zap.Error(err))
		return err
	}
	u.logger.Info("[notification][usecase] booking confirmation sent", zap.String("booking_id", b.ID))
	return nil
}

func (u *NotificationUseCase) SendTestEmail(ctx context.Context, to string) error {
	to = strings.TrimSpace(to)
	if to == "" || !strings.Contains(to, "@") {
		return ErrInvalidRecipient
	}

	html, err := render(testEmailTemplate, testEmailView{
		Brand:  brandName,
		SentAt: u.now().In(u.loc).Format(brDateTimeLayout),
	})
	if err != nil {
		return err
	}
	return u.mailer.Send(ctx, interfaces.Email{
		To:      to,
		Subject: "Teste de Email - " + brandName,
		HTML:    html,
	})
}

func (u *NotificationUseCase) VerifySMTP(ctx context.Context) error {
	return u.mailer.Verify(ctx)
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatBRL renders a price the way Brazilian readers expect: "R$ 1.499,90".
func formatBRL(v float64) string {
	return message.NewPrinter(language.BrazilianPortuguese).Sprintf("R$ %.2f", v)
}
