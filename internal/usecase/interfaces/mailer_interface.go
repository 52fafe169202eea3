package interfaces

import "context"

type Email struct {
	To      string
	Subject string
	HTML    string
}

// IMailer delivers HTML email over SMTP.
type IMailer interface {
	Send(ctx context.Context, msg Email) error
	Verify(ctx context.Context) error
}
