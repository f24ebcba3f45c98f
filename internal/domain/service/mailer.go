package service

import "context"

// Mailer delivers transactional emails carrying out-of-band action links.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, name, link string) error
	SendPasswordResetEmail(ctx context.Context, to, link string) error
}
