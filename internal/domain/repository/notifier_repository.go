package repository

import "context"

// NotifierRepository delivers a rendered report to a chat webhook.
type NotifierRepository interface {
	Send(ctx context.Context, webhook, title, message string) error
}
