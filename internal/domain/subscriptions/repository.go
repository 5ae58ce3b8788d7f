package subscriptions

import "context"

// Repository: un documento por usuario en la colección "subscriptions".
type Repository interface {
	Get(ctx context.Context, ownerUserID string) (Subscription, error)
	Save(ctx context.Context, s Subscription) error
}
