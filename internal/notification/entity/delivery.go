package entity

import (
	"time"

	"github.com/pasarhub/pasar/internal/pkg/valueobject"
)

type Template struct {
	ID         int64
	TriggerKey TriggerKey
	Channel    Channel
	Subject    string
	Body       string
}

type CreateDeliveryLog struct {
	ID         int64
	AccountID  int64
	Recipient  string
	TriggerKey TriggerKey
	Channel    Channel
	Status     DeliveryStatus
}

type UpdateDeliveryLog struct {
	ID               int64
	Status           DeliveryStatus
	ProviderResponse valueobject.JSONMap
	NextRetryAt      *time.Time
}
