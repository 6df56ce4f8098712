package event

import "time"

const VerificationCodeDestination string = "verification_code"
const VerificationCodeConsumerNotification string = "verification_code_notification"

type VerificationCodeMessage struct {
	AccountID int64     `json:"account_id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
