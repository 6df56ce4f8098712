package entity

import "time"

type Account struct {
	ID           int64
	Email        string
	Password     string // hashed
	Role         Role
	Verified     bool
	Approved     bool // seller approval, set by an admin
	Status       AccountStatus
	OtpCode      *string
	OtpExpiresAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type NewAccount struct {
	ID           int64
	Email        string
	Role         Role
	Status       AccountStatus
	OtpCode      string
	OtpExpiresAt time.Time
}

type OtpRotation struct {
	AccountID int64
	Code      string
	ExpiresAt time.Time
}

// OtpActivation carries the conditional verify parameters. The update only
// lands when the stored code matches and has not expired at Now.
type OtpActivation struct {
	Email string
	Code  string
	Now   time.Time
}

type AccountListFilterData struct {
	IsFilterBySearch bool
	IsFilterByRole   bool
	IsFilterByStatus bool
	Search           string
	Role             Role
	Status           AccountStatus
	Size             int32
	Page             int32
}

type AccountStatusChange struct {
	ID        int64
	OldStatus AccountStatus
	NewStatus AccountStatus
}
