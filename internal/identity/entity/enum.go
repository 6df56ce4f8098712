package entity

type Role int16

const (
	// RoleUnknown is mean role is not known / not set.
	RoleUnknown Role = 0

	// RoleCustomer mean a buyer account.
	RoleCustomer Role = 1

	// RoleSeller mean a merchant account, needs admin approval to sell.
	RoleSeller Role = 2

	// RoleAdmin mean a back-office operator account.
	RoleAdmin Role = 3
)

func RoleFromString(str string) Role {
	switch str {
	case "CUSTOMER":
		return RoleCustomer
	case "SELLER":
		return RoleSeller
	case "ADMIN":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "CUSTOMER"
	case RoleSeller:
		return "SELLER"
	case RoleAdmin:
		return "ADMIN"
	default:
		return "UNKNOWN"
	}
}

func (r Role) IsUnknown() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return false
	default:
		return true
	}
}

type AccountStatus int16

const (
	// AccountStatusUnknown is mean status is not known / not set.
	AccountStatusUnknown AccountStatus = 0

	// AccountStatusPending mean account exists but has not completed email verification.
	AccountStatusPending AccountStatus = 1

	// AccountStatusActive mean account is verified and allowed to use the app.
	AccountStatusActive AccountStatus = 2

	// AccountStatusRejected mean a seller application was rejected by an admin.
	AccountStatusRejected AccountStatus = 3

	// AccountStatusBlocked mean account is blocked from using the app (policy/abuse/etc).
	AccountStatusBlocked AccountStatus = 4
)

func AccountStatusFromString(str string) AccountStatus {
	switch str {
	case "pending":
		return AccountStatusPending
	case "active":
		return AccountStatusActive
	case "rejected":
		return AccountStatusRejected
	case "blocked":
		return AccountStatusBlocked
	default:
		return AccountStatusUnknown
	}
}

func (s AccountStatus) String() string {
	switch s {
	case AccountStatusPending:
		return "pending"
	case AccountStatusActive:
		return "active"
	case AccountStatusRejected:
		return "rejected"
	case AccountStatusBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

func (s AccountStatus) IsUnknown() bool {
	switch s {
	case AccountStatusPending, AccountStatusActive, AccountStatusRejected, AccountStatusBlocked:
		return false
	default:
		return true
	}
}

func (s AccountStatus) Ensure() AccountStatus {
	switch s {
	case AccountStatusPending:
		return AccountStatusPending
	case AccountStatusActive:
		return AccountStatusActive
	case AccountStatusRejected:
		return AccountStatusRejected
	case AccountStatusBlocked:
		return AccountStatusBlocked
	default:
		return AccountStatusUnknown
	}
}
