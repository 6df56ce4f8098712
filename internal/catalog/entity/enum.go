package entity

type ProductStatus int16

const (
	// ProductStatusUnknown is mean status is not known / not set.
	ProductStatusUnknown ProductStatus = 0

	// ProductStatusActive mean product is visible in the public catalog.
	ProductStatusActive ProductStatus = 1

	// ProductStatusInactive mean product is hidden from the public catalog.
	ProductStatusInactive ProductStatus = 2
)

func ProductStatusFromString(str string) ProductStatus {
	switch str {
	case "active":
		return ProductStatusActive
	case "inactive":
		return ProductStatusInactive
	default:
		return ProductStatusUnknown
	}
}

func (s ProductStatus) String() string {
	switch s {
	case ProductStatusActive:
		return "active"
	case ProductStatusInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

func (s ProductStatus) IsUnknown() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive:
		return false
	default:
		return true
	}
}
