package constant

// Authorization objects, used as the casbin `obj` argument.
const (
	PermIdentityMgmtUsers   = "identity:users"
	PermIdentitySellerQueue = "identity:sellers"
	PermCatalogProducts     = "catalog:products"
)

// Authorization actions, used as the casbin `act` argument.
const (
	PermActRead   = "read"
	PermActCreate = "create"
	PermActUpdate = "update"
	PermActDelete = "delete"
)
