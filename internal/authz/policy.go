package authz

// Role is a named permission tier embedded in session tokens.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// Operation identifies a guarded mutating endpoint.
type Operation string

const (
	OpCarCreate      Operation = "car:create"
	OpCarUpdate      Operation = "car:update"
	OpCarDelete      Operation = "car:delete"
	OpCarImageUpload Operation = "car:image_upload"
	OpCarRent        Operation = "car:rent"
	OpAuditLogList   Operation = "audit_log:list"
)

// policy is the allow-list of roles per operation. Operations missing from
// the table are denied for everyone.
var policy = map[Operation][]Role{
	OpCarCreate:      {RoleAdmin},
	OpCarUpdate:      {RoleAdmin},
	OpCarDelete:      {RoleAdmin},
	OpCarImageUpload: {RoleAdmin},
	OpAuditLogList:   {RoleAdmin},
	OpCarRent:        {RoleAdmin, RoleCustomer},
}

func Allowed(op Operation, role Role) bool {
	allowed, ok := policy[op]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
