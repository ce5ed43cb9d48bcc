package models

// Role is the permission level of an admin account
type Role string

const (
	// RoleSuperAdmin manages admins and everything else
	RoleSuperAdmin Role = "super_admin"
	// RoleEditor manages catalog content and reads contact requests
	RoleEditor Role = "editor"
	// RoleViewer can sign in to the panel but not change anything
	RoleViewer Role = "viewer"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// ServiceType names the storefront section a contact request is about
type ServiceType string

const (
	ServiceTypeTech      ServiceType = "tech"
	ServiceTypeITService ServiceType = "it_service"
	ServiceTypeFood      ServiceType = "food"
)

// Valid reports whether s is one of the storefront sections
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeTech, ServiceTypeITService, ServiceTypeFood:
		return true
	}
	return false
}

// Delivery channels for recovery codes
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// GlobalCartID is the cart shared by every client when carts are not scoped per session
const GlobalCartID = "global"
