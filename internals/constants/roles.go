package constants

import "fmt"

const (
	RoleSuperAdmin        = "SuperAdmin"
	RoleCorporateUser     = "CorporateUser"
	RoleUser              = "User"
	RoleConsultancy       = "Consultancy"
	RoleComplianceOfficer = "ComplianceOfficer"
)

const (
	ErrOnlyAdminsCanAccess = "Only SuperAdmin may access %s."
	ErrInsufficientRole    = "Insufficient permissions for %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleError(feature string) string {
	return fmt.Sprintf(ErrInsufficientRole, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleCorporateUser,
		RoleUser,
		RoleConsultancy,
		RoleComplianceOfficer,
	}

	// Route guards, mirrored from the per-route role lists.
	UserManagers   = []string{RoleSuperAdmin, RoleCorporateUser, RoleConsultancy}
	UserUpdaters   = []string{RoleSuperAdmin, RoleConsultancy}
	SuperAdminOnly = []string{RoleSuperAdmin}

	DocumentRoles = []string{RoleCorporateUser, RoleConsultancy, RoleComplianceOfficer}
	ReportRoles   = []string{RoleCorporateUser, RoleConsultancy, RoleComplianceOfficer}

	PaymentCreators = []string{RoleCorporateUser, RoleConsultancy}
	PaymentViewers  = []string{RoleCorporateUser, RoleConsultancy, RoleSuperAdmin}
	CreditRoles     = []string{RoleCorporateUser, RoleConsultancy, RoleSuperAdmin}

	AuditViewers = []string{RoleSuperAdmin, RoleComplianceOfficer}
	TicketRoles  = []string{RoleCorporateUser, RoleConsultancy, RoleComplianceOfficer, RoleUser}
)

// ==========================
// Creation / update hierarchy
// ==========================

// CreatableRoles maps a creator role to the roles it may hand out. Role
// updates go through the same table, re-checked at update time so a
// Consultancy can never promote a managed user to SuperAdmin.
var CreatableRoles = map[string][]string{
	RoleSuperAdmin:    {RoleCorporateUser, RoleUser, RoleConsultancy, RoleComplianceOfficer},
	RoleCorporateUser: {RoleUser},
	RoleConsultancy:   {RoleCorporateUser, RoleUser},
}

// CanGrantRole reports whether creatorRole may create (or promote to)
// targetRole. Roles absent from the table can grant nothing.
func CanGrantRole(creatorRole, targetRole string) bool {
	for _, r := range CreatableRoles[creatorRole] {
		if r == targetRole {
			return true
		}
	}
	return false
}

// CanManageUsers reports whether the role may create users at all.
func CanManageUsers(role string) bool {
	return len(CreatableRoles[role]) > 0
}

// IsValidRole reports whether role is one of the closed role set.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ==========================
// Record scoping
// ==========================

// CanSeeAllRecords: SuperAdmin is unscoped; ComplianceOfficer is unscoped
// for audit logs only (see CanViewAllAuditLogs), not here.
func CanSeeAllRecords(role string) bool {
	return role == RoleSuperAdmin
}

// CanViewAllAuditLogs: the audit trail is readable in full by the roles
// in AuditViewers; everyone else only sees their own rows.
func CanViewAllAuditLogs(role string) bool {
	for _, r := range AuditViewers {
		if role == r {
			return true
		}
	}
	return false
}

// OwnsOrCreated reports whether an actor may act on a record owned by
// ownerID that was created by createdBy. SuperAdmin always may;
// CorporateUser and Consultancy reach records they created plus their
// own; every other role only its own.
func OwnsOrCreated(actorRole, actorID, ownerID string, createdBy *string) bool {
	if actorRole == RoleSuperAdmin {
		return true
	}
	if actorID == ownerID {
		return true
	}
	if actorRole == RoleCorporateUser || actorRole == RoleConsultancy {
		return createdBy != nil && *createdBy == actorID
	}
	return false
}
