package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanGrantRole(t *testing.T) {
	cases := []struct {
		creator string
		target  string
		want    bool
	}{
		{RoleSuperAdmin, RoleCorporateUser, true},
		{RoleSuperAdmin, RoleUser, true},
		{RoleSuperAdmin, RoleConsultancy, true},
		{RoleSuperAdmin, RoleComplianceOfficer, true},
		{RoleSuperAdmin, RoleSuperAdmin, false},

		{RoleCorporateUser, RoleUser, true},
		{RoleCorporateUser, RoleCorporateUser, false},
		{RoleCorporateUser, RoleSuperAdmin, false},

		{RoleConsultancy, RoleCorporateUser, true},
		{RoleConsultancy, RoleUser, true},
		{RoleConsultancy, RoleSuperAdmin, false},
		{RoleConsultancy, RoleComplianceOfficer, false},

		{RoleUser, RoleUser, false},
		{RoleComplianceOfficer, RoleUser, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanGrantRole(tc.creator, tc.target),
			"%s creating %s", tc.creator, tc.target)
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, IsValidRole(r), r)
	}
	assert.False(t, IsValidRole("Admin"))
	assert.False(t, IsValidRole(""))
	assert.False(t, IsValidRole("superadmin"))
}

func TestCanSeeAllRecords(t *testing.T) {
	assert.True(t, CanSeeAllRecords(RoleSuperAdmin))
	assert.False(t, CanSeeAllRecords(RoleCorporateUser))
	assert.False(t, CanSeeAllRecords(RoleConsultancy))
	assert.False(t, CanSeeAllRecords(RoleUser))
}

func TestCanViewAllAuditLogs(t *testing.T) {
	assert.True(t, CanViewAllAuditLogs(RoleSuperAdmin))
	assert.True(t, CanViewAllAuditLogs(RoleComplianceOfficer))
	assert.False(t, CanViewAllAuditLogs(RoleCorporateUser))
	assert.False(t, CanViewAllAuditLogs(RoleConsultancy))
	assert.False(t, CanViewAllAuditLogs(RoleUser))
}

func TestOwnsOrCreated(t *testing.T) {
	actor := "6f1f7d7e-0000-0000-0000-000000000001"
	other := "6f1f7d7e-0000-0000-0000-000000000002"

	// SuperAdmin sees everything.
	assert.True(t, OwnsOrCreated(RoleSuperAdmin, actor, other, nil))

	// Owner sees their own record.
	assert.True(t, OwnsOrCreated(RoleUser, actor, actor, nil))
	assert.False(t, OwnsOrCreated(RoleUser, actor, other, nil))

	// Creator roles see records they created.
	assert.True(t, OwnsOrCreated(RoleCorporateUser, actor, other, &actor))
	assert.True(t, OwnsOrCreated(RoleConsultancy, actor, other, &actor))
	assert.False(t, OwnsOrCreated(RoleCorporateUser, actor, other, &other))
	assert.False(t, OwnsOrCreated(RoleCorporateUser, actor, other, nil))

	// Plain users never gain access through created_by.
	assert.False(t, OwnsOrCreated(RoleUser, actor, other, &actor))
}
