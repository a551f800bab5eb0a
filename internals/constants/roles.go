package constants

import "fmt"

// Role pengguna (nilai persis dengan kolom users.role)
const (
	RoleAdmin       = "Admin"
	RoleCenterStaff = "CenterStaff"
	RoleBranchStaff = "BranchStaff"
	RoleLeader      = "Leader"
	RoleMember      = "Member"
)

// Member type
const (
	MemberTypeMember = "Member"
	MemberTypeSeeker = "Seeker"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Hanya staff (admin/center/branch) yang boleh mengakses fitur %s."
	ErrOnlyLeaderCanAccess = "❌ Hanya staff atau leader yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorLeader(feature string) string {
	return fmt.Sprintf(ErrOnlyLeaderCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCenterStaff,
		RoleBranchStaff,
		RoleLeader,
		RoleMember,
	}

	// Staff pengelola konten & data (mayoritas endpoint admin)
	StaffRoles = []string{
		RoleAdmin,
		RoleCenterStaff,
		RoleBranchStaff,
	}

	// Staff + leader untuk fitur pastoral (prayer moderation, care)
	StaffAndLeader = []string{
		RoleAdmin,
		RoleCenterStaff,
		RoleBranchStaff,
		RoleLeader,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
