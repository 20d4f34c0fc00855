package models

const (
	RoleClient    = "client"
	RoleLawyer    = "lawyer"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// Identity is the verified acting user supplied by the authentication layer.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

// CanModerate reports whether the identity may remove reviews it did not write.
func (i Identity) CanModerate() bool {
	return i.Role == RoleModerator || i.Role == RoleAdmin
}
