package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Role is the account kind returned by the login endpoint.
type Role string

const (
	RoleStudent  Role = "STUDENT"
	RoleLandlord Role = "LANDLORD"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLandlord, RoleAdmin:
		return true
	}
	return false
}

// ID is an identifier the backend sends either as a JSON number or a string.
// It is kept in its textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Int64 parses the id as a decimal number.
func (id ID) Int64() (int64, error) {
	return strconv.ParseInt(string(id), 10, 64)
}

// Identity is the user-role-and-id tuple derived from a successful login.
type Identity struct {
	// ID is the authentication record id (the backend's authenticationId).
	ID ID `json:"id"`

	Username string `json:"username"`

	// Role never changes while the session lives.
	Role Role `json:"role"`

	// StudentID is set for STUDENT sessions when the backend supplied it.
	StudentID *int64 `json:"studentId"`

	// LandlordID is set for LANDLORD sessions when the backend supplied it.
	LandlordID *int64 `json:"landlordId,omitempty"`
}

// Validate reports whether the identity has the expected shape.
func (i Identity) Validate() error {
	if strings.TrimSpace(i.Username) == "" {
		return fmt.Errorf("identity has no username")
	}
	if !i.Role.Valid() {
		return fmt.Errorf("identity has unknown role %q", i.Role)
	}
	return nil
}

// Status is the lifecycle state of the session.
type Status int

const (
	StatusHydrating Status = iota
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusHydrating:
		return "HYDRATING"
	case StatusAuthenticated:
		return "AUTHENTICATED"
	case StatusAnonymous:
		return "ANONYMOUS"
	default:
		return "UNKNOWN"
	}
}

// Snapshot is a consistent copy of the session state.
type Snapshot struct {
	Status   Status
	Token    string
	Identity *Identity
}

// Authenticated reports whether both token and identity are present.
func (s Snapshot) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.Token != "" && s.Identity != nil
}

// LoginRequest is the body of the login call.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	AuthenticationID ID     `json:"authenticationId"`
	Username         string `json:"username"`
	UserRole         Role   `json:"userRole"`
	StudentID        *int64 `json:"studentId,omitempty"`
	LandlordID       *int64 `json:"landlordId,omitempty"`
}

// Identity derives the session identity. The role-specific id is only kept
// for the matching role.
func (r LoginResponse) Identity() Identity {
	id := Identity{
		ID:       r.AuthenticationID,
		Username: r.Username,
		Role:     r.UserRole,
	}
	switch r.UserRole {
	case RoleStudent:
		id.StudentID = r.StudentID
	case RoleLandlord:
		id.LandlordID = r.LandlordID
	}
	return id
}
