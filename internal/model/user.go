package model

// Role identifies which side of the caregiving relationship a user is on.
type Role string

const (
	RolePatient   Role = "patient"
	RoleCaregiver Role = "caregiver"
	RoleFamily    Role = "family"
)

// Valid reports whether the role is one of the known enum values.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleCaregiver, RoleFamily:
		return true
	}
	return false
}

// User is the profile record exchanged with the API and persisted in the
// credential store. DateOfBirth is only populated for patients.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by a successful login: the user profile plus a
// signed bearer token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// RegisterResponse acknowledges a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"id"`
}

// ProfileResponse is returned by GET /api/auth/profile.
type ProfileResponse struct {
	Msg  string `json:"msg"`
	User User   `json:"user"`
}
