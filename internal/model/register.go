package model

import "errors"

var (
	ErrNameRequired         = errors.New("name is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrPasswordRequired     = errors.New("password is required")
	ErrUnknownUserType      = errors.New("unknown user type")
	ErrRelationshipRequired = errors.New("relationship is required")
)

// EmergencyContact is the person to notify for a patient account.
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// RegistrationRequest is the body of POST /api/auth/register. The shape is a
// tagged union discriminated by UserType: patients carry a date of birth and
// an emergency contact, caregivers a linked patient and device, family
// members a relationship to the patient.
type RegistrationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	UserType Role   `json:"userType"`

	// Patient fields.
	DateOfBirth      string            `json:"dateOfBirth,omitempty"`
	Address          string            `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`

	// Caregiver fields.
	PatientID          string `json:"patient,omitempty"`
	DeviceID           string `json:"deviceId,omitempty"`
	IsAlsoFamilyMember bool   `json:"isAlsoFamilyMember,omitempty"`

	// Caregiver and family fields.
	Relationship string `json:"relationship,omitempty"`
}

// Validate checks the shared required fields and the per-role shape before
// the request goes over the wire.
func (r RegistrationRequest) Validate() error {
	if r.Name == "" {
		return ErrNameRequired
	}
	if r.Email == "" {
		return ErrEmailRequired
	}
	if r.Password == "" {
		return ErrPasswordRequired
	}
	switch r.UserType {
	case RolePatient:
		if r.EmergencyContact != nil && r.EmergencyContact.Relationship == "" {
			return ErrRelationshipRequired
		}
		return nil
	case RoleCaregiver, RoleFamily:
		if r.Relationship == "" {
			return ErrRelationshipRequired
		}
		return nil
	default:
		return ErrUnknownUserType
	}
}
