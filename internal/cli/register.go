package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carebridge/carebridge-go/internal/authclient"
	"github.com/carebridge/carebridge-go/internal/model"
)

func newRegisterCmd() *cobra.Command {
	var req model.RegistrationRequest
	var role, emName, emRelationship, emPhone string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient, caregiver, or family account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.UserType = model.Role(role)
			if emName != "" || emRelationship != "" || emPhone != "" {
				req.EmergencyContact = &model.EmergencyContact{
					Name:         emName,
					Relationship: emRelationship,
					Phone:        emPhone,
				}
			}

			api := authclient.New(flagServer)
			resp, err := api.Register(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Printf("%s (account %s)\n", resp.Message, resp.UserID)
			fmt.Println("Sign in with: carebridge login")
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Account role: patient, caregiver, or family")
	cmd.Flags().StringVar(&req.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.DateOfBirth, "date-of-birth", "", "Date of birth, YYYY-MM-DD (patient)")
	cmd.Flags().StringVar(&req.Address, "address", "", "Home address (patient)")
	cmd.Flags().StringVar(&emName, "emergency-name", "", "Emergency contact name (patient)")
	cmd.Flags().StringVar(&emRelationship, "emergency-relationship", "", "Emergency contact relationship (patient)")
	cmd.Flags().StringVar(&emPhone, "emergency-phone", "", "Emergency contact phone (patient)")
	cmd.Flags().StringVar(&req.PatientID, "patient", "", "Linked patient account ID (caregiver)")
	cmd.Flags().StringVar(&req.DeviceID, "device", "", "Paired device ID (caregiver)")
	cmd.Flags().StringVar(&req.Relationship, "relationship", "", "Relationship to the patient (caregiver, family)")
	cmd.Flags().BoolVar(&req.IsAlsoFamilyMember, "also-family", false, "Caregiver is also a family member")

	_ = cmd.MarkFlagRequired("role")
	return cmd
}
