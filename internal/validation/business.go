package validation

import (
	"kalyanamaalai/internal/models"
)

// Registration validates a registration payload.
func (v *Validator) Registration(input *models.CreateUserInput) {
	v.Required("name", input.Name)
	v.Required("email", input.Email)
	v.Required("password", input.Password)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	if input.Password != "" {
		v.Check(len(input.Password) >= 8, "password", "must be at least 8 characters")
	}
	if input.Role != "" {
		v.Check(input.Role == models.RoleUser || input.Role == models.RoleAdmin,
			"role", "must be user or admin")
	}
}

// Form validates the mandatory matrimonial form fields.
func (v *Validator) Form(input *models.FormInput) {
	v.Required("full_name_en", input.FullNameEn)
	v.Required("gender", input.Gender)
	v.Required("dob", input.DOB)
	v.Date("dob", input.DOB)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
}

// Connection validates a connection request payload. Self and duplicate
// guards live in the connection service where both parties are known rows.
func (v *Validator) Connection(receiverID uint) {
	v.Check(receiverID != 0, "receiver_id", "is required")
}
