package profile

type CreateProfileDTO struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Bio         string       `json:"bio,omitempty"`
	Preferences *Preferences `json:"preferences"`
}

type UpdateProfileDTO struct {
	Name        *string      `json:"name"`
	Email       *string      `json:"email"`
	Bio         *string      `json:"bio"`
	Preferences *Preferences `json:"preferences"`
}
