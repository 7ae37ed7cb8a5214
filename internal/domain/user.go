package domain

type User struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Mobile             *string `json:"mobile,omitempty"`
	RegistrationStatus string  `json:"registration_status,omitempty"`
	ProfileCompleted   bool    `json:"profile_completed,omitempty"`
}

type LoginResult struct {
	Token    string `json:"token"`
	User     User   `json:"user"`
	Redirect string `json:"redirect,omitempty"`
}
