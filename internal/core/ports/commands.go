package ports

// CreateAccountCommand registers a new account. Password arrives as
// plaintext and exists only for the duration of the handler.
type CreateAccountCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

// DeleteAccountCommand removes an existing account by uid.
type DeleteAccountCommand struct {
	UID string `json:"uid" validate:"required"`
}

// GetAccountQuery looks an account up by uid. Absence is an explicit
// failure, never an empty result.
type GetAccountQuery struct {
	UID string `json:"uid" validate:"required"`
}
