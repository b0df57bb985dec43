package domain

type Customer struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

type AccessToken struct {
	Token     string
	ExpiresAt string
}

// UserError is one entry of customerUserErrors.
type UserError struct {
	Code    string
	Field   []string
	Message string
}

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type RegisterInput struct {
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required"`
	RePassword string `validate:"required,eqfield=Password"`
}
