package handler

// messagePayload is the error envelope rendered by handlers; it matches the
// shape produced by the central HTTP error handler.
type messagePayload struct {
	Message string `json:"message"`
}

// Field order below is the validation precedence order: the first violated
// rule is the one reported.

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=8"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userPayload struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type authData struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

type authResponse struct {
	Data authData `json:"data"`
}
