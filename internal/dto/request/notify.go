package request

type TestEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TestSmsRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}
