package request

type LoginRequest struct {
	Operator string `json:"operator" binding:"required,max=64"`
	Password string `json:"password" binding:"required"`
}
