package request

type AdminUpdateUser struct {
	Name       *string `json:"name"`
	IsActive   *bool   `json:"isActive"`
	IsVerified *bool   `json:"isVerified"`
	Role       *string `json:"role"`
}
