package team

// LoginRequest authenticates a member by email.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createMemberRequest struct {
	TeamID       uint   `json:"teamId" validate:"required"`
	UserID       uint   `json:"userId" validate:"required"`
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Role         string `json:"role" validate:"omitempty,oneof=setter closer manager"`
	IsOfferOwner bool   `json:"isOfferOwner"`
	IsAdmin      bool   `json:"isAdmin"`
	// Optional; a temporary password is generated when empty.
	Password string `json:"password"`
}

type updateMemberRequest struct {
	FullName     *string `json:"fullName"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Role         *string `json:"role" validate:"omitempty,oneof=setter closer manager"`
	IsOfferOwner *bool   `json:"isOfferOwner"`
	IsAdmin      *bool   `json:"isAdmin"`
}
