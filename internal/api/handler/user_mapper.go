package handler

import (
	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// userResponse is the public account shape. The role is additionally exposed
// as isSeller/isAdmin booleans because clients key their route guards on
// those flags.
type userResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role"`
	IsSeller   bool   `json:"isSeller"`
	IsAdmin    bool   `json:"isAdmin"`
	FullName   string `json:"full_name,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Desc       string `json:"desc,omitempty"`
	ProfilePic string `json:"profile_pic,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       string(u.Role),
		IsSeller:   u.IsSeller(),
		IsAdmin:    u.IsAdmin(),
		FullName:   u.FullName,
		Country:    u.Country,
		Phone:      u.Phone,
		Desc:       u.Desc,
		ProfilePic: u.ProfilePic,
		CreatedAt:  u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
