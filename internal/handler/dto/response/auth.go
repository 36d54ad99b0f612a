package response

import "storefront-api/internal/usecase/queries"

type AuthResponse struct {
	AccessToken  string                      `json:"access_token"`
	RefreshToken string                      `json:"refresh_token,omitempty"`
	User         *queries.AuthorizedUserView `json:"user,omitempty"`
}
