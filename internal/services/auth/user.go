package auth

import "github.com/killallgit/biomed-search/internal/services/search"

// UserContextFromClaims builds the search authorization view of a verified caller.
// Nil claims produce an anonymous context.
func UserContextFromClaims(claims *Claims) *search.UserContext {
	if claims == nil {
		return &search.UserContext{}
	}

	role := claims.AppMetadata.Role
	if role == "" {
		role = search.RoleUser
	}

	return &search.UserContext{
		IsAuthenticated: true,
		ID:              claims.Sub,
		Email:           claims.Email,
		Role:            role,
		OrgID:           claims.AppMetadata.OrgID,
	}
}
