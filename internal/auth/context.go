package auth

import "context"

type contextKey string

const identityKey contextKey = "identity"

// Identity is the per-request projection attached by the auth middleware.
// It lives only for the request; handlers never share it.
type Identity struct {
	ID       string `json:"_id"`
	EmailID  string `json:"emailId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// WithIdentity returns a context with the given identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity from the context, or nil.
func IdentityFromContext(ctx context.Context) *Identity {
	v := ctx.Value(identityKey)
	if v == nil {
		return nil
	}
	id, _ := v.(*Identity)
	return id
}
