package security

import "context"

// Principal is the in-process identity of the caller. It is built once per
// request by the authentication filter, carried as an immutable context
// value, and gone when the request's context is. It is never persisted and
// never shared across requests.
type Principal struct {
	Username    string
	UserID      *int64
	Authorities []string
}

// HasAuthority reports whether the principal holds the given role.
func (p Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

type principalKey struct{}
type bearerTokenKey struct{}

// WithPrincipal returns a context carrying the authenticated principal.
// The principal travels with the request context rather than any process
// global, so two concurrent requests can never observe each other's identity.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the request's principal. ok is false for anonymous
// requests.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// WithBearerToken stashes the raw inbound bearer credential so outbound
// cross-service calls can forward it verbatim.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey{}, token)
}

// BearerTokenFrom returns the inbound bearer credential, if one was present.
func BearerTokenFrom(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(bearerTokenKey{}).(string)
	return t, ok && t != ""
}

// ResolvePrincipal projects a verified token into a Principal using the
// verifier's claim extractors. The token must already have passed Verify.
func ResolvePrincipal(v *Verifier, tokenString string) (Principal, error) {
	subject, err := v.SubjectOf(tokenString)
	if err != nil {
		return Principal{}, err
	}
	roles, err := v.RolesOf(tokenString)
	if err != nil {
		return Principal{}, err
	}
	userID, err := v.UserIDOf(tokenString)
	if err != nil {
		return Principal{}, err
	}
	return Principal{Username: subject, UserID: userID, Authorities: roles}, nil
}
