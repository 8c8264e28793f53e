package security

import (
	"time"
)

// Issuer builds claim sets and signs them through the codec. The signing key
// is a process-wide secret shared with the verifier; it is immutable after
// start and is never rotated.
type Issuer struct {
	key     []byte
	ttlDays int
	codec   Codec
	now     func() time.Time
}

// NewIssuer creates a token issuer. expirationDays is the token lifetime.
func NewIssuer(secret string, expirationDays int) *Issuer {
	return &Issuer{
		key:     []byte(secret),
		ttlDays: expirationDays,
		codec:   NewCodec(),
		now:     time.Now,
	}
}

// Issue creates a token for a bare subject, with no role and no user id
// claim. Consumers must treat the absent role claim as zero authorities.
func (i *Issuer) Issue(subject string) (string, error) {
	return i.issue(subject, nil, nil)
}

// IssueWithRoles creates a token carrying the subject's roles, mirrored into
// the authorities claim.
func (i *Issuer) IssueWithRoles(subject string, roles []string) (string, error) {
	return i.issue(subject, roles, nil)
}

// IssueForUser creates a token carrying roles and the user's id. This is the
// variant the sign-in flow uses once the user record is known.
func (i *Issuer) IssueForUser(subject string, roles []string, userID int64) (string, error) {
	return i.issue(subject, roles, &userID)
}

func (i *Issuer) issue(subject string, roles []string, userID *int64) (string, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.AddDate(0, 0, i.ttlDays)
	return i.codec.Encode(NewClaims(subject, roles, userID, issuedAt, expiresAt), i.key)
}
