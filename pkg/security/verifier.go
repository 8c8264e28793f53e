package security

import (
	"context"

	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
)

// Verifier validates tokens against the shared signing key and extracts
// claims from them. Verification is recomputed on every request; nothing is
// cached, which is what keeps the services stateless.
type Verifier struct {
	key   []byte
	codec Codec
	log   logger.Logger
}

// NewVerifier creates a token verifier sharing the issuer's secret.
func NewVerifier(secret string, log logger.Logger) *Verifier {
	return &Verifier{
		key:   []byte(secret),
		codec: NewCodec(),
		log:   log.WithComponent("token_verifier"),
	}
}

// Verify reports whether the token is trustworthy. It never returns an
// error: any decode failure, whatever its kind, uniformly means "untrusted".
// The distinguishing reason is logged for operators.
func (v *Verifier) Verify(ctx context.Context, tokenString string) bool {
	if _, err := v.codec.Decode(tokenString, v.key); err != nil {
		v.log.Warn(ctx, "token rejected", logger.Fields{"reason": decodeFailureKind(err)})
		return false
	}
	return true
}

// SubjectOf extracts the subject claim. Callers are expected to have checked
// Verify first; on an unverifiable token the codec's typed failure is
// returned as-is.
func (v *Verifier) SubjectOf(tokenString string) (string, error) {
	claims, err := v.codec.Decode(tokenString, v.key)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// RolesOf extracts the roles claim. A token without a roles claim yields an
// empty list, never an error: no claim means zero authorities.
func (v *Verifier) RolesOf(tokenString string) ([]string, error) {
	claims, err := v.codec.Decode(tokenString, v.key)
	if err != nil {
		return nil, err
	}
	if claims.Roles == nil {
		return []string{}, nil
	}
	return claims.Roles, nil
}

// UserIDOf extracts the optional user id claim; nil when absent.
func (v *Verifier) UserIDOf(tokenString string) (*int64, error) {
	claims, err := v.codec.Decode(tokenString, v.key)
	if err != nil {
		return nil, err
	}
	return claims.UserID, nil
}

// decodeFailureKind names the failure for diagnostic logs. Clients never see
// these; they only ever get a generic 401.
func decodeFailureKind(err error) string {
	switch {
	case errors.Is(err, errors.ErrTokenExpired):
		return "expired"
	case errors.Is(err, errors.ErrTokenSignatureInvalid):
		return "signature_invalid"
	case errors.Is(err, errors.ErrTokenUnsupported):
		return "unsupported_algorithm"
	case errors.Is(err, errors.ErrTokenMalformed):
		return "malformed"
	default:
		return "unknown"
	}
}
