package security

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/ecomovil/platform/pkg/errors"
)

// signingMethod is the HMAC algorithm every service signs and accepts.
var signingMethod = jwt.SigningMethodHS512

// Codec encodes and decodes signed claim sets to and from compact token
// strings. It has no dependencies and no state besides the algorithm choice.
type Codec struct{}

// NewCodec returns a token codec.
func NewCodec() Codec {
	return Codec{}
}

// Encode signs the claim set with the given key and returns the compact
// three-segment token string.
func (Codec) Encode(claims *Claims, key []byte) (string, error) {
	if err := claims.Validate(); err != nil {
		return "", err
	}
	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(key)
	if err != nil {
		return "", errors.ErrInvalidConfig.WithError(err)
	}
	return signed, nil
}

// Decode parses and validates a compact token string. Failures are reported
// as one of four distinct kinds so callers can tell them apart from an
// absent token: ErrTokenMalformed, ErrTokenSignatureInvalid, ErrTokenExpired
// and ErrTokenUnsupported.
func (Codec) Decode(tokenString string, key []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrTokenUnsupported
		}
		return key, nil
	})
	if err != nil {
		return nil, classifyDecodeError(err)
	}
	if !token.Valid {
		return nil, errors.ErrTokenSignatureInvalid
	}
	return claims, nil
}

// classifyDecodeError maps jwt parse failures onto the codec's typed failure
// kinds. Expiry wins over other validation failures so an expired token is
// reported as expired even when further checks also failed.
func classifyDecodeError(err error) error {
	switch {
	case errors.Is(err, errors.ErrTokenUnsupported):
		return errors.ErrTokenUnsupported.WithError(err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.ErrTokenExpired.WithError(err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.ErrTokenSignatureInvalid.WithError(err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.ErrTokenMalformed.WithError(err)
	default:
		return errors.ErrTokenMalformed.WithError(err)
	}
}
