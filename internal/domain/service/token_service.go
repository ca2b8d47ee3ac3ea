package service

import (
	"strconv"
	"strings"

	"tasklist/internal/errors"
)

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token whose subject encodes
	// the user as "<id>:<username>".
	Issue(userID int64, username string) (string, error)

	// Verify checks the signature and expiry of a token string and returns
	// its subject. Expired tokens and malformed/badly signed tokens fail
	// with distinct domain errors.
	Verify(token string) (subject string, err error)
}

// ParseSubject extracts the numeric user ID from a "<id>:<username>" subject.
// Only the numeric prefix before the first colon is trusted; the username part
// is informational and may itself contain colons.
func ParseSubject(subject string) (int64, error) {
	idPart, _, found := strings.Cut(subject, ":")
	if !found {
		return 0, errors.Errorf("malformed token subject %q", subject)
	}

	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "non-numeric user id in token subject %q", subject)
	}

	return id, nil
}
