package instagram

import "github.com/pkg/errors"

// The two load failure kinds callers branch on. Anything else that comes out
// of a load is an unexpected error (permissions, disk).
var (
	ErrFileNotFound  = errors.New("file not found")
	ErrMalformedJSON = errors.New("malformed JSON")
)

func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrFileNotFound
}

func IsMalformed(err error) bool {
	return errors.Cause(err) == ErrMalformedJSON
}
