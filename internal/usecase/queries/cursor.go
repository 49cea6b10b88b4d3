package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"leather-sandals-store/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

const (
	DefaultListLimit = 20
	MaxListLimit     = 100

	cursorPrefix = "o1:"
)

// EncodeAfterCursor builds an opaque keyset token for the row (createdAt, id).
// Microseconds match Postgres timestamp precision.
func EncodeAfterCursor(createdAt time.Time, id uuid.UUID) string {
	raw := cursorPrefix + strconv.FormatInt(createdAt.UnixMicro(), 10) + "." + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(cursor, "="))
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "decode cursor"), ErrInvalidCursor)
	}

	payload, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok {
		return time.Time{}, uuid.Nil, errs.Mark(errs.New("unknown cursor version"), ErrInvalidCursor)
	}

	micros, rawID, ok := strings.Cut(payload, ".")
	if !ok {
		return time.Time{}, uuid.Nil, errs.Mark(errs.New("cursor missing id"), ErrInvalidCursor)
	}

	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor timestamp"), ErrInvalidCursor)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor id"), ErrInvalidCursor)
	}

	return time.UnixMicro(ts).UTC(), id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
