package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// DocumentID is the id given to a locally authored record so that it looks
// like a CMS documentId and stays stable across builds.
func DocumentID(resource, key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return ""
	}
	return UUID("site:" + strings.TrimSpace(resource) + ":" + key).String()
}

// NumericID folds a DocumentID into a small positive integer for fields the
// CMS types as numbers.
func NumericID(resource, key string) int {
	uid := UUID("site:" + strings.TrimSpace(resource) + ":" + strings.ToLower(strings.TrimSpace(key)))
	if uid == uuid.Nil {
		return 0
	}
	n := int(uid[0])<<16 | int(uid[1])<<8 | int(uid[2])
	return n + 1
}
