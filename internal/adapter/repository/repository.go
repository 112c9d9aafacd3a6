package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreDocIDLen matches auto-generated Firestore document IDs; path
// identifiers of this shape are tried as IDs before falling back to slugs.
const firestoreDocIDLen = 20

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

func looksLikeDocID(identifier string) bool {
	if len(identifier) != firestoreDocIDLen {
		return false
	}
	for _, r := range identifier {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
