package files

import (
	"context"
	"os"
)

// Store enumerates the immediate children of a directory. Implementations
// may return a partially read listing together with an error; callers
// decide how to surface the failure.
type Store interface {
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}
