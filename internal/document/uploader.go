package document

import "context"

// Uploader stores a blob and returns a public URL. The rest of the system
// treats that URL as opaque.
type Uploader interface {
	Upload(ctx context.Context, filename string, content []byte) (string, error)
}
