package interfaces

import (
	"context"

	"github.com/donmikel/mediarelay/applications/server/domain"
)

// Relay forwards an already-validated upload to the external CDN.
// One invocation makes exactly one outbound call; nothing is retried.
type Relay interface {
	UploadFile(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
}
