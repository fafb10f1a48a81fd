package server

import (
	"context"

	"github.com/donmikel/mediarelay/applications/server/domain"
)

type UploadService interface {
	Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	FileInfo(req domain.UploadRequest) (domain.FileInfo, error)
}
