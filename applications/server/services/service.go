package services

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/donmikel/mediarelay/applications/server"
	"github.com/donmikel/mediarelay/applications/server/domain"
	"github.com/donmikel/mediarelay/applications/server/interfaces"
)

type service struct {
	relay  interfaces.Relay
	policy domain.ValidationPolicy
	logger log.Logger
}

func NewService(relay interfaces.Relay, policy domain.ValidationPolicy, logger log.Logger) server.UploadService {
	return &service{
		relay:  relay,
		policy: policy,
		logger: logger,
	}
}

func (s *service) Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	if err := s.validate(req); err != nil {
		return domain.UploadResult{}, err
	}

	res, err := s.relay.UploadFile(ctx, req)
	if err != nil {
		return domain.UploadResult{}, err
	}

	level.Info(s.logger).Log("msg", "file relayed",
		"filename", res.Filename,
		"size", humanize.Bytes(uint64(res.Size)),
		"mime_type", res.MimeType,
	)

	return res, nil
}

func (s *service) FileInfo(req domain.UploadRequest) (domain.FileInfo, error) {
	if missing(req) {
		return domain.FileInfo{}, domain.ErrNoFile()
	}

	return domain.FileInfo{
		Name:      req.Name,
		Size:      req.Size,
		MimeType:  req.MimeType,
		Extension: req.Extension(),
	}, nil
}

// validate is a pure accept/reject decision; checks run in a fixed order and
// no outbound resource is touched before it passes.
func (s *service) validate(req domain.UploadRequest) error {
	if missing(req) {
		return domain.ErrNoFile()
	}

	if !s.policy.Allowed(req.MimeType) {
		return domain.ErrUnsupportedType(req.MimeType, s.policy.AllowedMimeTypes)
	}

	// The ingestion layer already caps the body size; this re-check keeps the
	// service safe behind a looser front.
	if req.Size > s.policy.MaxSizeBytes {
		return domain.ErrTooLarge(req.Size, s.policy.MaxSizeBytes)
	}

	return nil
}

func missing(req domain.UploadRequest) bool {
	return req.Name == "" && len(req.Content) == 0
}
