package cdnhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/donmikel/mediarelay/applications/server/domain"
	"github.com/donmikel/mediarelay/applications/server/interfaces"
)

// urlFields is the lookup order for the public URL in the upstream reply.
var urlFields = []string{"url", "file", "link"}

type client struct {
	endpoint   string
	httpClient *http.Client
	logger     log.Logger
	now        func() time.Time
}

// New returns a Relay that posts uploads to the given CDN endpoint.
// The HTTP client carries no timeout; the upstream bounds the call.
func New(endpoint string, logger log.Logger) interfaces.Relay {
	return &client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		logger:     logger,
		now:        time.Now,
	}
}

func (c *client) UploadFile(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	filename := fmt.Sprintf("converted-%d%s", c.now().UnixMilli(), req.Extension())

	body, contentType, err := buildMultipartBody(filename, req)
	if err != nil {
		return domain.UploadResult{}, domain.Wrap(domain.KindInternal, "can't build upload body", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return domain.UploadResult{}, domain.Wrap(domain.KindInternal, "can't build upload request", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.UploadResult{}, domain.Wrap(domain.KindUpstream, "upload request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.UploadResult{}, domain.Wrap(domain.KindUpstream, "can't read upstream response", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		level.Error(c.logger).Log("msg", "upstream rejected upload",
			"status", resp.StatusCode,
			"body", excerpt(raw),
		)

		return domain.UploadResult{}, domain.E(domain.KindUpstream,
			fmt.Sprintf("upstream responded with status %d", resp.StatusCode))
	}

	url := extractURL(raw)
	if url == "" {
		level.Error(c.logger).Log("msg", "upstream response has no url",
			"body", excerpt(raw),
		)

		return domain.UploadResult{}, domain.ErrInvalidUpstreamResponse()
	}

	level.Info(c.logger).Log("msg", "file uploaded to cdn",
		"filename", filename,
		"size", humanize.Bytes(uint64(req.Size)),
		"url", url,
	)

	return domain.UploadResult{
		URL:       url,
		Filename:  filename,
		Size:      req.Size,
		MimeType:  req.MimeType,
		Extension: req.Extension(),
	}, nil
}

// buildMultipartBody produces a body with a single "file" part carrying the
// original bytes under the synthetic filename and the original MIME type.
func buildMultipartBody(filename string, req domain.UploadRequest) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", req.MimeType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err = part.Write(req.Content); err != nil {
		return nil, "", err
	}
	if err = w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

// extractURL applies the upstream contract: the payload lives either under a
// nested "result" object or at the top level, and the canonical URL is the
// first non-empty string among url, file and link.
func extractURL(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}

	fields := payload
	if nested, ok := payload["result"].(map[string]interface{}); ok {
		fields = nested
	}

	for _, key := range urlFields {
		if v, ok := fields[key].(string); ok && v != "" {
			return v
		}
	}

	return ""
}

func excerpt(raw []byte) string {
	const max = 256
	if len(raw) > max {
		raw = raw[:max]
	}

	return string(raw)
}
