package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/donmikel/mediarelay/applications/server"
	"github.com/donmikel/mediarelay/applications/server/domain"
)

// ingestOverhead leaves room for multipart framing on top of the file cap.
const ingestOverhead = 1 << 20

type uploadResponse struct {
	URL           string `json:"url"`
	Filename      string `json:"filename"`
	Size          int64  `json:"size"`
	SizeFormatted string `json:"sizeFormatted"`
	Format        string `json:"format"`
	Mimetype      string `json:"mimetype"`
}

type fileInfoResponse struct {
	Name          string `json:"name"`
	Size          int64  `json:"size"`
	SizeFormatted string `json:"sizeFormatted"`
	Mimetype      string `json:"mimetype"`
	Extension     string `json:"extension"`
}

func UploadHandler(svc server.UploadService, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := readUpload(w, r)
		if err != nil {
			level.Error(logger).Log("msg", "upload rejected at ingestion", "err", err)
			writeErr(w, err)
			return
		}

		res, err := svc.Upload(r.Context(), req)
		if err != nil {
			level.Error(logger).Log("msg", "upload failed", "err", err)
			writeErr(w, err)
			return
		}

		writeData(w, http.StatusOK, uploadResponse{
			URL:           res.URL,
			Filename:      res.Filename,
			Size:          res.Size,
			SizeFormatted: domain.FormatSize(res.Size),
			Format:        res.Extension,
			Mimetype:      res.MimeType,
		})
	}
}

func FileInfoHandler(svc server.UploadService, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := readUpload(w, r)
		if err != nil {
			level.Error(logger).Log("msg", "file-info rejected at ingestion", "err", err)
			writeErr(w, err)
			return
		}

		info, err := svc.FileInfo(req)
		if err != nil {
			level.Error(logger).Log("msg", "file-info failed", "err", err)
			writeErr(w, err)
			return
		}

		writeData(w, http.StatusOK, fileInfoResponse{
			Name:          info.Name,
			Size:          info.Size,
			SizeFormatted: domain.FormatSize(info.Size),
			Mimetype:      info.MimeType,
			Extension:     info.Extension,
		})
	}
}

// readUpload materializes the "file" part fully in memory. The body is capped
// so an oversized upload aborts before it is buffered whole; the resulting
// error carries the same message the validator would produce.
func readUpload(w http.ResponseWriter, r *http.Request) (domain.UploadRequest, error) {
	counted := &countingReader{ReadCloser: r.Body}
	r.Body = http.MaxBytesReader(w, counted, domain.MaxUploadBytes+ingestOverhead)

	mr, err := r.MultipartReader()
	if err != nil {
		return domain.UploadRequest{}, domain.ErrNoFile()
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.UploadRequest{}, ingestError(r, counted, err)
		}

		if part.FormName() != "file" {
			continue
		}

		content, err := io.ReadAll(part)
		if err != nil {
			return domain.UploadRequest{}, ingestError(r, counted, err)
		}

		return domain.UploadRequest{
			Content:  content,
			Name:     part.FileName(),
			MimeType: part.Header.Get("Content-Type"),
			Size:     int64(len(content)),
		}, nil
	}

	return domain.UploadRequest{}, domain.ErrNoFile()
}

func ingestError(r *http.Request, counted *countingReader, err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		// Chunked uploads carry no Content-Length; the bytes consumed before
		// the cap tripped are the best observed size available.
		observed := r.ContentLength
		if observed <= 0 {
			observed = counted.n
		}

		return domain.ErrTooLarge(observed, domain.MaxUploadBytes)
	}

	return domain.Wrap(domain.KindBadRequest, "can't read multipart body", err)
}

// countingReader tracks how many body bytes were consumed.
type countingReader struct {
	io.ReadCloser
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.ReadCloser.Read(p)
	c.n += int64(n)
	return n, err
}
