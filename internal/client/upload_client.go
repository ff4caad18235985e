package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"urbanscribe/internal/models/request_models"
	"urbanscribe/internal/models/response_models"
	"urbanscribe/pkg/utils"
)

type UploadClient struct {
	baseURL string
	http    *http.Client
}

func NewUploadClient(baseURL string, timeout time.Duration) *UploadClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &UploadClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadImage sends the file as the multipart form field "image". The part
// carries the file's declared content type; the server validates type and
// size, so no pre-validation happens here.
func (c *UploadClient) UploadImage(ctx context.Context, file request_models.ImageFile) (*response_models.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`,
		quoteEscaper.Replace(file.Filename)))
	header.Set("Content-Type", file.ContentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-image", &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", utils.ErrUploadFailed, errorMessage(resp))
	}

	var result response_models.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", utils.ErrUploadFailed, err)
	}
	return &result, nil
}
