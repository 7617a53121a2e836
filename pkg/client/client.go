package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio-app/internal/domain/artwork"
)

// Client talks to the artwork API. Public reads need no credential; admin
// calls attach the bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client for the given backend origin.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken swaps the bearer credential, e.g. after a login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// --- Public surface ---

// ListArtworks fetches the public artwork list.
func (c *Client) ListArtworks(ctx context.Context) (*artwork.ListResponse, error) {
	var list artwork.ListResponse
	if err := c.get(ctx, "/api/v1/artworks", &list); err != nil {
		return nil, fmt.Errorf("client.ListArtworks: %w", err)
	}
	return &list, nil
}

// GetArtwork fetches a single public artwork by id.
func (c *Client) GetArtwork(ctx context.Context, id string) (*artwork.Artwork, error) {
	var a artwork.Artwork
	if err := c.get(ctx, "/api/v1/artworks/"+url.PathEscape(id), &a); err != nil {
		return nil, fmt.Errorf("client.GetArtwork: %w", err)
	}
	return &a, nil
}

// ImageURL returns the binary image URL for an artwork file.
func (c *Client) ImageURL(id, filename string) string {
	return c.baseURL + "/api/v1/artworks/" + url.PathEscape(id) + "/images/" + url.PathEscape(filename)
}

// VideoURL returns the range-capable video URL for an artwork file.
func (c *Client) VideoURL(id, filename string) string {
	return c.baseURL + "/api/v1/artworks/" + url.PathEscape(id) + "/videos/" + url.PathEscape(filename)
}

// --- Admin surface ---

// AdminListArtworks fetches the admin artwork list.
func (c *Client) AdminListArtworks(ctx context.Context) (*artwork.ListResponse, error) {
	var list artwork.ListResponse
	if err := c.get(ctx, "/api/v1/admin/artworks", &list); err != nil {
		return nil, fmt.Errorf("client.AdminListArtworks: %w", err)
	}
	return &list, nil
}

// AdminGetArtwork fetches a single artwork through the authorized surface.
func (c *Client) AdminGetArtwork(ctx context.Context, id string) (*artwork.Artwork, error) {
	var a artwork.Artwork
	if err := c.get(ctx, "/api/v1/admin/artworks/"+url.PathEscape(id), &a); err != nil {
		return nil, fmt.Errorf("client.AdminGetArtwork: %w", err)
	}
	return &a, nil
}

// CreateArtwork creates a new record with a title only. A taken title
// surfaces as an HTTPError with status 409.
func (c *Client) CreateArtwork(ctx context.Context, title string) (*artwork.Artwork, error) {
	var created artwork.Artwork
	req := artwork.CreateRequest{Title: title}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/admin/artworks", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateArtwork: %w", err)
	}
	return &created, nil
}

// UpdateArtwork sends the full edit form and returns the server's updated
// record. A taken title surfaces as an HTTPError with status 409.
func (c *Client) UpdateArtwork(ctx context.Context, id string, form artwork.UpdateRequest) (*artwork.Artwork, error) {
	var updated artwork.Artwork
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/admin/artworks/"+url.PathEscape(id), form, &updated); err != nil {
		return nil, fmt.Errorf("client.UpdateArtwork: %w", err)
	}
	return &updated, nil
}

// CheckTitle reports whether the candidate title is still available,
// excluding the given artwork id when editing an existing record.
func (c *Client) CheckTitle(ctx context.Context, title, excludeID string) (bool, error) {
	params := url.Values{}
	params.Set("title", title)
	if excludeID != "" {
		params.Set("excludeId", excludeID)
	}

	var check artwork.TitleCheckResponse
	if err := c.get(ctx, "/api/v1/admin/artworks/check-title?"+params.Encode(), &check); err != nil {
		return false, fmt.Errorf("client.CheckTitle: %w", err)
	}
	return check.Available, nil
}

// UploadImage uploads one image file as a multipart request and returns the
// server's updated record.
func (c *Client) UploadImage(ctx context.Context, id, filename string, file io.Reader) (*artwork.Artwork, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("client.UploadImage: create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("client.UploadImage: read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("client.UploadImage: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/admin/artworks/"+url.PathEscape(id)+"/images", &buf)
	if err != nil {
		return nil, fmt.Errorf("client.UploadImage: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	var updated artwork.Artwork
	if err := c.send(req, &updated); err != nil {
		return nil, fmt.Errorf("client.UploadImage: %w", err)
	}
	return &updated, nil
}

// DeleteImage detaches an image from the record; with deleteFile it also
// removes the stored file. Returns the server's updated record.
func (c *Client) DeleteImage(ctx context.Context, id, filename string, deleteFile bool) (*artwork.Artwork, error) {
	path := "/api/v1/admin/artworks/" + url.PathEscape(id) + "/images/" + url.PathEscape(filename)
	if deleteFile {
		path += "?deleteFile=true"
	}

	var updated artwork.Artwork
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, &updated); err != nil {
		return nil, fmt.Errorf("client.DeleteImage: %w", err)
	}
	return &updated, nil
}

// --- plumbing ---

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
