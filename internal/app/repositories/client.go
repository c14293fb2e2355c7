package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/auth"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
)

const (
	adminPrefix = "/api/admin"
	loginPath   = "/api/auth/login"
)

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	Token() string
}

// ClientConfig configures the backend client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the backend of record.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

// NewClient creates a client. When tokens holds a token it is attached to every
// request; an empty token is sent without a header and the backend decides.
func NewClient(cfg ClientConfig, tokens TokenSource, logger zerolog.Logger) *Client {
	lgr := logger.With().Str("component", "backend").Logger()

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if tokens == nil {
				return nil
			}
			if tok := tokens.Token(); tok != "" {
				r.SetHeader("Authorization", auth.BearerHeader(tok))
			}
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			lgr.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("latency", resp.Time()).
				Msg("Backend call")
			return nil
		})

	return &Client{http: httpClient, logger: lgr}
}

// multipartForm is a multipart submission: one JSON part describing the record
// plus optional files and flag fields.
type multipartForm struct {
	part string
	body interface{}
	// typedPart sends the JSON as an application/json file part instead of a
	// plain form field.
	typedPart bool
	files     map[string]*filestorage.Upload
	flags     map[string]bool
}

func (c *Client) do(ctx context.Context, method, path string, prepare func(*resty.Request) error, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if prepare != nil {
		if err := prepare(req); err != nil {
			return err
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", apperrors.ErrNetwork, method, path, err)
	}
	if resp.IsError() {
		return decodeError(resp)
	}

	if out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("%w: decode %s %s: %v", apperrors.ErrBackend, method, path, err)
		}
	}
	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out interface{}) error {
	return c.do(ctx, method, path, func(r *resty.Request) error {
		if body != nil {
			r.SetHeader("Content-Type", "application/json").SetBody(body)
		}
		return nil
	}, out)
}

func (c *Client) sendMultipart(ctx context.Context, method, path string, form multipartForm, out interface{}) error {
	return c.do(ctx, method, path, func(r *resty.Request) error {
		payload, err := json.Marshal(form.body)
		if err != nil {
			return fmt.Errorf("encode %s part: %w", form.part, err)
		}

		if form.typedPart {
			r.SetMultipartField(form.part, "blob", "application/json", strings.NewReader(string(payload)))
		} else {
			r.SetMultipartFormData(map[string]string{form.part: string(payload)})
		}

		for name, up := range form.files {
			if up != nil {
				r.SetMultipartField(name, up.Filename, up.ContentType, up.Reader())
			}
		}
		for name, set := range form.flags {
			if set {
				r.SetMultipartFormData(map[string]string{name: "true"})
			}
		}
		return nil
	}, out)
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

func decodeError(resp *resty.Response) error {
	backendErr := &apperrors.BackendError{Status: resp.StatusCode()}

	body := strings.TrimSpace(string(resp.Body()))
	var eb errorBody
	switch {
	case body == "":
	case json.Unmarshal(resp.Body(), &eb) == nil:
		backendErr.Message = firstNonEmpty(eb.Message, eb.Detail, eb.Error)
	case len(body) <= 200 && !strings.HasPrefix(body, "<"):
		backendErr.Message = body
	}

	if backendErr.Message == "" && resp.StatusCode() == http.StatusUnauthorized {
		backendErr.Message = "Session expired, please log in again"
	}
	return backendErr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func itemPath(collection string, id int64, suffix ...string) string {
	p := adminPrefix + "/" + collection + "/" + strconv.FormatInt(id, 10)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

// resource binds the plain list/get/delete calls of one collection.
type resource[T any] struct {
	client *Client
	name   string
}

func (r resource[T]) path() string { return adminPrefix + "/" + r.name }

func (r resource[T]) list(ctx context.Context, query map[string]string) ([]T, error) {
	var out []T
	err := r.client.do(ctx, http.MethodGet, r.path(), func(req *resty.Request) error {
		req.SetQueryParams(query)
		return nil
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r resource[T]) get(ctx context.Context, id int64) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodGet, itemPath(r.name, id), nil, &out)
	return out, err
}

func (r resource[T]) delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, itemPath(r.name, id), nil, nil)
}

func (r resource[T]) createJSON(ctx context.Context, body interface{}) (T, error) {
	var out T
	err := r.client.sendJSON(ctx, http.MethodPost, r.path(), body, &out)
	return out, err
}

func (r resource[T]) updateJSON(ctx context.Context, id int64, body interface{}) (T, error) {
	var out T
	err := r.client.sendJSON(ctx, http.MethodPut, itemPath(r.name, id), body, &out)
	return out, err
}

func (r resource[T]) createMultipart(ctx context.Context, form multipartForm) (T, error) {
	var out T
	err := r.client.sendMultipart(ctx, http.MethodPost, r.path(), form, &out)
	return out, err
}

func (r resource[T]) updateMultipart(ctx context.Context, id int64, form multipartForm) (T, error) {
	var out T
	err := r.client.sendMultipart(ctx, http.MethodPut, itemPath(r.name, id), form, &out)
	return out, err
}
