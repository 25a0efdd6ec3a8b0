package kifuapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/park285/kifu-viewer/internal/domain"
	"github.com/park285/kifu-viewer/pkg/kifudto"
	"github.com/valyala/fasthttp"
)

const (
	pathStartGame  = "/api/start_game"
	pathBoardState = "/api/board_state"
)

var ErrMissingGameData = errors.New("kifu api: success without gameData")

// HeaderProvider allows injecting per-request headers
type HeaderProvider func() map[string]string

// StatusError is a non-2xx reply whose body is not a service envelope.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("kifu api error: status=%d body=%s", e.Status, e.Body)
}

// Client talks to the game generation and board rendering service. It never
// retries; every call maps to exactly one HTTP request.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	headers HeaderProvider

	defaultTimeout time.Duration
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.defaultTimeout = d
		}
	}
}

func WithHeaderProvider(h HeaderProvider) Option {
	return func(c *Client) { c.headers = h }
}

// WithDial replaces the network dialer (in-memory listeners in tests).
func WithDial(d fasthttp.DialFunc) Option {
	return func(c *Client) { c.http.Dial = d }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &fasthttp.Client{ReadTimeout: 60 * time.Second, WriteTimeout: 10 * time.Second, MaxConnsPerHost: 8},
		defaultTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartGame asks the service to generate a game of at most maxMoves moves.
func (c *Client) StartGame(ctx context.Context, maxMoves int) (*domain.GameRecord, error) {
	var resp kifudto.StartGameResponse
	if err := c.doJSON(ctx, fasthttp.MethodPost, pathStartGame, kifudto.StartGameRequest{MaxMoves: maxMoves}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, kifudto.DomainError{Code: kifudto.CodeStartGame, Message: strings.TrimSpace(resp.Error)}
	}
	if resp.GameData == nil {
		return nil, ErrMissingGameData
	}
	return toDomainRecord(resp.GameData), nil
}

// FetchBoardState returns the rendering of gameID after moveIndex moves.
func (c *Client) FetchBoardState(ctx context.Context, gameID string, moveIndex int) (*domain.BoardState, error) {
	path := pathBoardState + "/" + url.PathEscape(gameID) + "/" + strconv.Itoa(moveIndex)
	var resp kifudto.BoardStateResponse
	if err := c.doJSON(ctx, fasthttp.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, kifudto.DomainError{Code: kifudto.CodeBoardState, Message: strings.TrimSpace(resp.Error)}
	}
	return toDomainBoard(gameID, moveIndex, &resp), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.Set("Accept", "application/json")

	if c.headers != nil {
		for k, v := range c.headers() {
			if strings.TrimSpace(k) != "" && strings.TrimSpace(v) != "" {
				req.Header.Set(k, v)
			}
		}
	}

	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	if err := c.http.DoDeadline(req, resp, c.computeDeadline(ctx)); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	body := resp.Body()
	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		// the service reports {success:false,error} with error statuses too
		if out != nil && hasFailureEnvelope(body) && json.Unmarshal(body, out) == nil {
			return nil
		}
		return &StatusError{Status: status, Body: truncate(string(body), 512)}
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// hasFailureEnvelope reports whether body is {success:false,...}. An error
// status claiming success is not trusted.
func hasFailureEnvelope(body []byte) bool {
	var env struct {
		Success *bool `json:"success"`
	}
	return json.Unmarshal(body, &env) == nil && env.Success != nil && !*env.Success
}

func (c *Client) computeDeadline(ctx context.Context) time.Time {
	clientDL := time.Now().Add(c.defaultTimeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(clientDL) {
		return dl
	}
	return clientDL
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
