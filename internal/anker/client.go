package anker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"anchormake/internal/crypto"
	"anchormake/internal/domain"
)

// Config carries the credentials and wiring for a Client.
type Config struct {
	Email    string
	Password string
	Region   string // two-letter region code, sent as "ab"

	BaseURL string             // optional; defaults to DefaultBaseURL
	HTTP    *http.Client       // optional; defaults to http.DefaultClient
	Log     *zap.SugaredLogger // optional; defaults to a nop logger
}

// Client talks to the AnkerMake account service.
//
// A Client is not safe for concurrent use: Login writes the session in
// place. Use one Client per concurrent session or serialize access
// externally.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
	session domain.Session
}

// New returns an unauthenticated Client. Call Login before any
// authenticated operation.
func New(cfg Config) *Client {
	c := &Client{
		cfg:     cfg,
		baseURL: cfg.BaseURL,
		http:    cfg.HTTP,
		log:     cfg.Log,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.log == nil {
		c.log = zap.NewNop().Sugar()
	}
	return c
}

// NewFromLogin returns a Client whose session is restored verbatim from the
// data blob of an earlier successful login, skipping the handshake for as
// long as the token is valid. Token expiry is the caller's to check.
func NewFromLogin(cfg Config, data domain.LoginData) *Client {
	c := New(cfg)
	c.session = data.Session()
	return c
}

// Session returns the current session state. The zero Session means no
// successful login has happened yet.
func (c *Client) Session() domain.Session { return c.session }

// Login authenticates with the account service.
//
// Login mutates the Client: when the response code is SUCCESS the whole
// session is replaced in a single assignment. Any other outcome leaves it
// untouched. captchaID and answer are empty on a first attempt and carry the
// challenge response after a CAPTCHA_REQUIRED result.
func (c *Client) Login(ctx context.Context, captchaID, answer string) domain.ApiResult {
	res, session, err := c.doLogin(ctx, captchaID, answer)
	if err != nil {
		c.logFailure("login", err)
		return domain.ApiResult{}
	}
	if session != nil {
		c.session = *session
	}
	return res
}

func (c *Client) doLogin(ctx context.Context, captchaID, answer string) (domain.ApiResult, *domain.Session, error) {
	encrypted, clientPub, err := crypto.EncryptPassword(c.cfg.Password, ServerPublicKey)
	if err != nil {
		return domain.ApiResult{}, nil, &requestError{kind: failCrypto, op: "login", err: err}
	}
	_, offset := localZone()
	body := loginRequest{
		Ab:               c.cfg.Region,
		Answer:           answer,
		CaptchaID:        captchaID,
		ClientSecretInfo: clientSecretInfo{PublicKey: clientPub},
		Email:            c.cfg.Email,
		Password:         encrypted,
		TimeZone:         offset,
	}
	resp, err := c.post(ctx, "login", loginPath, body, false)
	if err != nil {
		return domain.ApiResult{}, nil, err
	}

	res := domain.ApiResult{
		Success: resp.Code == domain.Success,
		Data:    resp.Data,
		Code:    &resp.Code,
		Msg:     resp.Msg,
	}
	if resp.Code != domain.Success {
		return res, nil, nil
	}
	var data domain.LoginData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return domain.ApiResult{}, nil, &requestError{
			kind: failDecode, op: "login", err: fmt.Errorf("login data: %w", err),
		}
	}
	session := data.Session()
	if !session.Valid() {
		return domain.ApiResult{}, nil, &requestError{
			kind: failDecode, op: "login", err: errors.New("login data missing auth_token"),
		}
	}
	return res, &session, nil
}

// DeviceList queries the FDM printers registered to the account. It needs a
// session; without one the service answers with a non-zero code.
func (c *Client) DeviceList(ctx context.Context) domain.ApiResult {
	_, offset := localZone()
	body := deviceListRequest{Num: 100, TimeZone: offset}
	resp, err := c.post(ctx, "device list", deviceListPath, body, true)
	if err != nil {
		c.logFailure("device list", err)
		return domain.ApiResult{}
	}
	return domain.ApiResult{
		Success: resp.Code == domain.Success,
		Data:    resp.Data,
		Code:    &resp.Code,
		Msg:     resp.Msg,
	}
}

// post sends a JSON body and decodes the {code, msg, data} envelope. A body
// missing any of the three keys counts as malformed.
func (c *Client) post(ctx context.Context, op, path string, body any, withAuth bool) (*apiResponse, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return nil, &requestError{kind: failDecode, op: op, err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, buf)
	if err != nil {
		return nil, &requestError{kind: failTransport, op: op, err: err}
	}
	c.applyHeaders(req.Header, withAuth)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &requestError{kind: failTransport, op: op, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &requestError{kind: failStatus, op: op, status: resp.StatusCode, body: string(raw)}
	}
	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, &requestError{kind: failDecode, op: op, err: err}
	}
	if wire.Code == nil || wire.Msg == nil || wire.Data == nil {
		return nil, &requestError{kind: failDecode, op: op, err: errors.New("response missing code, msg, or data")}
	}
	return &apiResponse{Code: *wire.Code, Msg: *wire.Msg, Data: wire.Data}, nil
}

// logFailure records the classified cause; the caller still gets the
// canonical failure result.
func (c *Client) logFailure(op string, err error) {
	var re *requestError
	if errors.As(err, &re) && re.kind == failStatus {
		c.log.Errorw(op+" failed", "kind", re.kind.String(), "status", re.status, "body", re.body)
		return
	}
	kind := "unknown"
	if errors.As(err, &re) {
		kind = re.kind.String()
	}
	c.log.Errorw(op+" failed", "kind", kind, "error", err)
}

// Compile-time assertion that Client implements domain.AccountClient.
var _ domain.AccountClient = (*Client)(nil)
