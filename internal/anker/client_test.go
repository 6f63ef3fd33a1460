package anker_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"anchormake/internal/anker"
	"anchormake/internal/crypto"
	"anchormake/internal/domain"
)

const loginSuccessBody = `{
	"code": 0,
	"msg": "ok",
	"data": {
		"user_id": "u-1",
		"auth_token": "tok-1",
		"token_expires_at": 1893456000,
		"nick_name": "maker",
		"invitation_code": "inv",
		"geo_key": "geo",
		"server_secret_info": {"public_key": "04ab"}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *anker.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return anker.New(anker.Config{
		Email:    "user@example.com",
		Password: "hunter2",
		Region:   "us",
		BaseURL:  srv.URL,
	})
}

func TestLogin_Success(t *testing.T) {
	var gotReq struct {
		Ab               string `json:"ab"`
		Answer           string `json:"answer"`
		CaptchaID        string `json:"captcha_id"`
		ClientSecretInfo struct {
			PublicKey string `json:"public_key"`
		} `json:"client_secret_info"`
		Email      string `json:"email"`
		LoginID    string `json:"login_id"`
		Password   string `json:"password"`
		VerifyCode string `json:"verify_code"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/passport/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Model_type") != "PC" || r.Header.Get("app_name") != "anker_make" {
			t.Error("missing standard headers")
		}
		if r.Header.Get("User-Agent") != "Mozilla/5.0" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		if r.Header.Get("timeoffset") == "" || r.Header.Get("x-auth-token") != "" {
			t.Error("login must carry timeoffset and no auth token")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(loginSuccessBody))
	})

	res := client.Login(context.Background(), "", "")
	if !res.Success {
		t.Fatalf("Login not successful: %+v", res)
	}
	if res.Code == nil || *res.Code != domain.Success {
		t.Fatalf("Code = %v, want SUCCESS", res.Code)
	}
	if res.Msg != "ok" || res.Data == nil {
		t.Fatalf("unexpected result %+v", res)
	}

	if gotReq.Email != "user@example.com" || gotReq.Ab != "us" {
		t.Errorf("request carried email %q ab %q", gotReq.Email, gotReq.Ab)
	}
	if gotReq.LoginID != "" || gotReq.VerifyCode != "" || gotReq.Answer != "" || gotReq.CaptchaID != "" {
		t.Error("reserved fields must be empty on a first attempt")
	}
	if gotReq.Password == "" {
		t.Error("password missing from request")
	}
	// The ephemeral key must be a parseable uncompressed P-256 point.
	if _, err := crypto.ParsePublicKey(gotReq.ClientSecretInfo.PublicKey); err != nil {
		t.Errorf("client public key: %v", err)
	}

	sess := client.Session()
	want := domain.Session{
		UserID:          "u-1",
		AuthToken:       "tok-1",
		TokenExpiresAt:  1893456000,
		NickName:        "maker",
		InvitationCode:  "inv",
		GeoKey:          "geo",
		ServerPublicKey: "04ab",
	}
	if sess != want {
		t.Fatalf("session = %+v, want %+v", sess, want)
	}
}

func TestLogin_FreshEphemeralPerAttempt(t *testing.T) {
	var passwords, pubkeys []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Password         string `json:"password"`
			ClientSecretInfo struct {
				PublicKey string `json:"public_key"`
			} `json:"client_secret_info"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		passwords = append(passwords, req.Password)
		pubkeys = append(pubkeys, req.ClientSecretInfo.PublicKey)
		w.Write([]byte(loginSuccessBody))
	})

	client.Login(context.Background(), "", "")
	client.Login(context.Background(), "", "")
	if len(passwords) != 2 {
		t.Fatalf("expected 2 login requests, got %d", len(passwords))
	}
	if passwords[0] == passwords[1] {
		t.Error("two logins sent identical ciphertexts")
	}
	if pubkeys[0] == pubkeys[1] {
		t.Error("two logins reused an ephemeral key")
	}
}

func TestLogin_InvalidLogin_DoesNotMutateSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 26006, "msg": "invalid credentials", "data": null}`))
	}))
	t.Cleanup(srv.Close)

	prior := domain.LoginData{
		UserID:           "u-0",
		AuthToken:        "tok-0",
		TokenExpiresAt:   100,
		NickName:         "old",
		InvitationCode:   "i",
		GeoKey:           "g",
		ServerSecretInfo: domain.ServerSecretInfo{PublicKey: "04cd"},
	}
	client := anker.NewFromLogin(anker.Config{
		Email: "user@example.com", Password: "wrong", Region: "us", BaseURL: srv.URL,
	}, prior)

	res := client.Login(context.Background(), "", "")
	if res.Success {
		t.Fatal("invalid login reported success")
	}
	if res.Code == nil || *res.Code != domain.InvalidLogin {
		t.Fatalf("Code = %v, want INVALID_LOGIN", res.Code)
	}
	if res.Msg != "invalid credentials" {
		t.Fatalf("Msg = %q", res.Msg)
	}
	if client.Session() != prior.Session() {
		t.Fatal("failed login mutated the session")
	}
}

func TestLogin_CaptchaRequiredCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 100032, "msg": "captcha required", "data": {"captcha_id": "cap-1"}}`))
	})
	res := client.Login(context.Background(), "", "")
	if res.Success {
		t.Fatal("captcha challenge reported success")
	}
	if res.Code == nil || *res.Code != domain.CaptchaRequired {
		t.Fatalf("Code = %v, want CAPTCHA_REQUIRED", res.Code)
	}
	if client.Session().Valid() {
		t.Fatal("captcha challenge populated the session")
	}
}

func TestLogin_Non200_CanonicalFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	})
	assertCanonicalFailure(t, client.Login(context.Background(), "", ""))
	if client.Session().Valid() {
		t.Fatal("failed login populated the session")
	}
}

func TestLogin_MalformedBody_CanonicalFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})
	assertCanonicalFailure(t, client.Login(context.Background(), "", ""))
}

func TestLogin_MissingKeys_CanonicalFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 0, "msg": "ok"}`))
	})
	assertCanonicalFailure(t, client.Login(context.Background(), "", ""))
	if client.Session().Valid() {
		t.Fatal("malformed success populated the session")
	}
}

func TestNewFromLogin_MatchesLiveLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(loginSuccessBody))
	})
	res := client.Login(context.Background(), "", "")
	if !res.Success {
		t.Fatalf("login failed: %+v", res)
	}

	// A caller persists res.Data and later rebuilds a client from it.
	var data domain.LoginData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("unmarshal login data: %v", err)
	}
	restored := anker.NewFromLogin(anker.Config{Email: "user@example.com", Region: "us"}, data)
	if restored.Session() != client.Session() {
		t.Fatalf("restored session %+v differs from live session %+v",
			restored.Session(), client.Session())
	}
}

func TestDeviceList_Success(t *testing.T) {
	prior := domain.LoginData{
		UserID: "u-1", AuthToken: "tok-1", TokenExpiresAt: 1893456000,
		NickName: "maker", InvitationCode: "inv", GeoKey: "geo",
		ServerSecretInfo: domain.ServerSecretInfo{PublicKey: "04ab"},
	}
	var gotReq struct {
		DeviceSN  string `json:"device_sn"`
		Num       int    `json:"num"`
		OrderBy   string `json:"orderby"`
		Page      int    `json:"page"`
		StationSN string `json:"station_sn"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/app/query_fdm_list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-auth-token") != "tok-1" {
			t.Errorf("x-auth-token = %q", r.Header.Get("x-auth-token"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"code": 0, "msg": "ok", "data": [{"device_sn": "sn-1", "name": "M5"}]}`))
	}))
	t.Cleanup(srv.Close)

	client := anker.NewFromLogin(anker.Config{BaseURL: srv.URL}, prior)
	res := client.DeviceList(context.Background())
	if !res.Success || res.Code == nil || *res.Code != domain.Success {
		t.Fatalf("unexpected result %+v", res)
	}
	if gotReq.Num != 100 || gotReq.Page != 0 {
		t.Errorf("paging = num %d page %d, want 100/0", gotReq.Num, gotReq.Page)
	}
	if gotReq.DeviceSN != "" || gotReq.OrderBy != "" || gotReq.StationSN != "" {
		t.Error("filters must be empty")
	}
	if client.Session() != prior.Session() {
		t.Fatal("device list mutated the session")
	}
}

func TestDeviceList_UnknownCodePreserved(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 99999, "msg": "who knows", "data": null}`))
	})
	res := client.DeviceList(context.Background())
	if res.Success {
		t.Fatal("non-zero code reported success")
	}
	if res.Code == nil || *res.Code != 99999 {
		t.Fatalf("Code = %v, want 99999", res.Code)
	}
	if res.Code.String() != "99999" {
		t.Fatalf("String() = %q", res.Code.String())
	}
}

func TestDeviceList_ConnectionError_CanonicalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close() // nothing listening anymore

	client := anker.New(anker.Config{BaseURL: base})
	assertCanonicalFailure(t, client.DeviceList(context.Background()))
}

func TestDeviceList_Non200_CanonicalFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})
	assertCanonicalFailure(t, client.DeviceList(context.Background()))
}

func assertCanonicalFailure(t *testing.T, res domain.ApiResult) {
	t.Helper()
	if res.Success {
		t.Fatal("expected failure result")
	}
	if res.Data != nil || res.Code != nil || res.Msg != "" {
		t.Fatalf("expected canonical failure, got %+v", res)
	}
}
