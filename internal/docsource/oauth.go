package docsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"

	"github.com/lmartens/dayflow/internal/config"
)

// localCallbackPort is the port the transient callback server listens
// on during the installed-app authorization flow. The OAuth client in
// Google Cloud Console must list this redirect URI.
const localCallbackPort = "8739"

const authTimeout = 5 * time.Minute

// NewHTTPClient builds an authenticated HTTP client for the docs API
// according to the configured auth method. The oauth flow caches its
// token at cfg.TokenPath and refreshes it transparently; a missing
// token triggers the interactive browser flow.
func NewHTTPClient(ctx context.Context, cfg config.GoogleConfig) (*http.Client, error) {
	switch cfg.AuthMethod {
	case "service_account":
		return serviceAccountClient(ctx, cfg)
	default:
		return oauthClient(ctx, cfg)
	}
}

func serviceAccountClient(ctx context.Context, cfg config.GoogleConfig) (*http.Client, error) {
	key, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading service account key %s: %w", cfg.CredentialsPath, err)
	}
	jwtConf, err := google.JWTConfigFromJSON(key, docs.DocumentsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account key: %w", err)
	}
	return jwtConf.Client(ctx), nil
}

func oauthClient(ctx context.Context, cfg config.GoogleConfig) (*http.Client, error) {
	secrets, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading client secrets %s: %w", cfg.CredentialsPath, err)
	}
	conf, err := google.ConfigFromJSON(secrets, docs.DocumentsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing client secrets: %w", err)
	}
	conf.RedirectURL = fmt.Sprintf("http://localhost:%s/oauth2callback", localCallbackPort)

	tok, err := tokenFromFile(cfg.TokenPath)
	if err != nil {
		tok, err = tokenFromWeb(ctx, conf)
		if err != nil {
			return nil, fmt.Errorf("authorizing with Google: %w", err)
		}
		if err := saveToken(cfg.TokenPath, tok); err != nil {
			return nil, err
		}
	}
	return conf.Client(ctx, tok), nil
}

// tokenFromWeb runs the installed-app flow: a transient local server
// captures the redirect while the user approves access in a browser.
func tokenFromWeb(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	listener, err := net.Listen("tcp", ":"+localCallbackPort)
	if err != nil {
		return nil, fmt.Errorf("starting callback listener on port %s: %w", localCallbackPort, err)
	}
	defer listener.Close()

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "authorization code missing", http.StatusBadRequest)
				errCh <- fmt.Errorf("authorization code missing from redirect")
				return
			}
			fmt.Fprint(w, "Authorization complete. You can close this window.")
			codeCh <- code
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	defer server.Shutdown(context.Background())

	authURL := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Fprintf(os.Stderr, "Open this URL in your browser to authorize dayflow:\n\n  %s\n\nWaiting for authorization...\n", authURL)

	select {
	case code := <-codeCh:
		exchangeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		return conf.Exchange(exchangeCtx, code)
	case err := <-errCh:
		return nil, err
	case <-time.After(authTimeout):
		return nil, fmt.Errorf("authorization timed out after %v", authTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("decoding token %s: %w", path, err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("caching token %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	return nil
}
