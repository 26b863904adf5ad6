package site

import (
	"bytes"
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/kiosque/kiosque"
	"golang.org/x/oauth2"
)

// FormBuilder assembles a login form, typically by scraping hidden fields
// (CSRF tokens, form build ids) from the login page. An empty action means
// "POST to the handler's login URL"; an empty form means the site needs no
// payload and the login is a no-op.
type FormBuilder func(ctx context.Context, b *Base) (action string, form url.Values, err error)

// FormLogin returns a strategy that GETs the site's base URL (to pick up
// session cookies), builds the login form, and POSTs it to the login
// endpoint with Origin/Referer set to the base URL. Any non-error response
// counts as success.
func FormLogin(build FormBuilder) LoginFunc {
	return func(ctx context.Context, b *Base) error {
		if _, err := b.Client().Get(ctx, b.BaseURL()); err != nil {
			return err
		}
		action, form, err := build(ctx, b)
		if err != nil {
			return err
		}
		if len(form) == 0 {
			return nil
		}
		if action == "" {
			action = b.LoginURL()
		}
		_, err = b.Client().PostForm(ctx, action, form, map[string]string{
			"Origin":  b.BaseURL(),
			"Referer": b.BaseURL(),
		})
		if err != nil {
			return kiosque.Errorf(kiosque.EAUTH, "login POST to %s failed: %v", action, kiosque.ErrorMessage(err))
		}
		return nil
	}
}

// StaticFormLogin is a FormLogin whose payload needs no scraping.
func StaticFormLogin(build func(creds map[string]string) url.Values) LoginFunc {
	return FormLogin(func(_ context.Context, b *Base) (string, url.Values, error) {
		return "", build(b.Credentials()), nil
	})
}

// CookieLogin returns a strategy that injects a pre-obtained session cookie
// from configuration into the client's jar, with no network round trip.
// Used for sites whose anti-bot protection blocks automated logins.
func CookieLogin(credKey, cookieName string) LoginFunc {
	return func(ctx context.Context, b *Base) error {
		value := b.Credentials()[credKey]
		if value == "" {
			return kiosque.Errorf(kiosque.EAUTH,
				"%s requires %q in its configuration section (copy the %s cookie from a logged-in browser)",
				b.Name(), credKey, cookieName)
		}
		return b.Client().SetCookie(b.BaseURL(), cookieName, value)
	}
}

// PKCEScraper extracts the credential-POST target from the identity
// provider's login page: the action URL and any server-issued fields
// (state, session code) that must accompany the credentials.
type PKCEScraper func(body []byte, finalURL string) (action string, form url.Values, err error)

// PKCEConfig declares an OAuth2 Authorization Code + PKCE login flow.
type PKCEConfig struct {
	// AuthURL is the provider's authorize endpoint.
	AuthURL string

	// ClientID and RedirectURI identify the site's OAuth2 client.
	ClientID    string
	RedirectURI string

	// Scope is the requested scope string (e.g. "openid email profile").
	Scope string

	// ResponseMode is added as response_mode when non-empty.
	ResponseMode string

	// Scrape extracts the login-form action from the provider's page.
	// Defaults to ScrapeStateForm.
	Scrape PKCEScraper
}

// ScrapeStateForm handles providers whose login page is a plain HTML form
// carrying a server-issued state input (Auth0 Universal Login). The form
// posts back to the page's own URL.
func ScrapeStateForm(body []byte, finalURL string) (string, url.Values, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", nil, kiosque.Errorf(kiosque.EAUTH, "parse login form: %v", err)
	}
	form := doc.Find("form").First()
	if form.Length() == 0 {
		return "", nil, kiosque.Errorf(kiosque.EAUTH, "no login form in provider response")
	}
	state, ok := form.Find(`input[name="state"]`).First().Attr("value")
	if !ok {
		return "", nil, kiosque.Errorf(kiosque.EAUTH, "no state input in login form")
	}
	return finalURL, url.Values{"state": {state}}, nil
}

// PKCELogin returns an OAuth2 Authorization Code + PKCE strategy: generate
// a code verifier, derive its S256 challenge, open the authorize endpoint,
// scrape the provider's login form, POST the credentials, and treat a
// redirect back to the site's own domain (or an authorization code in the
// final URL) as success. Remaining on the provider's domain is a failure.
func PKCELogin(cfg PKCEConfig) LoginFunc {
	scrape := cfg.Scrape
	if scrape == nil {
		scrape = ScrapeStateForm
	}
	return func(ctx context.Context, b *Base) error {
		verifier := oauth2.GenerateVerifier()
		challenge := oauth2.S256ChallengeFromVerifier(verifier)

		q := url.Values{
			"client_id":             {cfg.ClientID},
			"redirect_uri":          {cfg.RedirectURI},
			"response_type":         {"code"},
			"scope":                 {cfg.Scope},
			"code_challenge":        {challenge},
			"code_challenge_method": {"S256"},
		}
		if cfg.ResponseMode != "" {
			q.Set("response_mode", cfg.ResponseMode)
		}

		resp, err := b.Client().Get(ctx, cfg.AuthURL+"?"+q.Encode())
		if err != nil {
			return kiosque.Errorf(kiosque.EAUTH, "authorize request failed: %v", kiosque.ErrorMessage(err))
		}

		action, form, err := scrape(resp.Body, resp.FinalURL)
		if err != nil {
			return err
		}
		creds := b.Credentials()
		form.Set("username", creds["username"])
		form.Set("password", creds["password"])

		login, err := b.Client().PostForm(ctx, action, form, nil)
		if err != nil {
			return kiosque.Errorf(kiosque.EAUTH, "credential POST failed: %v", kiosque.ErrorMessage(err))
		}

		if loginSucceeded(login.FinalURL, b.BaseURL()) {
			return nil
		}
		return kiosque.Errorf(kiosque.EAUTH,
			"login to %s did not redirect back to the site (ended at %s); check credentials",
			b.Name(), login.FinalURL)
	}
}

// loginSucceeded reports whether the post-login URL indicates success: an
// authorization code in the query, or a return to the site's own host.
func loginSucceeded(finalURL, baseURL string) bool {
	final, err := url.Parse(finalURL)
	if err != nil {
		return false
	}
	if final.Query().Get("code") != "" {
		return true
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	return final.Host == base.Host
}
