// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// issueToken performs a GET and returns the CSRF cookie it was given.
func issueToken(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/closet", nil))
	for _, c := range rr.Result().Cookies() {
		if c.Name == CSRFCookieName {
			return c
		}
	}
	t.Fatal("CSRF cookie not set")
	return nil
}

func TestNewCSRFSecureFlag(t *testing.T) {
	for _, secure := range []bool{true, false} {
		h := NewCSRF(secure)(okHandler())
		c := issueToken(t, h)
		if c.Secure != secure {
			t.Errorf("cookie Secure: got %v, want %v", c.Secure, secure)
		}
		if !c.HttpOnly {
			t.Error("cookie should be HttpOnly")
		}
		if c.SameSite != http.SameSiteStrictMode {
			t.Errorf("cookie SameSite: got %v, want StrictMode", c.SameSite)
		}
		if len(c.Value) != 2*csrfTokenLength {
			t.Errorf("token length: got %d, want %d", len(c.Value), 2*csrfTokenLength)
		}
	}
}

func TestCSRFValidation(t *testing.T) {
	h := NewCSRF(false)(okHandler())
	cookie := issueToken(t, h)

	tests := []struct {
		name   string
		method string
		header string
		form   string
		want   int
	}{
		{"post without token", http.MethodPost, "", "", http.StatusForbidden},
		{"post with wrong token", http.MethodPost, "nope", "", http.StatusForbidden},
		{"post with header token", http.MethodPost, cookie.Value, "", http.StatusOK},
		{"post with form token", http.MethodPost, "", cookie.Value, http.StatusOK},
		{"put without token", http.MethodPut, "", "", http.StatusForbidden},
		{"delete without token", http.MethodDelete, "", "", http.StatusForbidden},
		{"delete with header token", http.MethodDelete, cookie.Value, "", http.StatusOK},
		{"patch without token", http.MethodPatch, "", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLogs(t)
			var body *strings.Reader
			if tt.form != "" {
				body = strings.NewReader(url.Values{CSRFFormField: {tt.form}}.Encode())
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, "/closet", body)
			if tt.form != "" {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			if tt.header != "" {
				req.Header.Set(CSRFHeaderName, tt.header)
			}
			req.AddCookie(cookie)

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Errorf("got %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestCSRFRejectsPostWithoutCookie(t *testing.T) {
	captureLogs(t)
	h := NewCSRF(false)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/outfits", nil)
	req.Header.Set(CSRFHeaderName, "forged")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("got %d, want 403", rr.Code)
	}
}

// TestCSRFTokenFromCtx verifies that the CSRF token is available in the
// request context after the middleware runs.
func TestCSRFTokenFromCtx(t *testing.T) {
	var ctxToken string
	h := NewCSRF(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxToken = CSRFTokenFromCtx(r.Context())
	}))

	t.Run("first request gets the new token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		var cookieToken string
		for _, c := range rr.Result().Cookies() {
			if c.Name == CSRFCookieName {
				cookieToken = c.Value
			}
		}
		if ctxToken == "" || ctxToken != cookieToken {
			t.Errorf("context token %q, cookie token %q", ctxToken, cookieToken)
		}
	})

	t.Run("existing cookie is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/calendar", nil)
		req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "existing"})
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if ctxToken != "existing" {
			t.Errorf("context token %q, want existing", ctxToken)
		}
		if len(rr.Result().Cookies()) != 0 {
			t.Error("no new cookie should be issued")
		}
	})

	t.Run("empty without middleware", func(t *testing.T) {
		if got := CSRFTokenFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

func TestCSRFSafeMethodsPassThrough(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			NewCSRF(false)(okHandler()).ServeHTTP(rr, httptest.NewRequest(method, "/calendar.ics", nil))
			if rr.Code != http.StatusOK {
				t.Errorf("status: got %d, want 200", rr.Code)
			}
		})
	}
}
