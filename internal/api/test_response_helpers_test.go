package api

import (
	"encoding/json"
	"net/http"
	"testing"
)

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	if cookie := responseCookie(cookies, name); cookie != nil {
		return cookie.Value
	}
	return ""
}

func readAPIError(t *testing.T, body string) string {
	t.Helper()

	payload := map[string]string{}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}
