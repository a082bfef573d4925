package auth

import (
	"encoding/base64"
	"net/http"
)

const hsHeader = `{"alg":"HS256","typ":"JWT"}`

// rawToken assembles a compact token from literal JSON so tests control key
// order and duplicates. The signature segment is never checked.
func rawToken(header, payload string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(header)) + "." +
		enc.EncodeToString([]byte(payload)) + "." +
		enc.EncodeToString([]byte("signature"))
}

func bearer(payload string) Request {
	return requestWithHeader(BearerPrefix + rawToken(hsHeader, payload))
}

func requestWithHeader(value string) Request {
	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		r.Header.Set(HeaderAuthorization, value)
	}
	return HTTPRequest{r}
}
