package httpx

import "net/http"

// WriteBearerChallenge sets the RFC 6750 WWW-Authenticate header for a
// rejected bearer credential. The body is left to the caller.
func WriteBearerChallenge(w http.ResponseWriter, realm string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="`+realm+`"`)
}
