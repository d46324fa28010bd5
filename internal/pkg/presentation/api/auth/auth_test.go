package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const testPolicy string = `
package cribmonitoring.authz

default allow := false

allow := response if {
	input.token != ""
	input.token != "revoked"
	response := {
		"caller_id": input.token,
	}
}
`

func testSetup(t *testing.T) (*is.I, func(http.Handler) http.Handler) {
	is := is.New(t)

	middleware, err := NewAuthenticator(context.Background(), strings.NewReader(testPolicy))
	is.NoErr(err)

	return is, middleware
}

func TestRequestWithoutTokenIsRejected(t *testing.T) {
	is, middleware := testSetup(t)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/sensor-data", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusUnauthorized)
}

func TestDeniedTokenIsRejected(t *testing.T) {
	is, middleware := testSetup(t)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/sensor-data", nil)
	req.Header.Add("Authorization", "Bearer revoked")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusUnauthorized)
}

func TestAllowedTokenStoresCallerInContext(t *testing.T) {
	is, middleware := testSetup(t)

	var callerID string
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerID = GetCallerFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/sensor-data", nil)
	req.Header.Add("Authorization", "Bearer nurse-1")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusNoContent)
	is.Equal(callerID, "nurse-1")
}

func TestCallerIsEmptyOutsideAuthenticatedRequests(t *testing.T) {
	is := is.New(t)
	is.Equal(GetCallerFromContext(context.Background()), "")
}
