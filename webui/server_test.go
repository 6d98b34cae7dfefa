package webui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func testServer() *Server {
	return New(fstest.MapFS{
		"index.html":   {Data: []byte("<h1>cube</h1>")},
		"js/app.js":    {Data: []byte("go()")},
		"style.css":    {Data: []byte("body{}")},
		"cube.png":     {Data: []byte("png")},
		"firmware.bin": {Data: []byte{0, 1, 2}},
	})
}

func do(s *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func assertCORS(t *testing.T, rec *httptest.ResponseRecorder) {
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestGet(t *testing.T) {
	type eg struct {
		path string
		ct   string
		body string
	}

	examples := []eg{
		{"/", "text/html", "<h1>cube</h1>"},
		{"/index.html", "text/html", "<h1>cube</h1>"},
		{"/js/app.js", "application/javascript", "go()"},
		{"/style.css", "text/css", "body{}"},
		{"/cube.png", "image/png", "png"},
		{"/firmware.bin", "application/octet-stream", "\x00\x01\x02"},
	}

	s := testServer()
	for _, x := range examples {
		rec := do(s, http.MethodGet, x.path, "")
		assert.Equal(t, http.StatusOK, rec.Code, x.path)
		assert.Equal(t, x.ct, rec.Header().Get("Content-Type"), x.path)
		assert.Equal(t, x.body, rec.Body.String(), x.path)
		assertCORS(t, rec)
	}
}

func TestGetMissing(t *testing.T) {
	s := testServer()

	for _, p := range []string{"/nope.html", "/js", "/js/nope.js"} {
		rec := do(s, http.MethodGet, p, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, p)
		assertCORS(t, rec)
	}
}

func TestGetStaysInside(t *testing.T) {
	rec := do(testServer(), http.MethodGet, "/js/../../index.html", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<h1>cube</h1>", rec.Body.String())
}

func TestPost(t *testing.T) {
	s := testServer()

	for _, body := range []string{`{"x": 45, "y": 90}`, `not json`} {
		rec := do(s, http.MethodPost, "/", body)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		assert.Equal(t, "Data received!", rec.Body.String())
		assertCORS(t, rec)
	}
}

func TestOptions(t *testing.T) {
	rec := do(testServer(), http.MethodOptions, "/anything", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assertCORS(t, rec)
}

func TestOtherMethods(t *testing.T) {
	rec := do(testServer(), http.MethodDelete, "/index.html", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentType("a/b.jpg"))
	assert.Equal(t, "image/gif", ContentType("x.gif"))
	assert.Equal(t, "application/octet-stream", ContentType("README"))
}
