package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cardturner/pkg/deck"
	"cardturner/pkg/ingest"
	"cardturner/pkg/session"
)

// newTestServer serves a mux over a session with one known, unshuffled deck
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	d := deck.New("Suits", "gray", "navy")
	d.Add("A", "B", "C")

	sess := session.New(&ingest.Result{
		Decks:    deck.Collection{d},
		Settings: ingest.DefaultSettings(),
	})
	sess.Start()

	ts := httptest.NewServer(NewMux("v1.2.3", sess))
	t.Cleanup(func() {
		ts.Close()
		sess.Stop()
	})

	return ts
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
		}
	}
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case nil:
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}
