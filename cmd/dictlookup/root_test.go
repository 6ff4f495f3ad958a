package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexicon/pkg/dictionary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookBody = `[{"word":"book","phonetics":[{"text":"/bʊk/","audio":""}],
"meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"A collection of pages.","synonyms":["volume"],"antonyms":[]}]}]}]`

const notFoundBody = `{"title":"No Definitions Found","message":"Sorry pal.","resolution":"Try the web."}`

func newTestServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/v2/entries/en/book" || r.URL.Path == "/api/v2/entries/es/book" {
			_, _ = w.Write([]byte(bookBody))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(notFoundBody))
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDefinitionCommand(t *testing.T) {
	srv, paths := newTestServer(t)

	out, err := run(t, "definition", "book", "--base-url", srv.URL)
	require.NoError(t, err)

	assert.JSONEq(t, `{"pos":"noun","definition":[{"num":0,"definition":"A collection of pages."}]}`, out)
	assert.Equal(t, []string{"/api/v2/entries/en/book"}, *paths)
}

func TestFlatFlag(t *testing.T) {
	srv, _ := newTestServer(t)

	out, err := run(t, "synonyms", "book", "--base-url", srv.URL, "--flat")
	require.NoError(t, err)

	assert.JSONEq(t, `[{"num":0,"type":"A collection of pages.","synonyms":["volume"]}]`, out)
}

func TestLangFlag(t *testing.T) {
	srv, paths := newTestServer(t)

	out, err := run(t, "phonetics", "book", "--base-url", srv.URL, "--lang", "es")
	require.NoError(t, err)

	assert.JSONEq(t, `{"num":0,"pronunciation":"/bʊk/","audio":null}`, out)
	assert.Equal(t, []string{"/api/v2/entries/es/book"}, *paths)
}

func TestRawCommand(t *testing.T) {
	srv, _ := newTestServer(t)

	out, err := run(t, "raw", "book", "--base-url", srv.URL)
	require.NoError(t, err)

	assert.JSONEq(t, bookBody, out)
}

func TestNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	_, err := run(t, "antonyms", "qwxz", "--base-url", srv.URL)
	require.Error(t, err)

	assert.True(t, dictionary.IsNotFound(err))
}

func TestMissingWord(t *testing.T) {
	srv, paths := newTestServer(t)

	_, err := run(t, "definition", "--base-url", srv.URL)
	require.Error(t, err)

	assert.Empty(t, *paths)
}
