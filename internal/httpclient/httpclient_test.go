package httpclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"altura_store/internal/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSON_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"hello":"world"}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"id":"abc"}`))
	}))
	defer srv.Close()

	c := httpclient.New()
	var out struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	err := c.PostJSON(context.Background(), srv.URL, map[string]string{"Authorization": "Bearer tok"},
		map[string]string{"hello": "world"}, &out)

	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "abc", out.ID)
}

func TestPostJSON_NonSuccessKeepsBodyVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"card declined"}}`))
	}))
	defer srv.Close()

	c := httpclient.New()
	err := c.PostJSON(context.Background(), srv.URL, nil, map[string]string{}, nil)

	var se *httpclient.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusPaymentRequired, se.Status)
	assert.Contains(t, se.Body, "card declined")
}

func TestPostForm_EncodesForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostFormValue("grant_type"))
		w.Write([]byte(`{"access_token":"tok"}`))
	}))
	defer srv.Close()

	c := httpclient.New()
	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := c.PostForm(context.Background(), srv.URL, nil,
		url.Values{"grant_type": {"client_credentials"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "tok", out.AccessToken)
}
