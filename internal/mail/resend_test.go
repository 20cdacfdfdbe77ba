package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendServiceSend(t *testing.T) {
	var gotAuth, gotPath string
	var gotMsg Message

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMsg))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer ts.Close()

	svc := NewResendServiceWithBaseURL("re_test_key", ts.URL)
	msg := Message{
		From:    "Divgaze Website <contact@divgaze.com>",
		To:      "divgaze@gmail.com",
		Subject: "New Inquiry - Web Development",
		HTML:    "<p>hello</p>",
	}

	err := svc.Send(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "/emails", gotPath)
	assert.Equal(t, msg, gotMsg)
}

func TestResendServiceSendProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid to address"}`))
	}))
	defer ts.Close()

	svc := NewResendServiceWithBaseURL("re_test_key", ts.URL)
	err := svc.Send(context.Background(), Message{To: "nobody"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestResendServiceSendMissingKey(t *testing.T) {
	svc := NewResendService("")
	err := svc.Send(context.Background(), Message{To: "someone@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
