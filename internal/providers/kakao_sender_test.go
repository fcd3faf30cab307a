package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"football-club/matchday/internal/config"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKakaoSender_SendText_Success(t *testing.T) {
	var gotTemplate kakaoTextTemplate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer announcer-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		require.NoError(t, json.Unmarshal([]byte(r.PostForm.Get("template_object")), &gotTemplate))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result_code":0}`))
	}))
	defer server.Close()

	sender := NewKakaoSender(server.URL, "https://club.example/dashboard")
	err := sender.SendText(context.Background(), "announcer-token", "🛑 투표 마감 - Sunday League")
	require.NoError(t, err)

	assert.Equal(t, "text", gotTemplate.ObjectType)
	assert.Equal(t, "🛑 투표 마감 - Sunday League", gotTemplate.Text)
	assert.Equal(t, "https://club.example/dashboard", gotTemplate.Link.WebURL)
	assert.Equal(t, "https://club.example/dashboard", gotTemplate.Link.MobileWebURL)
	assert.NotEmpty(t, gotTemplate.ButtonTitle)
}

func TestKakaoSender_SendText_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg":"this access token does not exist","code":-401}`))
	}))
	defer server.Close()

	sender := NewKakaoSender(server.URL, "")
	err := sender.SendText(context.Background(), "expired", "hello")
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusUnauthorized, perr.StatusCode)
	assert.Contains(t, perr.Details, "access token does not exist")
}

func TestKakaoSender_SendText_EmptyToken(t *testing.T) {
	sender := NewKakaoSender("", "")
	assert.Equal(t, DefaultKakaoMemoURL, sender.BaseURL)
	assert.Error(t, sender.SendText(context.Background(), "", "hello"))
}

func TestKakaoSender_SendText_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewKakaoSender(server.URL, "").SendText(ctx, "token", "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSlackSender_SendText(t *testing.T) {
	var gotChannel, gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotChannel = r.PostForm.Get("channel")
		gotText = r.PostForm.Get("text")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1700000000.000100"}`))
	}))
	defer server.Close()

	sender := NewSlackSender("xoxb-test", "C-default", slack.OptionAPIURL(server.URL+"/"))

	require.NoError(t, sender.SendText(context.Background(), "", "hello club"))
	assert.Equal(t, "C-default", gotChannel)
	assert.Equal(t, "hello club", gotText)

	require.NoError(t, sender.SendText(context.Background(), "C-announcer", "again"))
	assert.Equal(t, "C-announcer", gotChannel)
}

func TestSlackSender_SendText_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer server.Close()

	sender := NewSlackSender("xoxb-test", "C-missing", slack.OptionAPIURL(server.URL+"/"))
	err := sender.SendText(context.Background(), "", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")

	assert.Error(t, NewSlackSender("xoxb-test", "").SendText(context.Background(), "", "hello"))
}

func TestNewSender(t *testing.T) {
	tests := []struct {
		provider string
		want     interface{}
		wantErr  bool
	}{
		{provider: "kakao", want: &KakaoSender{}},
		{provider: "slack", want: &SlackSender{}},
		{provider: "log", want: LogSender{}},
		{provider: "sms", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			sender, err := NewSender(&config.Config{DeliveryProvider: tt.provider, SlackToken: "xoxb"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, sender)
		})
	}
}
