package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"football-club/matchday/internal/common"
)

const (
	DefaultKakaoMemoURL = "https://kapi.kakao.com/v2/api/talk/memo/default/send"
	kakaoButtonTitle    = "관리자 페이지 이동"
	kakaoProvider       = "kakao"
)

// KakaoSender sends a text memo to the owner of a Kakao access token, which
// is how the announcer receives notifications to relay to the club chat.
type KakaoSender struct {
	BaseURL      string
	DashboardURL string
	Client       *http.Client
}

func NewKakaoSender(baseURL, dashboardURL string) *KakaoSender {
	if baseURL == "" {
		baseURL = DefaultKakaoMemoURL
	}
	return &KakaoSender{
		BaseURL:      baseURL,
		DashboardURL: dashboardURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type kakaoLink struct {
	WebURL       string `json:"web_url"`
	MobileWebURL string `json:"mobile_web_url"`
}

type kakaoTextTemplate struct {
	ObjectType  string    `json:"object_type"`
	Text        string    `json:"text"`
	Link        kakaoLink `json:"link"`
	ButtonTitle string    `json:"button_title"`
}

func (k *KakaoSender) SendText(ctx context.Context, recipientToken, text string) error {
	if recipientToken == "" {
		return &ProviderError{Provider: kakaoProvider, Message: "access token is empty"}
	}

	template, err := json.Marshal(kakaoTextTemplate{
		ObjectType:  "text",
		Text:        text,
		Link:        kakaoLink{WebURL: k.DashboardURL, MobileWebURL: k.DashboardURL},
		ButtonTitle: kakaoButtonTitle,
	})
	if err != nil {
		return &ProviderError{Provider: kakaoProvider, Message: "failed to marshal template", Err: err}
	}

	form := url.Values{}
	form.Set("template_object", string(template))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return &ProviderError{Provider: kakaoProvider, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+recipientToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	common.LogHTTPRequest(req)

	resp, err := k.Client.Do(req)
	if err != nil {
		return &ProviderError{Provider: kakaoProvider, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &ProviderError{
			Provider:   kakaoProvider,
			StatusCode: resp.StatusCode,
			Message:    "memo API rejected the message",
			Details:    strings.TrimSpace(string(body)),
		}
	}
	return nil
}
