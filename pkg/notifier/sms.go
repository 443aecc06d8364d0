package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smart-tracking/pkg/utils"

	"go.uber.org/zap"
)

// httpSms kirim lewat SMS gateway HTTP API
type httpSms struct {
	apiURL   string
	apiKey   string
	senderID string
	client   *http.Client
	log      *zap.Logger
}

func newHTTPSms(config utils.SMSConfig, log *zap.Logger) *httpSms {
	return &httpSms{
		apiURL:   config.APIURL,
		apiKey:   config.APIKey,
		senderID: config.SenderID,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log.With(zap.String("channel", "sms")),
	}
}

func (s *httpSms) Send(ctx context.Context, phone, message string) error {
	start := time.Now()

	form := url.Values{}
	form.Set("senderid", s.senderID)
	form.Set("msgType", "text")
	form.Set("msg", message)
	form.Set("mobile", phone)
	form.Set("output", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create sms request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms http error: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		s.log.Warn("SMS gateway rejected message",
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
			zap.ByteString("response", body),
		)
		return fmt.Errorf("sms api error: %s", string(body))
	}

	s.log.Debug("SMS sent",
		zap.String("phone", phone),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}
