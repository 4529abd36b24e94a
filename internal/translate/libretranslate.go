package translate

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/ymatsuda/wordglass/internal/config"
)

// LibreTranslate is the primary provider: a LibreTranslate compatible
// endpoint taking a JSON POST.
type LibreTranslate struct {
	httpClient *resty.Client
	apiKey     string
	source     string
	target     string
}

func NewLibreTranslate(cfg config.LibreTranslateConfig, source, target string) *LibreTranslate {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetHeader("Content-Type", "application/json")

	return &LibreTranslate{
		httpClient: client,
		apiKey:     cfg.APIKey,
		source:     source,
		target:     target,
	}
}

func (p *LibreTranslate) Close() error {
	return p.httpClient.Close()
}

func (p *LibreTranslate) Name() string {
	return ProviderLibreTranslate
}

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

// Self-hosted instances and forks disagree on the response field name, so
// all known aliases are tried in order.
type libreTranslateResponse struct {
	TranslatedText      string `json:"translatedText"`
	TranslatedTextSnake string `json:"translated_text"`
	Translation         string `json:"translation"`
	Result              string `json:"result"`
}

func (r libreTranslateResponse) translation() string {
	for _, candidate := range []string{r.TranslatedText, r.TranslatedTextSnake, r.Translation, r.Result} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func (p *LibreTranslate) Translate(ctx context.Context, text string) (string, error) {
	response, err := p.httpClient.R().
		SetContext(ctx).
		SetBody(libreTranslateRequest{
			Q:      text,
			Source: p.source,
			Target: p.target,
			Format: "text",
			APIKey: p.apiKey,
		}).
		SetResult(&libreTranslateResponse{}).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody, ok := response.Result().(*libreTranslateResponse)
	if !ok || responseBody == nil {
		return "", fmt.Errorf("unexpected response body: %s", response.String())
	}
	translated := responseBody.translation()
	if translated == "" {
		return "", fmt.Errorf("empty translation in response: %s", response.String())
	}
	return translated, nil
}
