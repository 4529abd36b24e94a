package translate

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/ymatsuda/wordglass/internal/config"
)

// MyMemory is the fallback provider: the MyMemory translated.net GET API.
type MyMemory struct {
	httpClient *resty.Client
	email      string
	source     string
	target     string
}

func NewMyMemory(cfg config.MyMemoryConfig, source, target string) *MyMemory {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)

	return &MyMemory{
		httpClient: client,
		email:      cfg.Email,
		source:     source,
		target:     target,
	}
}

func (p *MyMemory) Close() error {
	return p.httpClient.Close()
}

func (p *MyMemory) Name() string {
	return ProviderMyMemory
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	Matches []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

func (r myMemoryResponse) translation() string {
	if r.ResponseData.TranslatedText != "" {
		return r.ResponseData.TranslatedText
	}
	for _, match := range r.Matches {
		if match.Translation != "" {
			return match.Translation
		}
	}
	return ""
}

func (p *MyMemory) Translate(ctx context.Context, text string) (string, error) {
	request := p.httpClient.R().
		SetContext(ctx).
		SetQueryParam("q", text).
		SetQueryParam("langpair", p.source+"|"+p.target).
		SetResult(&myMemoryResponse{})
	if p.email != "" {
		request.SetQueryParam("de", p.email)
	}

	response, err := request.Get("/get")
	if err != nil {
		return "", fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody, ok := response.Result().(*myMemoryResponse)
	if !ok || responseBody == nil {
		return "", fmt.Errorf("unexpected response body: %s", response.String())
	}
	translated := responseBody.translation()
	if translated == "" {
		return "", fmt.Errorf("empty translation in response: %s", response.String())
	}
	return translated, nil
}
