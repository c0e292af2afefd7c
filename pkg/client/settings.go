package client

import (
	"encoding/json"
	"fmt"

	"flexspace/pkg/model"
)

type SettingsClient struct {
	httpClient *HttpClient
}

func NewSettingsClient(baseURL string) *SettingsClient {
	return &SettingsClient{httpClient: NewHttpClient(baseURL)}
}

func (c *SettingsClient) Get() (*Response, error) {
	return c.httpClient.GET("/api/v1/settings")
}

func (c *SettingsClient) Update(body any) (*Response, error) {
	return c.httpClient.PATCH("/api/v1/settings", body)
}

func (c *SettingsClient) DecodeSettings(resp *Response) (*model.SiteSettings, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode settings wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var settings model.SiteSettings
	if err := json.Unmarshal(wrapper.Data, &settings); err != nil {
		return nil, fmt.Errorf("could not decode settings json:\n%+v\n%s", resp.ToString(), err)
	}

	return &settings, nil
}
