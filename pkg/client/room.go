package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	"flexspace/pkg/model"
)

type RoomClient struct {
	httpClient *HttpClient
}

func NewRoomClient(baseURL string) *RoomClient {
	return &RoomClient{httpClient: NewHttpClient(baseURL)}
}

func (c *RoomClient) Create(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/rooms", body)
}

func (c *RoomClient) GetAll(limit int, offset int64) (*Response, error) {
	path := fmt.Sprintf("/api/v1/rooms?limit=%d&offset=%d", limit, offset)
	return c.httpClient.GET(path)
}

func (c *RoomClient) GetByID(id string) (*Response, error) {
	return c.httpClient.GET("/api/v1/rooms/id/" + url.PathEscape(id))
}

func (c *RoomClient) Update(id string, body any) (*Response, error) {
	return c.httpClient.PATCH("/api/v1/rooms/id/"+url.PathEscape(id), body)
}

func (c *RoomClient) Delete(id string) (*Response, error) {
	return c.httpClient.DELETE("/api/v1/rooms/id/" + url.PathEscape(id))
}

func (c *RoomClient) DecodeRoom(resp *Response) (*model.Room, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode room wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var room model.Room
	if err := json.Unmarshal(wrapper.Data, &room); err != nil {
		return nil, fmt.Errorf("could not decode room json:\n%+v\n%s", resp.ToString(), err)
	}

	return &room, nil
}

func (c *RoomClient) DecodeRooms(resp *Response) ([]*model.Room, *Metadata, error) {
	var wrapper struct {
		Data       json.RawMessage `json:"data"`
		TotalCount int64           `json:"total_count"`
		Limit      int             `json:"limit"`
		Offset     int64           `json:"offset"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, nil, fmt.Errorf("could not decode paginated resp:\n%+v\n%s", resp.ToString(), err)
	}

	var rooms []*model.Room
	if err := json.Unmarshal(wrapper.Data, &rooms); err != nil {
		return nil, nil, fmt.Errorf("could not decode room list:\n%+v\n%s", resp.ToString(), err)
	}

	return rooms, &Metadata{
		TotalCount: wrapper.TotalCount,
		Limit:      wrapper.Limit,
		Offset:     wrapper.Offset,
	}, nil
}
