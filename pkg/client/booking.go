package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"flexspace/pkg/model"
)

type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseURL string) *BookingClient {
	return &BookingClient{httpClient: NewHttpClient(baseURL)}
}

func (c *BookingClient) Create(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/bookings", body)
}

func (c *BookingClient) GetAll(limit int, offset int64) (*Response, error) {
	path := fmt.Sprintf("/api/v1/bookings?limit=%d&offset=%d", limit, offset)
	return c.httpClient.GET(path)
}

func (c *BookingClient) GetByID(id string) (*Response, error) {
	return c.httpClient.GET("/api/v1/bookings/id/" + url.PathEscape(id))
}

func (c *BookingClient) Update(id string, body any) (*Response, error) {
	return c.httpClient.PATCH("/api/v1/bookings/id/"+url.PathEscape(id), body)
}

func (c *BookingClient) Cancel(id string) (*Response, error) {
	return c.httpClient.POST("/api/v1/bookings/id/"+url.PathEscape(id)+"/cancel", struct{}{})
}

func (c *BookingClient) CreateRecurring(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/recurring-bookings", body)
}

func (c *BookingClient) GetRecurringByID(id string) (*Response, error) {
	return c.httpClient.GET("/api/v1/recurring-bookings/id/" + url.PathEscape(id))
}

func (c *BookingClient) CancelRecurring(id string) (*Response, error) {
	return c.httpClient.POST("/api/v1/recurring-bookings/id/"+url.PathEscape(id)+"/cancel", struct{}{})
}

func (c *BookingClient) Quote(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/recurring-bookings/quote", body)
}

// CheckAvailability asks whether a room is free on a date and slot.
func (c *BookingClient) CheckAvailability(roomID string, date time.Time, slot string) (*Response, error) {
	q := url.Values{}
	q.Set("room_id", roomID)
	q.Set("date", date.Format("2006-01-02"))
	q.Set("slot", slot)
	return c.httpClient.GET("/api/v1/availability?" + q.Encode())
}

func (c *BookingClient) DecodeBooking(resp *Response) (*model.Booking, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode booking wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var booking model.Booking
	if err := json.Unmarshal(wrapper.Data, &booking); err != nil {
		return nil, fmt.Errorf("could not decode booking json:\n%+v\n%s", resp.ToString(), err)
	}

	return &booking, nil
}

func (c *BookingClient) DecodeRecurringBooking(resp *Response) (*model.RecurringBooking, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode recurring booking wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var rb model.RecurringBooking
	if err := json.Unmarshal(wrapper.Data, &rb); err != nil {
		return nil, fmt.Errorf("could not decode recurring booking json:\n%+v\n%s", resp.ToString(), err)
	}

	return &rb, nil
}

// AvailabilityResult mirrors the availability endpoint payload.
type AvailabilityResult struct {
	RoomID    string `json:"room_id"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}

func (c *BookingClient) DecodeAvailability(resp *Response) (*AvailabilityResult, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode availability wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var result AvailabilityResult
	if err := json.Unmarshal(wrapper.Data, &result); err != nil {
		return nil, fmt.Errorf("could not decode availability json:\n%+v\n%s", resp.ToString(), err)
	}

	return &result, nil
}
