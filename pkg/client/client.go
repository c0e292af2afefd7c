package client

import (
	"context"
	"time"

	"flexspace/pkg/logger"
)

// Client aggregates the external collaborators a service may need:
// the Mongo connection plus typed HTTP clients for the other services.
// Fields are nil until the corresponding Set* method is called.
type Client struct {
	Mongo *MongoClient

	RoomClient     *RoomClient
	SettingsClient *SettingsClient
	BookingClient  *BookingClient

	log *logger.Logger
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetMongo(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) {
	c.log = log
	c.Mongo = NewMongoClient(log, mongoURI, mongoConnTimeout)
}

func (c *Client) SetServiceClients(roomsURL, settingsURL, bookingsURL string) {
	c.RoomClient = NewRoomClient(roomsURL)
	c.SettingsClient = NewSettingsClient(settingsURL)
	c.BookingClient = NewBookingClient(bookingsURL)
}

func (c *Client) GracefulShutdown() {
	if c.Mongo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.Mongo.Client.Disconnect(ctx); err != nil && c.log != nil {
		c.log.Error("Failed to disconnect from MongoDB", "error", err)
	}
}
