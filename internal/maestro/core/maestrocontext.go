package core

import (
	"fmt"
	"time"

	"flexspace/pkg/client"
	httputil "flexspace/pkg/http"
	"flexspace/pkg/logger"
)

// MaestroContext carries a flow's state: caller input, intermediate
// results keyed by step, and the final output returned to the caller.
type MaestroContext struct {
	Input   map[string]any
	Process map[string]any
	Output  map[string]any
	Client  *client.Client
	Log     *logger.Logger
}

func NewMaestroContext(input map[string]any, client *client.Client, log *logger.Logger) *MaestroContext {
	return &MaestroContext{
		Input:   input,
		Process: make(map[string]any),
		Output:  make(map[string]any),
		Client:  client,
		Log:     log,
	}
}

// ExtractString returns the named input as a string, empty when absent
// or of another type.
func (ctx *MaestroContext) ExtractString(key string) string {
	raw, ok := ctx.Input[key]
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return s
}

// ExtractDate parses the named input as a YYYY-MM-DD calendar date.
func (ctx *MaestroContext) ExtractDate(key string) (time.Time, error) {
	s := ctx.ExtractString(key)
	if s == "" {
		return time.Time{}, MissingParamErr(key)
	}
	parsed, err := time.Parse(httputil.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("param [%v] is not a valid date (want YYYY-MM-DD): %w", key, err)
	}
	return parsed, nil
}

