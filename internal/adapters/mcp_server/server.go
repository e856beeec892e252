// Package mcpserver exposes the availability and reservation operations as
// MCP tools over the streamable HTTP transport, for consumption by AI-agent
// clients.
package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"seapay_hotel/internal/adapters/observability"
	"seapay_hotel/internal/app"
	"seapay_hotel/internal/domain"
)

type Server struct {
	mcp *mcp.Server
	q   *app.AvailabilityService
	r   *app.ReservationService
}

// New builds the MCP server eagerly, at startup. A single instance serves
// every request for the process lifetime; there is no lazy initialization to
// race on.
func New(q *app.AvailabilityService, r *app.ReservationService) *Server {
	s := &Server{q: q, r: r}

	srv := mcp.NewServer(&mcp.Implementation{Name: "seapay-hotel", Version: "1.0.0"}, nil)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "check_availability",
		Description: "Check hotel availability for a stay. Returns every hotel with name, location, room type, nightly price and the requested dates and guest counts.",
	}, s.checkAvailability)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "reserve",
		Description: "Reserve a hotel by exact name for the given stay. Returns a confirmed reservation with a generated reservation id.",
	}, s.reserve)

	s.mcp = srv
	return s
}

// MCP returns the underlying protocol server, e.g. for in-memory transports.
func (s *Server) MCP() *mcp.Server { return s.mcp }

// Handler returns the streamable HTTP transport handler. Sessions are
// stateless: no session ID tracking across requests.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, &mcp.StreamableHTTPOptions{Stateless: true})
}

type availabilityInput struct {
	CheckIn  string `json:"checkIn" jsonschema:"check-in date, YYYY-MM-DD"`
	CheckOut string `json:"checkOut" jsonschema:"check-out date, YYYY-MM-DD"`
	Adults   int    `json:"adults" jsonschema:"number of adult guests"`
	Children int    `json:"children" jsonschema:"number of child guests"`
}

type reserveInput struct {
	HotelName string `json:"hotelName" jsonschema:"exact hotel name as returned by check_availability"`
	CheckIn   string `json:"checkIn" jsonschema:"check-in date, YYYY-MM-DD"`
	CheckOut  string `json:"checkOut" jsonschema:"check-out date, YYYY-MM-DD"`
	Adults    int    `json:"adults" jsonschema:"number of adult guests"`
	Children  int    `json:"children" jsonschema:"number of child guests"`
}

// The host protocol wraps textual payloads, not structured JSON, so tool
// results are pretty-printed JSON inside a single text content block.
func textResult(v any) (*mcp.CallToolResult, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
	}, nil
}

func (s *Server) checkAvailability(ctx context.Context, req *mcp.CallToolRequest, in availabilityInput) (*mcp.CallToolResult, any, error) {
	offers, err := s.q.CheckAvailability(ctx, domain.StayRequest{
		CheckIn:  in.CheckIn,
		CheckOut: in.CheckOut,
		Adults:   in.Adults,
		Children: in.Children,
	})
	observability.ObserveTool("check_availability", err)
	if err != nil {
		return nil, nil, err
	}
	res, err := textResult(offers)
	return res, nil, err
}

func (s *Server) reserve(ctx context.Context, req *mcp.CallToolRequest, in reserveInput) (*mcp.CallToolResult, any, error) {
	r, err := s.r.Reserve(ctx, in.HotelName, domain.StayRequest{
		CheckIn:  in.CheckIn,
		CheckOut: in.CheckOut,
		Adults:   in.Adults,
		Children: in.Children,
	})
	observability.ObserveTool("reserve", err)
	if err != nil {
		// Reported as a tool execution error, not a protocol failure.
		return nil, nil, err
	}
	res, err := textResult(r)
	return res, nil, err
}
