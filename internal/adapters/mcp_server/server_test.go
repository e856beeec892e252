package mcpserver_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	mcpserver "seapay_hotel/internal/adapters/mcp_server"
	"seapay_hotel/internal/app"
	"seapay_hotel/internal/domain"
	"seapay_hotel/internal/storage/memory"
)

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dst any) (bool, error)   { return false, nil }
func (noopCache) Set(ctx context.Context, key string, v any, ttlSec int) error { return nil }
func (noopCache) Del(ctx context.Context, key string) error                    { return nil }

func newSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	repo := memory.New()
	s := mcpserver.New(
		app.NewAvailabilityService(repo, noopCache{}, time.Minute),
		app.NewReservationService(repo),
	)

	ctx := context.Background()
	ct, st := mcp.NewInMemoryTransports()
	if _, err := s.MCP().Connect(ctx, st, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.1.0"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func TestListTools(t *testing.T) {
	cs := newSession(t)

	res, err := cs.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range res.Tools {
		names[tool.Name] = true
		if tool.Description == "" {
			t.Fatalf("tool %s has no description", tool.Name)
		}
	}
	for _, want := range []string{"check_availability", "reserve"} {
		if !names[want] {
			t.Fatalf("tool %s not registered (got %v)", want, names)
		}
	}
}

func TestCheckAvailabilityTool(t *testing.T) {
	cs := newSession(t)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "check_availability",
		Arguments: map[string]any{
			"checkIn":  "2024-01-15",
			"checkOut": "2024-01-20",
			"adults":   2,
			"children": 1,
		},
	})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %+v", res.Content)
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}

	var offers []domain.HotelOffer
	if err := json.Unmarshal([]byte(tc.Text), &offers); err != nil {
		t.Fatalf("tool text is not JSON: %v\n%s", err, tc.Text)
	}
	if len(offers) != 3 {
		t.Fatalf("expected 3 offers, got %d", len(offers))
	}
	for _, o := range offers {
		if o.Dates != "2024-01-15 to 2024-01-20" || o.Adults != 2 || o.Children != 1 {
			t.Fatalf("wrong stay echo: %+v", o)
		}
	}
}

func TestReserveTool(t *testing.T) {
	cs := newSession(t)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "reserve",
		Arguments: map[string]any{
			"hotelName": "Grand Plaza Hotel",
			"checkIn":   "2024-01-15",
			"checkOut":  "2024-01-20",
			"adults":    2,
			"children":  1,
		},
	})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %+v", res.Content)
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	var r domain.Reservation
	if err := json.Unmarshal([]byte(tc.Text), &r); err != nil {
		t.Fatalf("tool text is not JSON: %v\n%s", err, tc.Text)
	}
	if r.HotelName != "Grand Plaza Hotel" || !strings.HasPrefix(r.ReservationID, "RES-") || r.Status != domain.StatusConfirmed {
		t.Fatalf("unexpected reservation: %+v", r)
	}
}

func TestReserveTool_UnknownHotel(t *testing.T) {
	cs := newSession(t)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "reserve",
		Arguments: map[string]any{
			"hotelName": "Nonexistent Inn",
			"checkIn":   "2024-01-15",
			"checkOut":  "2024-01-20",
			"adults":    2,
			"children":  1,
		},
	})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected a tool execution error for unknown hotel")
	}
}
