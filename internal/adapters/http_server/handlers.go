package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"seapay_hotel/internal/app"
	"seapay_hotel/internal/domain"
)

type Handlers struct {
	Q *app.AvailabilityService
	R *app.ReservationService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/check-availability", h.checkAvailability)
	s.mux.Post("/reserve", h.reserve)
}

type errorBody struct {
	Error string `json:"error"`
}

type reserveResponse struct {
	Success     bool                `json:"success"`
	Reservation *domain.Reservation `json:"reservation,omitempty"`
	Message     string              `json:"message,omitempty"`
	Error       string              `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// GET /check-availability?checkIn=&checkOut=&adults=&children=
//
// All four query parameters are required; any missing subset is a 400. The
// counts are coerced to integers here so the query service never sees raw
// strings. Unexpected failures map to a generic 500.
func (h *Handlers) checkAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var missing []string
	for _, k := range []string{"checkIn", "checkOut", "adults", "children"} {
		if q.Get(k) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error: "missing required query parameters: " + strings.Join(missing, ", "),
		})
		return
	}

	adults, err := strconv.Atoi(q.Get("adults"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "adults must be an integer"})
		return
	}
	children, err := strconv.Atoi(q.Get("children"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "children must be an integer"})
		return
	}

	stay := domain.StayRequest{
		CheckIn:  q.Get("checkIn"),
		CheckOut: q.Get("checkOut"),
		Adults:   adults,
		Children: children,
	}
	offers, err := h.Q.CheckAvailability(r.Context(), stay)
	if err != nil {
		log.Error().Err(err).Msg("check availability failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

// reserveBody is the optional JSON body of POST /reserve. Pointer fields
// distinguish "absent" from zero values when merging with the query string.
type reserveBody struct {
	HotelName *string `json:"hotelName"`
	CheckIn   *string `json:"checkIn"`
	CheckOut  *string `json:"checkOut"`
	Adults    *int    `json:"adults"`
	Children  *int    `json:"children"`
}

// POST /reserve
//
// Parameters come from the JSON body or the query string, normalized into one
// typed request before the core is called; body values win per key. Every
// failure on this path, validation and lookup alike, is a 400 with
// {success:false} — this endpoint never returns 500.
func (h *Handlers) reserve(w http.ResponseWriter, r *http.Request) {
	var body reserveBody
	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, reserveResponse{Success: false, Error: "failed to read request body"})
		return
	}
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, reserveResponse{Success: false, Error: "invalid JSON body"})
			return
		}
	}

	q := r.URL.Query()
	hotelName, ok := pickString(body.HotelName, q, "hotelName")
	var missing []string
	if !ok {
		missing = append(missing, "hotelName")
	}
	checkIn, ok := pickString(body.CheckIn, q, "checkIn")
	if !ok {
		missing = append(missing, "checkIn")
	}
	checkOut, ok := pickString(body.CheckOut, q, "checkOut")
	if !ok {
		missing = append(missing, "checkOut")
	}
	adults, ok, err := pickInt(body.Adults, q, "adults")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, reserveResponse{Success: false, Error: "adults must be an integer"})
		return
	}
	if !ok {
		missing = append(missing, "adults")
	}
	children, ok, err := pickInt(body.Children, q, "children")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, reserveResponse{Success: false, Error: "children must be an integer"})
		return
	}
	if !ok {
		missing = append(missing, "children")
	}
	if len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, reserveResponse{
			Success: false,
			Error:   "missing required fields: " + strings.Join(missing, ", "),
		})
		return
	}

	stay := domain.StayRequest{CheckIn: checkIn, CheckOut: checkOut, Adults: adults, Children: children}
	res, err := h.R.Reserve(r.Context(), hotelName, stay)
	if err != nil {
		msg := "reservation failed"
		if errors.Is(err, domain.ErrNotFound) {
			msg = fmt.Sprintf("hotel %q not found", hotelName)
		}
		writeJSON(w, http.StatusBadRequest, reserveResponse{Success: false, Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, reserveResponse{
		Success:     true,
		Reservation: &res,
		Message:     fmt.Sprintf("Reservation confirmed for %s", res.HotelName),
	})
}

func pickString(b *string, q url.Values, key string) (string, bool) {
	if b != nil && *b != "" {
		return *b, true
	}
	if v := q.Get(key); v != "" {
		return v, true
	}
	return "", false
}

func pickInt(b *int, q url.Values, key string) (int, bool, error) {
	if b != nil {
		return *b, true, nil
	}
	v := q.Get(key)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
