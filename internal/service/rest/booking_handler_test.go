package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/bos/internal/service/booking"
	"github.com/vladislavdragonenkov/bos/internal/service/rest"
	"github.com/vladislavdragonenkov/bos/internal/storage/memory"
)

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func newTestServer() *httptest.Server {
	logger := loggerForTests()
	service := booking.NewService(memory.NewBookingRepository(), nil, logger)
	handler := rest.NewBookingHandler(service, logger)
	return httptest.NewServer(rest.NewRouter(handler, logger))
}

func postBooking(t *testing.T, server *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(server.URL+"/bookings", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestCreateBooking_Created(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := postBooking(t, server, `{"room_id":1,"customer_name":"Alice","start_date":"2025-11-01","end_date":"2025-11-05"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	body := decodeBody(t, resp)
	require.Equal(t, float64(1), body["id"])
	require.Equal(t, "2025-11-01", body["start_date"])
	require.Equal(t, "2025-11-05", body["end_date"])
}

func TestCreateBooking_InvalidDuration(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := postBooking(t, server, `{"room_id":1,"customer_name":"Bob","start_date":"2025-11-01","end_date":"2025-11-20"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "invalid_duration", body["code"])
}

func TestCreateBooking_RoomUnavailable(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := postBooking(t, server, `{"room_id":1,"customer_name":"Alice","start_date":"2025-11-01","end_date":"2025-11-05"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = postBooking(t, server, `{"room_id":1,"customer_name":"Bob","start_date":"2025-11-03","end_date":"2025-11-06"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "room_unavailable", body["code"])
}

func TestCreateBooking_MalformedPayload(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := postBooking(t, server, `{"room_id":`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	resp = postBooking(t, server, `{"room_id":1,"customer_name":"Bob","start_date":"01.11.2025","end_date":"2025-11-05"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "invalid_date", body["code"])
}

func TestListBookings(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := postBooking(t, server, `{"room_id":1,"customer_name":"Alice","start_date":"2025-11-01","end_date":"2025-11-05"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := http.Get(server.URL + "/bookings")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() { _ = resp.Body.Close() }()

	var bookings []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bookings))
	require.Len(t, bookings, 1)
	require.Equal(t, "Alice", bookings[0]["customer_name"])
}

func TestGetBooking(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := postBooking(t, server, `{"room_id":1,"customer_name":"Alice","start_date":"2025-11-01","end_date":"2025-11-05"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := http.Get(server.URL + "/bookings/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, float64(1), body["room_id"])

	resp, err = http.Get(server.URL + "/bookings/999")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body = decodeBody(t, resp)
	require.Equal(t, "not_found", body["code"])

	resp, err = http.Get(server.URL + "/bookings/abc")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}
