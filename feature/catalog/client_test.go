package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{Endpoint: srv.URL, TimeoutSeconds: 5})
}

func TestClient_Stations(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"data":{"hideoutStations":[
			{"id":"hydro","name":"Water Collector","imageLink":"img","levels":[
				{"level":1,
				 "itemRequirements":[{"count":2,"item":{"name":"Metal Fuel Tank"}}],
				 "traderRequirements":[{"level":2,"trader":{"name":"Jaeger"}}],
				 "stationLevelRequirements":[{"level":1,"station":{"id":"security-150","name":"Security"}}]}
			]}
		]}}`))
	})

	stations, err := c.Stations(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 1)

	s := stations[0]
	assert.Equal(t, "hydro", s.ID)
	require.Len(t, s.Levels, 1)
	level := s.Levels[0]
	assert.Equal(t, "hydro", level.StationID)
	assert.Equal(t, "Water Collector", level.StationName)
	assert.Equal(t, []ItemRequirement{{ItemName: "Metal Fuel Tank", Count: 2}}, level.ItemRequirements)
	assert.Equal(t, []TraderRequirement{{TraderName: "Jaeger", Level: 2}}, level.TraderRequirements)
	assert.Equal(t, []StationRequirement{{StationID: "security-150", StationName: "Security", Level: 1}}, level.StationRequirements)
}

func TestClient_Tasks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"tasks":[
			{"id":"t1","name":"Debut","trader":{"name":"Prapor"},"map":{"id":"m1"},
			 "minPlayerLevel":1,"kappaRequired":true,
			 "taskRequirements":[{"task":{"id":"t0","name":"Intro"}}],
			 "objectives":[{"id":"o1","description":"Eliminate","type":"shoot","maps":[{"id":"m1"}]}]}
		]}}`))
	})

	tasks, err := c.Tasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Prapor", tasks[0].Trader)
	assert.Equal(t, "m1", tasks[0].Map)
	assert.Equal(t, "m1", tasks[0].Objectives[0].MapID)
	assert.Equal(t, "t0", tasks[0].TaskRequirements[0].TaskID)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"rate limited"}]}`))
	})

	_, err := c.Items(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestClient_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Traders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_MalformedPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [this is not json`))
	})

	_, err := c.Maps(context.Background())
	assert.Error(t, err)
}
