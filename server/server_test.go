package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"rankine/model"
)

func testUpgrader() websocket.Upgrader {
	up := websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024}
	up.CheckOrigin = func(r *http.Request) bool { return true }
	return up
}

func TestHealthz(t *testing.T) {
	s := NewServer(":0", testUpgrader())
	ts := httptest.NewServer(s.handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestStateEndpoint(t *testing.T) {
	s := NewServer(":0", testUpgrader())
	ts := httptest.NewServer(s.handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/state")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var res model.CycleResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Efficiency <= 0 || res.Efficiency >= 1 {
		t.Errorf("efficiency = %v", res.Efficiency)
	}
}

func TestWebsocketRoundTrip(t *testing.T) {
	s := NewServer(":0", testUpgrader())
	ts := httptest.NewServer(s.handler)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(model.Msg{Type: "calculate"}); err != nil {
		t.Fatal(err)
	}
	var reply model.Msg
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatal(err)
	}
	if reply.Type != "display" {
		t.Fatalf("reply type = %q (%s)", reply.Type, reply.Content)
	}
	var disp model.DisplayData
	if err := json.Unmarshal([]byte(reply.Content), &disp); err != nil {
		t.Fatal(err)
	}
	if disp.HeatAdded == "" {
		t.Error("empty heat added label")
	}
}
