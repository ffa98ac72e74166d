package server

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"rankine/cycle"
	"rankine/model"
	"rankine/plot"
	"rankine/steam"
	"rankine/units"
)

// Hub 负责单个连接的请求分发：解析前端消息，驱动求解器并推送结果
// One hub per websocket peer. The request loop drives the solver and
// sampler synchronously; replies flow through the reply channel.
type Hub struct {
	id      uuid.UUID
	conn    *websocket.Conn
	solver  *cycle.Solver
	sampler *plot.Sampler
	reply   chan model.Msg
}

func NewHub(table *steam.Table) *Hub {
	h := &Hub{
		id:      uuid.New(),
		solver:  cycle.NewSolver(table),
		sampler: plot.NewSampler(table, cycle.DomeSamples()),
		reply:   make(chan model.Msg, 10),
	}
	h.solver.SetUnitSystem(cycle.DefaultUnits())
	if err := h.solver.SetBoundary(cycle.DefaultBoundary()); err == nil {
		_, _ = h.solver.Recompute()
	}
	return h
}

func (h *Hub) handleResponse() {
	for reply := range h.reply {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.WithFields(log.Fields{"session": h.id}).Warn("write: ", err)
		}
	}
}

// dispatch handles one UI request. Errors go back as "error" messages;
// the previous valid result stays live.
func (h *Hub) dispatch(msg model.Msg) {
	switch msg.Type {
	case "boundary":
		h.onBoundary(msg.Content)
	case "units":
		h.onUnits(msg.Content)
	case "calculate":
		h.pushDisplay()
	case "plot":
		h.onPlot(msg.Content)
	case "sat":
		h.onSat(msg.Content)
	default:
		log.WithFields(log.Fields{"session": h.id, "type": msg.Type}).Warn("no such message type")
		h.sendError("unknown message type: " + msg.Type)
	}
}

// onBoundary converts the raw edit from the client's unit system to SI,
// stores it, and recomputes.
func (h *Hub) onBoundary(content string) {
	var req model.BoundaryRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		h.sendError("bad boundary payload: " + err.Error())
		return
	}
	sys := h.solver.UnitSystem()

	mode := model.QualityMode
	if req.InletMode == "temperature" {
		mode = model.TemperatureMode
	}
	h.solver.SetInletMode(mode)

	pHigh, err := units.Convert(req.PHigh, units.PressureUnit(sys), units.KPa)
	if err != nil {
		h.sendError(err.Error())
		return
	}
	pLow, err := units.Convert(req.PLow, units.PressureUnit(sys), units.KPa)
	if err != nil {
		h.sendError(err.Error())
		return
	}
	value := req.InletValue
	if mode == model.TemperatureMode {
		if value, err = units.Convert(req.InletValue, units.TemperatureUnit(sys), units.Kelvin); err != nil {
			h.sendError(err.Error())
			return
		}
	}

	b := model.CycleBoundary{
		PHigh:      pHigh,
		PLow:       pLow,
		Inlet:      model.InletSpec{Mode: mode, Value: value, Set: true},
		TurbineEff: req.TurbineEff,
	}
	if err := h.solver.SetBoundary(b); err != nil {
		h.sendError(err.Error())
		return
	}
	h.pushDisplay()
}

func (h *Hub) onUnits(content string) {
	sys := model.SI
	if content == "English" {
		sys = model.English
	}
	h.solver.SetUnitSystem(sys)
	h.pushDisplay()
}

func (h *Hub) onPlot(content string) {
	var req model.PlotRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		h.sendError("bad plot payload: " + err.Error())
		return
	}
	xv, err := plot.ParseAxisVar(req.XAxis)
	if err != nil {
		h.sendError(err.Error())
		return
	}
	yv, err := plot.ParseAxisVar(req.YAxis)
	if err != nil {
		h.sendError(err.Error())
		return
	}
	points, err := h.sampler.Sample(h.solver.Result(), xv, yv, req.LogX, req.LogY)
	if err != nil {
		if _, dropped := err.(*plot.DomainError); !dropped {
			h.sendError(err.Error())
			return
		}
		// log-scale omissions: render what survived, tell the client
		log.WithFields(log.Fields{"session": h.id}).Warn(err)
	}
	xl, yl := plot.Labels(xv, yv, h.solver.UnitSystem(), req.LogX, req.LogY)
	h.send("curve", model.CurveData{
		Points:    points,
		DomeCount: h.sampler.DomeCount(),
		XLabel:    xl,
		YLabel:    yl,
	})
}

func (h *Hub) onSat(content string) {
	var req model.SatRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		h.sendError("bad sat payload: " + err.Error())
		return
	}
	sum, err := h.solver.SaturationSummary(req.Pressure)
	if err != nil {
		h.sendError(err.Error())
		return
	}
	h.send("sat", sum)
}

func (h *Hub) pushDisplay() {
	if _, err := h.solver.Recompute(); err != nil {
		h.sendError(err.Error())
		return
	}
	disp, err := h.solver.Display()
	if err != nil {
		h.sendError(err.Error())
		return
	}
	h.send("display", disp)
}

func (h *Hub) send(msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.WithFields(log.Fields{"session": h.id}).Warn("marshal: ", err)
		return
	}
	h.reply <- model.Msg{Type: msgType, Content: string(data)}
}

func (h *Hub) sendError(reason string) {
	h.reply <- model.Msg{Type: "error", Content: reason}
}
