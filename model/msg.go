package model

// websocket 消息结构（与前端约定的 JSON 格式）
// message envelope and payloads exchanged with the UI

// Msg is the envelope for every websocket frame. Content carries the
// request or reply payload as a JSON string.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// BoundaryRequest is the raw parameter edit from the UI, in the unit
// system currently selected on the client.
type BoundaryRequest struct {
	PHigh      float64 `json:"p_high"`
	PLow       float64 `json:"p_low"`
	InletMode  string  `json:"inlet_mode"` // "quality" | "temperature"
	InletValue float64 `json:"inlet_value"`
	TurbineEff float64 `json:"turbine_eff"`
}

// PlotRequest selects the axis pair and log scaling for the cycle plot.
type PlotRequest struct {
	XAxis string `json:"x_axis"` // one of T, s, h, P, v
	YAxis string `json:"y_axis"`
	LogX  bool   `json:"log_x"`
	LogY  bool   `json:"log_y"`
}

// SatRequest asks for the saturation summary at one pressure
// (the UI refreshes these when the P high / P low fields are edited).
type SatRequest struct {
	Pressure float64 `json:"pressure"`
}

// StateDisplay is one state point formatted for the UI labels.
type StateDisplay struct {
	Enthalpy    string `json:"enthalpy"`
	Temperature string `json:"temperature"`
	Pressure    string `json:"pressure"`
	Quality     string `json:"quality"` // numeric, or "superheated"
}

// DisplayData carries every formatted label the UI shows after a
// recompute, with unit suffixes matching the active unit system.
type DisplayData struct {
	State1 StateDisplay `json:"state1"`
	State2 StateDisplay `json:"state2"`
	State3 StateDisplay `json:"state3"`
	State4 StateDisplay `json:"state4"`

	TurbineWork string `json:"turbine_work"`
	PumpWork    string `json:"pump_work"`
	HeatAdded   string `json:"heat_added"`
	Efficiency  string `json:"efficiency"` // percentage

	Units string `json:"units"`
}

// SatSummary is the formatted saturation property panel for one pressure.
type SatSummary struct {
	Pressure string `json:"pressure"`
	Tsat     string `json:"t_sat"`
	Hf       string `json:"h_f"`
	Hg       string `json:"h_g"`
	Sf       string `json:"s_f"`
	Sg       string `json:"s_g"`
	Vf       string `json:"v_f"`
	Vg       string `json:"v_g"`
}

// CurveData is the sampled plot sequence pushed to the UI. The first
// DomeCount points trace the saturation dome, the rest the cycle path.
type CurveData struct {
	Points    []Point `json:"points"`
	DomeCount int     `json:"dome_count"`
	XLabel    string  `json:"x_label"`
	YLabel    string  `json:"y_label"`
}
