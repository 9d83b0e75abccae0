package dashboard

// ChartConfig is the declarative input of one Chart.js chart. The page hands
// it to the charting library as-is.
type ChartConfig struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series. BackgroundColor is either a single color or one
// color per data point.
type Dataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor any       `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BorderWidth     float64   `json:"borderWidth,omitempty"`
	BorderDash      []int     `json:"borderDash,omitempty"`
	YAxisID         string    `json:"yAxisID,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
	PointRadius     *float64  `json:"pointRadius,omitempty"`
}

type ChartOptions struct {
	Responsive          bool             `json:"responsive"`
	MaintainAspectRatio *bool            `json:"maintainAspectRatio,omitempty"`
	Interaction         *Interaction     `json:"interaction,omitempty"`
	Plugins             *Plugins         `json:"plugins,omitempty"`
	Scales              map[string]Scale `json:"scales,omitempty"`
}

type Interaction struct {
	Mode      string `json:"mode"`
	Intersect bool   `json:"intersect"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Display  *bool  `json:"display,omitempty"`
	Position string `json:"position,omitempty"`
}

type Scale struct {
	Type     string `json:"type,omitempty"`
	Display  bool   `json:"display"`
	Position string `json:"position,omitempty"`
	Grid     *Grid  `json:"grid,omitempty"`
}

type Grid struct {
	DrawOnChartArea bool `json:"drawOnChartArea"`
}

// Palette holds every color the dashboard assigns.
type Palette struct {
	Cash          string
	SafeAsset     string
	RiskAsset     string
	Portfolio     string
	PortfolioFill string
	Benchmark     string
	TrendPrice    string
	TrendMA       string
}

// DefaultPalette matches the page's Bootstrap theme.
func DefaultPalette() Palette {
	return Palette{
		Cash:          "#e9ecef",
		SafeAsset:     "#adb5bd",
		RiskAsset:     "#0d6efd",
		Portfolio:     "#0d6efd",
		PortfolioFill: "rgba(13, 110, 253, 0.1)",
		Benchmark:     "#adb5bd",
		TrendPrice:    "#198754",
		TrendMA:       "#dc3545",
	}
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
