package metrics

import "time"

type Snapshot struct {
	HTTP       HTTPStats                `json:"http"`
	Users      UserStats                `json:"users"`
	Auth       AuthStats                `json:"auth"`
	Pizza      PizzaStats               `json:"pizza"`
	Endpoints  map[string]EndpointStats `json:"endpoints"`
	System     SystemStats              `json:"system"`
	CapturedAt time.Time                `json:"capturedAt"`
}

type HTTPStats struct {
	TotalRequests          int64        `json:"totalRequests"`
	RequestsByMethod       MethodCounts `json:"requestsByMethod"`
	AverageRequestDuration float64      `json:"averageRequestDuration"`
}

type MethodCounts struct {
	GET    int64 `json:"GET"`
	PUT    int64 `json:"PUT"`
	POST   int64 `json:"POST"`
	DELETE int64 `json:"DELETE"`
}

type UserStats struct {
	ActiveUsers int `json:"activeUsers"`
}

type AuthStats struct {
	TotalSuccessful int64    `json:"totalSuccessful"`
	TotalFailed     int64    `json:"totalFailed"`
	PerMinute       AuthRate `json:"perMinute"`
}

type AuthRate struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Total      int `json:"total"`
}

type PizzaStats struct {
	TotalSold              int64   `json:"totalSold"`
	SoldPerMinute          int64   `json:"soldPerMinute"`
	CreationFailures       int64   `json:"creationFailures"`
	TotalRevenue           float64 `json:"totalRevenue"`
	RevenuePerMinute       float64 `json:"revenuePerMinute"`
	AverageCreationLatency float64 `json:"averageCreationLatency"`
}

type EndpointStats struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type SystemStats struct {
	CPUUsage    float64 `json:"cpuUsage"`
	MemoryUsage float64 `json:"memoryUsage"`
}

// EndpointKey identifies one latency series. Matching is case-sensitive.
type EndpointKey struct {
	Method string
	Route  string
}

func (k EndpointKey) String() string {
	return k.Method + " " + k.Route
}
