package model

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusHealthy = "healthy"
)

// ErrorResponse is the envelope for every failed request. Error carries the
// underlying failure text and is omitted when internal errors are hidden.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Server  string `json:"server"`
}

// ListResponse wraps the rows returned by a resource GET.
type ListResponse[T any] struct {
	Status string `json:"status"`
	Data   []T    `json:"data"`
	Count  int    `json:"count"`
	Server string `json:"server"`
}

// UserCreatedResponse is returned by POST /api/users.
type UserCreatedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Server  string `json:"server"`
}

// ProductCreatedResponse is returned by POST /api/products.
type ProductCreatedResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
	Server    string `json:"server"`
}

// OrderCreatedResponse is returned by POST /api/orders.
type OrderCreatedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
	Server  string `json:"server"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status            string `json:"status"`
	Service           string `json:"service"`
	Timestamp         string `json:"timestamp"`
	Server            string `json:"server"`
	Environment       string `json:"environment"`
	DatabaseConnected bool   `json:"database_connected"`
}

// Features lists the capabilities advertised by GET /api/test.
type Features struct {
	DatabaseConnection bool `json:"database_connection"`
	RestAPI            bool `json:"rest_api"`
	JSONResponse       bool `json:"json_response"`
	CORSEnabled        bool `json:"cors_enabled"`
}

// TestResponse is returned by GET /api/test.
type TestResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Service   string   `json:"service"`
	Server    string   `json:"server"`
	Timestamp string   `json:"timestamp"`
	Features  Features `json:"features"`
}

// DatabaseStatus is the result of a successful connectivity check.
type DatabaseStatus struct {
	Host          string `json:"host"`
	Name          string `json:"name"`
	Connected     bool   `json:"connected"`
	UsersCount    int64  `json:"users_count"`
	ProductsCount int64  `json:"products_count"`
}

// DBTestResponse is returned by GET /api/db-test on success.
type DBTestResponse struct {
	Status   string         `json:"status"`
	Message  string         `json:"message"`
	Server   string         `json:"server"`
	Database DatabaseStatus `json:"database"`
}

// SystemInfo describes the running process.
type SystemInfo struct {
	Server      string `json:"server"`
	GoVersion   string `json:"go_version"`
	Environment string `json:"environment"`
	Project     string `json:"project"`
	Timestamp   string `json:"timestamp"`
}

// DatabaseInfo echoes the configured database target without connecting.
type DatabaseInfo struct {
	Host string `json:"host"`
	Name string `json:"name"`
	User string `json:"user"`
}

// ResourceInfo is a snapshot of process resource usage. LoadAverage is a
// three element array, or the string "N/A" where the host cannot report it.
type ResourceInfo struct {
	MemoryUsage uint64      `json:"memory_usage"`
	MemoryPeak  uint64      `json:"memory_peak"`
	LoadAverage interface{} `json:"load_average"`
}

// InfoResponse is returned by GET /api/info.
type InfoResponse struct {
	System    SystemInfo   `json:"system"`
	Database  DatabaseInfo `json:"database"`
	Resources ResourceInfo `json:"resources"`
}

// WelcomeResponse is returned for any path no route matches.
type WelcomeResponse struct {
	Message       string    `json:"message"`
	Endpoints     Endpoints `json:"endpoints"`
	Server        string    `json:"server"`
	Documentation string    `json:"documentation"`
}

// ProbeResponse is returned by the standalone web health probe.
type ProbeResponse struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	Timestamp    string `json:"timestamp"`
	Server       string `json:"server"`
	GoVersion    string `json:"go_version"`
	LoadBalancer string `json:"load_balancer"`
	Environment  string `json:"environment"`
}
