// Package dto описывает контракты HTTP API мобильного приложения водителя.
// Каждый эндпоинт читает и пишет только свои явные схемы: никакого
// duck-typing тел запросов.
package dto

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SessionCreateRequest struct {
	Phone string `json:"phone"`
}

type SessionCreateResponse struct {
	Token     string `json:"token"`
	Driver    Driver `json:"driver"`
	ExpiresAt string `json:"expiresAt"`
}

type Driver struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	VehicleType     string  `json:"vehicleType"`
	PlateNumber     string  `json:"plateNumber"`
	Rating          float64 `json:"rating"`
	SuccessRate     float64 `json:"successRate"`
	Status          string  `json:"status"`
	CurrentZone     string  `json:"currentZone"`
	TotalDeliveries int64   `json:"totalDeliveries"`
}

type DriverStats struct {
	DeliveriesToday int64   `json:"deliveriesToday"`
	TotalDeliveries int64   `json:"totalDeliveries"`
	SuccessRate     float64 `json:"successRate"`
	ActiveOrders    int64   `json:"activeOrders"`
}

type ProfileResponse struct {
	Driver Driver      `json:"driver"`
	Stats  DriverStats `json:"stats"`
}

type Run struct {
	ID                string  `json:"id"`
	Zone              string  `json:"zone"`
	Date              string  `json:"date"`
	Status            string  `json:"status"`
	TotalStops        int64   `json:"totalStops"`
	CompletedStops    int64   `json:"completedStops"`
	EstimatedDuration int64   `json:"estimatedDuration"`
	TotalDistance     float64 `json:"totalDistance"`
}

type RunsResponse struct {
	Runs  []Run `json:"runs"`
	Total int   `json:"total"`
}

type Address struct {
	Street   string `json:"street"`
	Suburb   string `json:"suburb"`
	Postcode string `json:"postcode"`
	State    string `json:"state"`
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type Order struct {
	ID                  string   `json:"id"`
	OrderNumber         string   `json:"orderNumber"`
	Customer            Customer `json:"customer"`
	Address             Address  `json:"address"`
	Parcels             int64    `json:"parcels"`
	ServiceLevel        string   `json:"serviceLevel"`
	SpecialInstructions string   `json:"specialInstructions,omitempty"`
	CreatedAt           string   `json:"createdAt"`
}

type Stop struct {
	ID             string `json:"id"`
	SequenceNumber int64  `json:"sequenceNumber"`
	Status         string `json:"status"`
	FailureReason  string `json:"failureReason,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Order          Order  `json:"order"`
}

type StopsResponse struct {
	Stops []Stop `json:"stops"`
	Total int    `json:"total"`
}

type StopStatusUpdateRequest struct {
	Status        string `json:"status"`
	Signature     string `json:"signature,omitempty"`
	Photo         string `json:"photo,omitempty"`
	FailureReason string `json:"failureReason,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type StopStatusUpdateResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	FailureReason string `json:"failureReason,omitempty"`
	Notes         string `json:"notes,omitempty"`
	UpdatedAt     string `json:"updatedAt"`
}

type LocationReportRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timestamp string   `json:"timestamp"`
}

type LocationReportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
