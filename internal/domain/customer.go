package domain

type CustomerType string

const (
	CustomerTypeOnline  CustomerType = "Online"
	CustomerTypeOffline CustomerType = "Offline"
)

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	// TotalBookings is a cached counter incremented on booking creation,
	// not recomputed from the booking set. Best-effort.
	TotalBookings int32        `json:"totalBookings"`
	Type          CustomerType `json:"type"`
}
