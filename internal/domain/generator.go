package domain

type UnitStatus string

const (
	UnitStatusAvailable   UnitStatus = "Available"
	UnitStatusRented      UnitStatus = "Rented"
	UnitStatusMaintenance UnitStatus = "Maintenance"
)

type FuelType string

const (
	FuelTypeDiesel FuelType = "Diesel"
	FuelTypePetrol FuelType = "Petrol"
)

// GeneratorUnit is one physical, serially-numbered machine belonging to a
// generator model. Units carry their own availability status.
type GeneratorUnit struct {
	ID           string     `json:"id"`
	SerialNumber string     `json:"serialNumber"`
	Status       UnitStatus `json:"status"`
}

// Generator is a rentable catalog model. Capacity and pricing apply
// uniformly to every unit of the model.
type Generator struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Capacity      int32           `json:"capacity"` // kW
	PricePerDay   int32           `json:"pricePerDay"`
	PricePerMonth int32           `json:"pricePerMonth"`
	ImageURL      string          `json:"imageUrl"`
	Units         []GeneratorUnit `json:"units"`
	FuelType      FuelType        `json:"fuelType"`
	Featured      bool            `json:"featured"`
	Description   string          `json:"description"`
}

// AvailableUnits counts the model's units currently available to rent.
func (g *Generator) AvailableUnits() int32 {
	var n int32
	for _, u := range g.Units {
		if u.Status == UnitStatusAvailable {
			n++
		}
	}
	return n
}

// FindUnit returns the unit with the given id, or nil.
func (g *Generator) FindUnit(unitID string) *GeneratorUnit {
	for i := range g.Units {
		if g.Units[i].ID == unitID {
			return &g.Units[i]
		}
	}
	return nil
}
