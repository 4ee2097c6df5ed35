package domain

// CartLine stages a desired quantity of one generator model prior to
// checkout. Carts are transient and never touch persisted unit status.
type CartLine struct {
	GeneratorID string `json:"generatorId"`
	Quantity    int32  `json:"quantity"`
}
