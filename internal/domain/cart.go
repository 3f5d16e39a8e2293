package domain

// CartLine is a single product entry in a cart. The product is a value
// snapshot taken at add time; quantity lives on the line, never on the
// product, so the same product can sit in many carts without aliasing.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Customer is the contact snapshot bound to a cart. It carries no identity
// relation to any customer store; it is just the last value set.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Cart struct {
	ID       int64      `json:"id"`
	Lines    []CartLine `json:"lines"`
	Customer *Customer  `json:"customer,omitempty"`
}
