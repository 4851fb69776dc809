// Package generate produces seed records from fixture pools.
// The default generator draws from crypto/rand; a seeded generator gives
// reproducible output for the same seed and fixtures.
package generate

// Product is a catalog row.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

// Columns returns the Product table columns in insert order.
func (Product) Columns() []string {
	return []string{"id", "name", "description", "price"}
}

// Values returns the row values matching Columns.
func (p Product) Values() []any {
	return []any{p.ID, p.Name, p.Description, p.Price}
}

// Credential is a login row.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (Credential) Columns() []string {
	return []string{"username", "password"}
}

func (c Credential) Values() []any {
	return []any{c.Username, c.Password}
}

// Profile is a credential with a postal address.
type Profile struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

func (Profile) Columns() []string {
	return []string{"username", "password", "address"}
}

func (p Profile) Values() []any {
	return []any{p.Username, p.Password, p.Address}
}
