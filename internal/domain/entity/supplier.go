package entity

// Proveedor de telas. Nombre único; Contacto es texto libre (tel/email).
type Proveedor struct {
	ID       string
	Nombre   string
	Contacto string
}
