package entity

// Categoria agrupa productos (ej. "Toallas", "Cortinas"). Nombre único.
type Categoria struct {
	ID     string
	Nombre string
}
