package entity

// Actor identifica quién ejecuta un movimiento de stock: un usuario
// autenticado o el sistema (flujo de kiosco sin sesión). Se modela como
// tipo suma explícito en lugar de un puntero suelto para que el protocolo
// de ajuste no dependa de convenciones de nil.
type Actor struct {
	userID string
}

// ActorSistema es el actor anónimo de las operaciones de kiosco.
func ActorSistema() Actor {
	return Actor{}
}

// ActorIdentificado construye un actor a partir del ID de usuario del token.
// Un id vacío degrada a Sistema.
func ActorIdentificado(userID string) Actor {
	return Actor{userID: userID}
}

// UserID devuelve el ID del usuario y true si el actor está identificado.
func (a Actor) UserID() (string, bool) {
	return a.userID, a.userID != ""
}

// EsSistema indica si el actor es anónimo.
func (a Actor) EsSistema() bool {
	return a.userID == ""
}
