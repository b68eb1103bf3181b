package dogs

// Dog es un perro del refugio, opcionalmente asignado a un adoptante.
type Dog struct {
	ID        int64
	Name      string
	Weight    float64
	AdopterID *int64
}

// Listing es la vista desnormalizada de un perro con el nombre de su
// adoptante. AdopterName es nil cuando el perro no tiene adoptante.
type Listing struct {
	ID          int64
	Name        string
	Weight      float64
	AdopterName *string
}

type NewDog struct {
	Name      string
	Weight    float64
	AdopterID *int64
}
