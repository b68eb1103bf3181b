package adopters

// Adopter es una persona habilitada para adoptar perros.
// Email es un dato de contacto opaco: se guarda y se devuelve tal cual.
type Adopter struct {
	ID    int64
	Name  string
	Email *string
}

// NewAdopter es el registro a insertar.
// Name es puntero para que un "name" ausente llegue al store como NULL
// y lo rechace la constraint NOT NULL, no esta capa.
type NewAdopter struct {
	Name  *string
	Email *string
}

// Field marca presencia explícita en un PATCH.
// Set=false: no tocar. Set=true, Value=nil: escribir NULL.
type Field[T any] struct {
	Set   bool
	Value *T
}

func SetField[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

func NullField[T any]() Field[T] {
	return Field[T]{Set: true}
}

// Patch es un update parcial (sparse): sólo cambian los campos presentes.
type Patch struct {
	Name  Field[string]
	Email Field[string]
}

func (p Patch) Empty() bool {
	return !p.Name.Set && !p.Email.Set
}

// Apply devuelve a con los campos presentes en p aplicados.
// Un Name NULL deja Name vacío; los stores lo rechazan antes de llegar aquí.
func (p Patch) Apply(a Adopter) Adopter {
	if p.Name.Set {
		if p.Name.Value != nil {
			a.Name = *p.Name.Value
		} else {
			a.Name = ""
		}
	}
	if p.Email.Set {
		if p.Email.Value != nil {
			v := *p.Email.Value
			a.Email = &v
		} else {
			a.Email = nil
		}
	}
	return a
}
