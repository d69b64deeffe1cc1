package models

import "encoding/json"

// Field carrega um campo de atualização parcial. Set indica que o campo
// veio no corpo JSON; Valid indica que veio com valor (false = null).
type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// FieldOf constrói um campo presente com valor.
func FieldOf[T any](v T) Field[T] {
	return Field[T]{Set: true, Valid: true, Value: v}
}

// NullField constrói um campo presente com null (limpeza deliberada).
func NullField[T any]() Field[T] {
	return Field[T]{Set: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// IsZero permite que omitzero esconda campos ausentes na serialização.
func (f Field[T]) IsZero() bool {
	return !f.Set
}

// Ptr devolve o valor como ponteiro; nil quando o campo foi limpo com null.
func (f Field[T]) Ptr() *T {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
