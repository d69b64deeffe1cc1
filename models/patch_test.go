package models

import (
	"encoding/json"
	"testing"
)

// O contrato do PUT depende de distinguir campo ausente, campo com null e
// campo com valor; esses testes fixam os três estados.
func TestTaskPatchFieldStates(t *testing.T) {
	var patch TaskPatch
	body := `{"title":"Estudar Go","description":null,"completed":true}`
	if err := json.Unmarshal([]byte(body), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !patch.Title.Set || !patch.Title.Valid || patch.Title.Value != "Estudar Go" {
		t.Errorf("title deveria estar presente com valor, veio %+v", patch.Title)
	}
	if !patch.Description.Set || patch.Description.Valid {
		t.Errorf("description deveria estar presente com null, veio %+v", patch.Description)
	}
	if !patch.Completed.Set || !patch.Completed.Valid || !patch.Completed.Value {
		t.Errorf("completed deveria estar presente com true, veio %+v", patch.Completed)
	}
	if patch.DueDate.Set || patch.Priority.Set {
		t.Errorf("campos ausentes não deveriam estar marcados: %+v", patch)
	}
	if patch.Empty() {
		t.Error("patch com campos não deveria ser vazio")
	}
}

func TestTaskPatchEmptyBody(t *testing.T) {
	var patch TaskPatch
	if err := json.Unmarshal([]byte(`{}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !patch.Empty() {
		t.Errorf("corpo vazio deveria produzir patch vazio: %+v", patch)
	}
}

func TestFieldPtr(t *testing.T) {
	set := FieldOf(3)
	if p := set.Ptr(); p == nil || *p != 3 {
		t.Errorf("Ptr de campo com valor deveria devolver 3, veio %v", p)
	}

	cleared := NullField[int]()
	if p := cleared.Ptr(); p != nil {
		t.Errorf("Ptr de campo com null deveria ser nil, veio %v", *p)
	}
}

// A serialização do patch (usada pelo cliente) só pode emitir os campos
// presentes; um campo ausente serializado como null viraria limpeza.
func TestTaskPatchMarshalOmitsAbsent(t *testing.T) {
	patch := TaskPatch{
		Completed: FieldOf(true),
		DueDate:   NullField[string](),
	}
	data, err := json.Marshal(patch)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal do resultado: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("esperava só completed e dueDate, veio %s", data)
	}
	if string(raw["completed"]) != "true" {
		t.Errorf("completed serializado como %s", raw["completed"])
	}
	if string(raw["dueDate"]) != "null" {
		t.Errorf("dueDate limpo deveria serializar null, veio %s", raw["dueDate"])
	}
}
