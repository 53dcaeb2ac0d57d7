package form

import "fmt"

// Mode is either Create or Editing(id). The zero value is Create.
type Mode struct {
	editing bool
	id      int64
}

func Create() Mode {
	return Mode{}
}

func Editing(id int64) Mode {
	return Mode{editing: true, id: id}
}

// ID returns the product being edited, if any.
func (m Mode) ID() (int64, bool) {
	return m.id, m.editing
}

func (m Mode) IsEditing() bool {
	return m.editing
}

func (m Mode) String() string {
	if m.editing {
		return fmt.Sprintf("editing(%d)", m.id)
	}
	return "create"
}
