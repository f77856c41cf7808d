package model

type FieldKind string

const (
	FieldKindText   FieldKind = "text"
	FieldKindSelect FieldKind = "select"
	FieldKindDate   FieldKind = "date"
	FieldKindNumber FieldKind = "number"
	FieldKindEmail  FieldKind = "email"
)

type FieldDefinition struct {
	ID       string    `json:"id"`
	LabelAR  string    `json:"label_ar"`
	LabelEN  string    `json:"label_en"`
	Kind     FieldKind `json:"type"`
	Options  []string  `json:"options,omitempty"`
	Default  string    `json:"default,omitempty"`
	Required bool      `json:"required,omitempty"`
}

type FieldSection struct {
	Key     string            `json:"key"`
	TitleAR string            `json:"title_ar"`
	TitleEN string            `json:"title_en"`
	Number  int               `json:"number"`
	Fields  []FieldDefinition `json:"fields"`
}
