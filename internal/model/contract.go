package model

import "encoding/json"

type SectionKind string

const (
	SectionKindRows    SectionKind = "rows"
	SectionKindClause  SectionKind = "clause"
	SectionKindClauses SectionKind = "clauses"
)

// ContractDocument is the bilingual contract tree handed to the renderers.
type ContractDocument struct {
	TitleAR  string            `json:"title_ar"`
	TitleEN  string            `json:"title_en"`
	Date     string            `json:"date"`
	Sections []ContractSection `json:"sections"`
	Salary   SalaryBreakdown   `json:"calculations"`
}

type ContractSection struct {
	Num     int         `json:"num"`
	TitleAR string      `json:"title_ar"`
	TitleEN string      `json:"title_en"`
	Kind    SectionKind `json:"kind"`

	// rows
	Rows     []Row  `json:"rows,omitempty"`
	FooterAR string `json:"footer_ar,omitempty"`
	FooterEN string `json:"footer_en,omitempty"`

	// clause
	TextAR string `json:"text_ar,omitempty"`
	TextEN string `json:"text_en,omitempty"`

	// clauses
	Clauses []Clause `json:"multi_clauses,omitempty"`
}

type plainSection ContractSection

// MarshalJSON adds the clause flag older clients switch on and always emits
// multi_clauses for clause lists, even an empty one.
func (s ContractSection) MarshalJSON() ([]byte, error) {
	out := struct {
		plainSection
		Clause  bool      `json:"clause,omitempty"`
		Clauses *[]Clause `json:"multi_clauses,omitempty"`
	}{plainSection: plainSection(s), Clause: s.Kind == SectionKindClause}
	if s.Kind == SectionKindClauses {
		clauses := s.Clauses
		if clauses == nil {
			clauses = []Clause{}
		}
		out.Clauses = &clauses
	}
	return json.Marshal(out)
}

// UnmarshalJSON infers a missing kind from the clause flag and the populated
// fields.
func (s *ContractSection) UnmarshalJSON(data []byte) error {
	var in struct {
		plainSection
		Clause bool `json:"clause"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*s = ContractSection(in.plainSection)
	if s.Kind == "" {
		s.Kind = s.inferKind(in.Clause)
	}
	return nil
}

func (s ContractSection) inferKind(clause bool) SectionKind {
	switch {
	case clause || s.TextAR != "" || s.TextEN != "":
		return SectionKindClause
	case s.Clauses != nil:
		return SectionKindClauses
	default:
		return SectionKindRows
	}
}

// Row is one label/value line. Val is always serialized, even when empty.
type Row struct {
	AR        string `json:"ar"`
	EN        string `json:"en"`
	Val       string `json:"val"`
	NoteAR    string `json:"note_ar,omitempty"`
	NoteEN    string `json:"note_en,omitempty"`
	Highlight bool   `json:"highlight,omitempty"`
}

func (r Row) HasNote() bool {
	return r.NoteAR != "" || r.NoteEN != ""
}

type Clause struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

type SalaryBreakdown struct {
	Basic           float64 `json:"basic"`
	Housing         float64 `json:"housing"`
	Transport       float64 `json:"transport"`
	Other           float64 `json:"other"`
	Total           float64 `json:"total"`
	DeductionRate   float64 `json:"gosi_rate"`
	DeductionAmount float64 `json:"gosi"`
	Net             float64 `json:"net"`
}
