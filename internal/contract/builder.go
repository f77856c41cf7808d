// Package contract maps a flat form submission onto the bilingual unified
// employment contract.
package contract

import (
	"fmt"
	"time"

	"github.com/ensaf/contracts-service/internal/model"
)

// SectionCount is the number of sections every built contract carries.
var SectionCount = len(sectionSpecs)

// Build never fails: a sparse submission yields empty values, never missing
// rows or sections.
func Build(sub model.Submission, now time.Time) model.ContractDocument {
	v := values{sub: sub, salary: salaryFor(sub)}

	date, ok := sub.Lookup("contract_date")
	if !ok {
		date = now.Format("2006-01-02")
	}

	doc := model.ContractDocument{
		TitleAR:  TitleAR,
		TitleEN:  TitleEN,
		Date:     date,
		Sections: make([]model.ContractSection, 0, len(sectionSpecs)),
		Salary:   v.salary,
	}
	for _, spec := range sectionSpecs {
		doc.Sections = append(doc.Sections, spec.build(v))
	}
	return doc
}

func (s sectionSpec) build(v values) model.ContractSection {
	section := model.ContractSection{
		Num:     s.num,
		TitleAR: s.titleAR,
		TitleEN: s.titleEN,
		Kind:    s.kind,
	}
	switch s.kind {
	case model.SectionKindRows:
		section.Rows = make([]model.Row, 0, len(s.rows))
		for _, row := range s.rows {
			section.Rows = append(section.Rows, row.build(v))
		}
		section.FooterAR = s.footerAR
		section.FooterEN = s.footerEN
	case model.SectionKindClause:
		args := make([]any, 0, len(s.params))
		for _, p := range s.params {
			value, ok := v.sub.Lookup(p.field)
			if !ok {
				value = p.fallback
			}
			args = append(args, value)
		}
		section.TextAR = fmt.Sprintf(s.textAR, args...)
		section.TextEN = fmt.Sprintf(s.textEN, args...)
	case model.SectionKindClauses:
		section.Clauses = append([]model.Clause{}, s.clauses...)
	}
	return section
}

func (r rowSpec) build(v values) model.Row {
	row := model.Row{
		AR:        r.ar,
		EN:        r.en,
		NoteAR:    r.noteAR,
		NoteEN:    r.noteEN,
		Highlight: r.highlight,
	}
	if r.label != nil {
		row.AR, row.EN = r.label(v)
	}
	switch {
	case r.field != "":
		row.Val = v.sub.Get(r.field)
	case r.constant != "":
		row.Val = r.constant
	case r.compute != nil:
		row.Val = r.compute(v)
	}
	return row
}
