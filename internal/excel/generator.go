package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ensaf/contracts-service/internal/model"
)

const (
	ContractSheet = "العقد"
	SalarySheet   = "Salary"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes the contract as a workbook: one row per field or clause on
// the contract sheet and the raw salary figures on their own sheet.
func (g *Generator) Generate(doc model.ContractDocument) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", ContractSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := g.writeContract(file, ContractSheet, doc); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet(SalarySheet); err != nil {
		return nil, fmt.Errorf("create salary sheet: %w", err)
	}
	if err := g.writeSalary(file, SalarySheet, doc.Salary); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeContract(file *excelize.File, sheet string, doc model.ContractDocument) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", doc.TitleAR)
	set("A2", doc.TitleEN)
	set("A3", "Date")
	set("B3", doc.Date)

	tableRow := 5
	headers := []string{"#", "Section", "English", "Value", "العربية", "Note"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}
	if err := g.styleHeader(file, sheet, tableRow, len(headers)); err != nil {
		return err
	}

	row := tableRow + 1
	line := func(section model.ContractSection, en, val, ar, note string) {
		set(fmt.Sprintf("A%d", row), section.Num)
		set(fmt.Sprintf("B%d", row), section.TitleEN)
		set(fmt.Sprintf("C%d", row), en)
		set(fmt.Sprintf("D%d", row), val)
		set(fmt.Sprintf("E%d", row), ar)
		set(fmt.Sprintf("F%d", row), note)
		row++
	}

	for _, section := range doc.Sections {
		switch section.Kind {
		case model.SectionKindRows:
			for _, r := range section.Rows {
				line(section, r.EN, r.Val, r.AR, joinNote(r.NoteEN, r.NoteAR))
			}
			if section.FooterEN != "" || section.FooterAR != "" {
				line(section, section.FooterEN, "", section.FooterAR, "")
			}
		case model.SectionKindClause:
			line(section, section.TextEN, "", section.TextAR, "")
		case model.SectionKindClauses:
			if len(section.Clauses) == 0 {
				line(section, "", "", section.TitleAR, "")
			}
			for _, c := range section.Clauses {
				line(section, c.EN, "", c.AR, "")
			}
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 5)
	_ = file.SetColWidth(sheet, "B", "B", 28)
	_ = file.SetColWidth(sheet, "C", "C", 45)
	_ = file.SetColWidth(sheet, "D", "D", 30)
	_ = file.SetColWidth(sheet, "E", "E", 45)
	_ = file.SetColWidth(sheet, "F", "F", 40)
	return nil
}

func (g *Generator) writeSalary(file *excelize.File, sheet string, salary model.SalaryBreakdown) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Item")
	set("B1", "البند")
	set("C1", "Amount (SAR)")
	if err := g.styleHeader(file, sheet, 1, 3); err != nil {
		return err
	}

	items := []struct {
		en, ar string
		value  float64
	}{
		{"Basic Salary", "الأجر الأساسي", salary.Basic},
		{"Housing Allowance", "بدل السكن", salary.Housing},
		{"Transport Allowance", "بدل النقل", salary.Transport},
		{"Other Allowances", "بدلات أخرى", salary.Other},
		{"Total Salary", "إجمالي الأجر", salary.Total},
		{"GOSI Rate (%)", "نسبة التأمينات (%)", salary.DeductionRate},
		{"GOSI Deduction", "استقطاع التأمينات", salary.DeductionAmount},
		{"Net Salary", "صافي الأجر", salary.Net},
	}
	for i, item := range items {
		row := i + 2
		set(fmt.Sprintf("A%d", row), item.en)
		set(fmt.Sprintf("B%d", row), item.ar)
		set(fmt.Sprintf("C%d", row), item.value)
	}

	numFmt := "#,##0.00"
	style, err := file.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("salary style: %w", err)
	}
	_ = file.SetCellStyle(sheet, "C2", fmt.Sprintf("C%d", len(items)+1), style)

	_ = file.SetColWidth(sheet, "A", "B", 24)
	_ = file.SetColWidth(sheet, "C", "C", 16)
	return nil
}

func (g *Generator) styleHeader(file *excelize.File, sheet string, row, cols int) error {
	style, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1A7A7A"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(cols, row)
	return file.SetCellStyle(sheet, first, last, style)
}

func joinNote(en, ar string) string {
	switch {
	case en != "" && ar != "":
		return en + " / " + ar
	case en != "":
		return en
	default:
		return ar
	}
}
