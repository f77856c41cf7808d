package contract

import (
	"fmt"

	"github.com/ensaf/contracts-service/internal/model"
)

const (
	TitleAR = "عقد العمل الموحد"
	TitleEN = "Unified Employment Contract"
)

type values struct {
	sub    model.Submission
	salary model.SalaryBreakdown
}

// rowSpec describes one table row. The value comes from field, constant or
// compute, checked in that order; label overrides ar/en when set.
type rowSpec struct {
	ar, en         string
	field          string
	constant       string
	compute        func(v values) string
	label          func(v values) (ar, en string)
	noteAR, noteEN string
	highlight      bool
}

// param is a clause placeholder and the value used when it is blank.
type param struct {
	field    string
	fallback string
}

type sectionSpec struct {
	num              int
	titleAR, titleEN string
	kind             model.SectionKind

	rows               []rowSpec
	footerAR, footerEN string

	textAR, textEN string
	params         []param

	clauses []model.Clause
}

func field(ar, en, id string) rowSpec {
	return rowSpec{ar: ar, en: en, field: id}
}

func fieldWithNote(ar, en, id, noteAR, noteEN string) rowSpec {
	return rowSpec{ar: ar, en: en, field: id, noteAR: noteAR, noteEN: noteEN}
}

func amount(ar, en string, pick func(model.SalaryBreakdown) float64) rowSpec {
	return rowSpec{ar: ar, en: en, compute: func(v values) string { return sar(pick(v.salary)) }}
}

var sectionSpecs = []sectionSpec{
	{
		num: 1, titleAR: "بيانات العقد", titleEN: "Contract Information", kind: model.SectionKindRows,
		rows: []rowSpec{
			field("رقم العقد", "Contract No.", "contract_number"),
			fieldWithNote("نوع العقد من حيث مدته", "Contract Type", "contract_type",
				"عقد محدد المدة/ غير محدد المدة (يتم اختيار نوع العقد من قائمة منسدلة)",
				"Fixed-term Contract / Open-ended Contract (selected from dropdown)"),
			field("تاريخ إبرام العقد", "Contract Execution Date", "contract_date"),
			field("تاريخ مباشرة العمل", "Starting Date", "start_date"),
			fieldWithNote("تاريخ نهاية العقد", "Contract End Date", "end_date",
				"(للعقد محدد المدة)", "(Fixed-term Contract)"),
			field("مكان إبرام العقد", "Contract Execution Location", "contract_location"),
		},
	},
	{
		num: 2, titleAR: "بيانات الطرف الأول (شخص اعتباري)", titleEN: "First Party's Information (Legal Person)", kind: model.SectionKindRows,
		rows: []rowSpec{
			field("اسم المنشأة (صاحب العمل)", "Establishment Name (Employer)", "employer_name"),
			field("نوع المنشأة", "Establishment Type", "employer_type"),
			field("رقم تسجيل HRSD", "HRSD Registration Number", "employer_hrsd_id"),
			field("الرقم الوطني الموحد", "Unified National Number", "employer_unified_no"),
			field("العنوان الوطني", "National Address", "employer_address"),
			field("رقم الهاتف", "Phone Number", "employer_phone"),
			field("البريد الإلكتروني", "Email", "employer_email"),
			field("ممثل المنشأة في التوقيع", "Signatory Representative", "employer_rep_name"),
			field("رقم هوية الممثل", "Representative ID", "employer_rep_id"),
			field("صفته", "Capacity", "employer_rep_capacity"),
		},
		footerAR: "ويشار إليه فيما بعد بـ (الطرف الأول)",
		footerEN: "Hereinafter referred to as the (\"First Party\")",
	},
	{
		num: 3, titleAR: "بيانات الطرف الثاني", titleEN: "Second Party's Information", kind: model.SectionKindRows,
		rows: []rowSpec{
			field("اسم العامل", "Employee Name", "employee_name"),
			field("الجنسية", "Nationality", "employee_nationality"),
			field("نوع الهوية", "ID Type", "employee_id_type"),
			field("رقم الهوية", "ID Number", "employee_id_number"),
			fieldWithNote("رقم الجواز", "Passport Number", "employee_passport",
				"في حال كان العامل غير سعودي", "If non-Saudi"),
			field("الجنس", "Gender", "employee_gender"),
			field("الحالة الاجتماعية", "Marital Status", "employee_marital_status"),
			field("تاريخ الميلاد", "Birth Date", "employee_birth_date"),
			field("العنوان الوطني", "National Address", "employee_address"),
			field("رقم الجوال", "Mobile", "employee_phone"),
			field("البريد الإلكتروني", "Email", "employee_email"),
		},
		footerAR: "ويشار إليه فيما بعد بـ (الطرف الثاني)",
		footerEN: "Hereinafter referred to as the (\"Second Party\")",
	},
	{
		num: 4, titleAR: "المهنة ومعلومات العمل", titleEN: "Profession & Work's Location", kind: model.SectionKindRows,
		rows: []rowSpec{
			field("المسمى الوظيفي", "Job Title", "job_title"),
			{ar: "نطاق العمل", en: "Work Domain", constant: "داخل المملكة / Inside KSA"},
			field("مقر العمل (المدينة)", "Work Location (City)", "work_location"),
			{ar: "نوع عقد العمل", en: "Work Type", constant: "أصلي / Original Contract"},
		},
	},
	{
		num: 5, titleAR: "مدة العقد", titleEN: "Contract Period", kind: model.SectionKindClause,
		textAR: "5.1 يسري هذا العقد لمدة (%[1]s) شهراً ابتداءً من تاريخ مباشرة العمل الوارد في البند رقم (1).",
		textEN: "5.1 This contract is valid for (%[1]s) months starting from the commencement date in Clause (1).",
		params: []param{{"duration_months", "12"}},
	},
	{
		num: 6, titleAR: "فترة التجربة", titleEN: "Probationary Period", kind: model.SectionKindClause,
		textAR: "6.1 يخضع الطرف الثاني لفترة تجربة مدتها (%[1]s) يوماً.",
		textEN: "6.1 The Second Party is subject to a probationary period of (%[1]s) days.",
		params: []param{{"probation_days", "90"}},
	},
	{
		num: 7, titleAR: "ساعات العمل والراحة الأسبوعية", titleEN: "Work Hours & Weekly Rest", kind: model.SectionKindClause,
		textAR: "تحدد أيام العمل بـ (%[1]s) أيام وساعات العمل (%[2]s) ساعة أسبوعياً، مع (%[3]s) أيام راحة.",
		textEN: "Working days: (%[1]s) days/week, (%[2]s) hours/week, with (%[3]s) rest days.",
		params: []param{{"working_days", "5"}, {"working_hours", "48"}, {"rest_days", "2"}},
	},
	{
		num: 8, titleAR: "الإجازات السنوية", titleEN: "Annual Leaves", kind: model.SectionKindClause,
		textAR: "8.1 يستحق الطرف الثاني إجازة سنوية مدفوعة الأجر مدتها (%[1]s) يوماً.",
		textEN: "8.1 The Second Party is entitled to (%[1]s) days paid annual leave.",
		params: []param{{"vacation_days", "21"}},
	},
	{
		num: 9, titleAR: "الأجر والمزايا", titleEN: "Wage & Benefits", kind: model.SectionKindRows,
		rows: []rowSpec{
			amount("الأجر الأساسي", "Basic Wage", func(s model.SalaryBreakdown) float64 { return s.Basic }),
			amount("بدل السكن", "Housing Allowance", func(s model.SalaryBreakdown) float64 { return s.Housing }),
			amount("بدل النقل", "Transport Allowance", func(s model.SalaryBreakdown) float64 { return s.Transport }),
			amount("بدلات أخرى", "Other Allowances", func(s model.SalaryBreakdown) float64 { return s.Other }),
			withHighlight(amount("إجمالي الأجر", "Total Wage", func(s model.SalaryBreakdown) float64 { return s.Total })),
			{
				label: func(v values) (string, string) {
					rate := FormatRate(v.salary.DeductionRate)
					return fmt.Sprintf("استقطاع التأمينات (%s%%)", rate), fmt.Sprintf("GOSI Deduction (%s%%)", rate)
				},
				compute: func(v values) string { return "-" + sar(v.salary.DeductionAmount) },
			},
			withHighlight(amount("صافي الأجر", "Net Wage", func(s model.SalaryBreakdown) float64 { return s.Net })),
		},
	},
	{
		num: 10, titleAR: "معلومات الحساب البنكي للطرف الثاني", titleEN: "Bank Account Information", kind: model.SectionKindRows,
		rows: []rowSpec{
			field("اسم البنك", "Bank Name", "bank_name"),
			field("رقم الآيبان", "IBAN", "iban"),
		},
	},
	{num: 11, titleAR: "التزامات الطرف الأول", titleEN: "First Party's Obligations", kind: model.SectionKindClauses, clauses: firstPartyObligations},
	{num: 12, titleAR: "التزامات الطرف الثاني", titleEN: "Second Party's Obligations", kind: model.SectionKindClauses, clauses: secondPartyObligations},
	{num: 13, titleAR: "النظام واجب التطبيق وتسوية النزاعات", titleEN: "Applicable Law and Settlement of Disputes", kind: model.SectionKindClauses, clauses: disputeClauses},
	{num: 14, titleAR: "أحكام عامة", titleEN: "General Provisions", kind: model.SectionKindClauses, clauses: generalProvisions},
	{num: 15, titleAR: "الشروط الإضافية (اختياري)", titleEN: "Additional Terms (Optional)", kind: model.SectionKindClauses, clauses: additionalTerms},
	{num: 16, titleAR: "الملحق", titleEN: "Appendix", kind: model.SectionKindClauses},
}

func withHighlight(row rowSpec) rowSpec {
	row.highlight = true
	return row
}
