// Package schema holds the static input form definition of the unified
// employment contract.
package schema

import "github.com/ensaf/contracts-service/internal/model"

var (
	contractTypeOptions = []string{"محدد المدة / Fixed-term", "غير محدد المدة / Open-ended"}
	idTypeOptions       = []string{"هوية وطنية / National ID", "إقامة / Resident ID"}
	genderOptions       = []string{"ذكر / Male", "أنثى / Female"}
	maritalOptions      = []string{"أعزب / Single", "متزوج / Married"}
	yesNoOptions        = []string{"نعم / Yes", "لا / No"}
)

func text(id, ar, en string) model.FieldDefinition {
	return model.FieldDefinition{ID: id, LabelAR: ar, LabelEN: en, Kind: model.FieldKindText}
}

func required(f model.FieldDefinition) model.FieldDefinition {
	f.Required = true
	return f
}

func withKind(f model.FieldDefinition, kind model.FieldKind) model.FieldDefinition {
	f.Kind = kind
	return f
}

func selectOf(id, ar, en string, options []string) model.FieldDefinition {
	return model.FieldDefinition{ID: id, LabelAR: ar, LabelEN: en, Kind: model.FieldKindSelect, Options: options}
}

func number(id, ar, en, def string) model.FieldDefinition {
	return model.FieldDefinition{ID: id, LabelAR: ar, LabelEN: en, Kind: model.FieldKindNumber, Default: def}
}

func date(id, ar, en string) model.FieldDefinition {
	return withKind(text(id, ar, en), model.FieldKindDate)
}

func email(id, ar, en string) model.FieldDefinition {
	return withKind(text(id, ar, en), model.FieldKindEmail)
}

var sections = []model.FieldSection{
	{
		Key: "contract_info", TitleAR: "بيانات العقد", TitleEN: "Contract Information", Number: 1,
		Fields: []model.FieldDefinition{
			text("contract_number", "رقم العقد", "Contract No."),
			selectOf("contract_type", "نوع العقد من حيث مدته", "Contract Type", contractTypeOptions),
			date("contract_date", "تاريخ إبرام العقد", "Contract Execution Date"),
			date("start_date", "تاريخ مباشرة العمل", "Starting Date"),
			date("end_date", "تاريخ نهاية العقد", "Contract End Date"),
			text("contract_location", "مكان إبرام العقد", "Contract Execution Location"),
		},
	},
	{
		Key: "first_party", TitleAR: "بيانات الطرف الأول (شخص اعتباري)", TitleEN: "First Party's Information (Legal Person)", Number: 2,
		Fields: []model.FieldDefinition{
			required(text("employer_name", "اسم المنشأة (صاحب العمل)", "Establishment Name (Employer)")),
			text("employer_type", "نوع المنشأة", "Establishment Type"),
			text("employer_hrsd_id", "رقم تسجيل HRSD", "HRSD Registration Number"),
			text("employer_unified_no", "الرقم الوطني الموحد", "Unified National Number"),
			text("employer_address", "العنوان الوطني", "National Address"),
			text("employer_phone", "رقم هاتف المنشأة", "Phone Number"),
			email("employer_email", "البريد الإلكتروني", "Email"),
			text("employer_rep_name", "ممثل المنشأة في التوقيع", "Signatory Representative"),
			text("employer_rep_id", "رقم هوية الممثل", "Representative ID"),
			text("employer_rep_capacity", "صفته", "Capacity"),
		},
	},
	{
		Key: "second_party", TitleAR: "بيانات الطرف الثاني", TitleEN: "Second Party's Information", Number: 3,
		Fields: []model.FieldDefinition{
			required(text("employee_name", "اسم العامل", "Employee Name")),
			required(text("employee_nationality", "الجنسية", "Nationality")),
			selectOf("employee_id_type", "نوع الهوية", "ID Type", idTypeOptions),
			required(text("employee_id_number", "رقم الهوية", "ID Number")),
			text("employee_passport", "رقم الجواز", "Passport Number"),
			selectOf("employee_gender", "الجنس", "Gender", genderOptions),
			selectOf("employee_marital_status", "الحالة الاجتماعية", "Marital Status", maritalOptions),
			date("employee_birth_date", "تاريخ الميلاد", "Birth Date"),
			text("employee_address", "العنوان الوطني", "National Address"),
			text("employee_phone", "رقم الجوال", "Mobile Number"),
			email("employee_email", "البريد الإلكتروني", "Email"),
		},
	},
	{
		Key: "job_info", TitleAR: "المهنة ومعلومات العمل", TitleEN: "Profession & Work Information", Number: 4,
		Fields: []model.FieldDefinition{
			required(text("job_title", "المسمى الوظيفي", "Job Title")),
			required(text("work_location", "مقر العمل (المدينة)", "Work Location (City)")),
		},
	},
	{
		Key: "contract_duration", TitleAR: "مدة العقد", TitleEN: "Contract Period", Number: 5,
		Fields: []model.FieldDefinition{
			number("duration_months", "مدة العقد (بالأشهر)", "Duration (Months)", "12"),
			selectOf("auto_renewal", "التجديد التلقائي", "Auto Renewal", yesNoOptions),
		},
	},
	{
		Key: "probation", TitleAR: "فترة التجربة", TitleEN: "Probationary Period", Number: 6,
		Fields: []model.FieldDefinition{
			number("probation_days", "مدة التجربة (بالأيام)", "Probation (Days)", "90"),
		},
	},
	{
		Key: "working_hours", TitleAR: "ساعات العمل والراحة الأسبوعية", TitleEN: "Work Hours & Weekly Rest", Number: 7,
		Fields: []model.FieldDefinition{
			number("working_days", "أيام العمل/أسبوع", "Working Days/Week", "5"),
			number("working_hours", "ساعات العمل/أسبوع", "Working Hours/Week", "48"),
			number("rest_days", "أيام الراحة/أسبوع", "Rest Days/Week", "2"),
		},
	},
	{
		Key: "annual_leave", TitleAR: "الإجازات السنوية", TitleEN: "Annual Leaves", Number: 8,
		Fields: []model.FieldDefinition{
			number("vacation_days", "أيام الإجازة السنوية", "Annual Leave Days", "21"),
		},
	},
	{
		Key: "wage", TitleAR: "الأجر والمزايا", TitleEN: "Wage & Benefits", Number: 9,
		Fields: []model.FieldDefinition{
			required(number("basic_salary", "الأجر الأساسي (ريال)", "Basic Wage (SAR)", "")),
			number("housing_allowance", "بدل السكن (ريال)", "Housing Allowance (SAR)", "0"),
			number("transport_allowance", "بدل النقل (ريال)", "Transport Allowance (SAR)", "0"),
			number("other_allowances", "بدلات أخرى (ريال)", "Other Allowances (SAR)", "0"),
			number("gosi_deduction", "استقطاع التأمينات %", "GOSI Deduction %", "9.75"),
		},
	},
	{
		Key: "bank_info", TitleAR: "معلومات الحساب البنكي للطرف الثاني", TitleEN: "Bank Account Information", Number: 10,
		Fields: []model.FieldDefinition{
			text("bank_name", "اسم البنك", "Bank Name"),
			text("iban", "رقم الآيبان", "IBAN"),
		},
	},
}

// Sections returns a copy of the input sections in display order.
func Sections() []model.FieldSection {
	out := make([]model.FieldSection, len(sections))
	for i, section := range sections {
		fields := make([]model.FieldDefinition, len(section.Fields))
		for j, field := range section.Fields {
			if field.Options != nil {
				field.Options = append([]string(nil), field.Options...)
			}
			fields[j] = field
		}
		section.Fields = fields
		out[i] = section
	}
	return out
}

// Field looks up a field definition by id.
func Field(id string) (model.FieldDefinition, bool) {
	for _, section := range sections {
		for _, field := range section.Fields {
			if field.ID == id {
				if field.Options != nil {
					field.Options = append([]string(nil), field.Options...)
				}
				return field, true
			}
		}
	}
	return model.FieldDefinition{}, false
}

// RequiredFields lists the ids flagged as required, in display order.
func RequiredFields() []string {
	var ids []string
	for _, section := range sections {
		for _, field := range section.Fields {
			if field.Required {
				ids = append(ids, field.ID)
			}
		}
	}
	return ids
}
