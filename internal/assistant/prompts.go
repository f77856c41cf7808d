package assistant

import (
	"fmt"
	"strings"

	"github.com/ensaf/contracts-service/internal/knowledge"
	"github.com/ensaf/contracts-service/internal/model"
)

const (
	explainSections  = 5
	explainKBRunes   = 3000
	explainMaxTokens = 1000

	reviewTemplateSections = 10
	reviewTemplateRunes    = 4000
	reviewArticleRunes     = 3000
	reviewRegulations      = 20
	reviewRegulationRunes  = 2000
	reviewInputRunes       = 8000
	reviewMaxTokens        = 3000

	temperature = 0.7
)

// reviewChecklist is the set of standard sections a contract is compared with.
var reviewChecklist = []string{
	"Contract Information (بيانات العقد)",
	"First Party / Employer Information (بيانات الطرف الأول)",
	"Second Party / Employee Information (بيانات الطرف الثاني)",
	"Job Information (المهنة ومعلومات العمل)",
	"Contract Duration (مدة العقد)",
	"Probationary Period (فترة التجربة)",
	"Working Hours (ساعات العمل)",
	"Annual Leave (الإجازات)",
	"Wage & Benefits (الأجر والمزايا)",
	"Bank Account Info (معلومات الحساب البنكي)",
	"Employer Obligations (التزامات الطرف الأول)",
	"Employee Obligations (التزامات الطرف الثاني)",
	"Dispute Resolution (تسوية النزاعات)",
	"General Provisions (أحكام عامة)",
}

func explainSystem(lang model.Language, kb *knowledge.Base) string {
	var b strings.Builder
	b.WriteString("You are a legal assistant helping people understand Saudi employment contract clauses.\n")
	fmt.Fprintf(&b, "Give simple, clear explanations in %s.\n", lang.Name())
	b.WriteString("Be concise (2-3 paragraphs max). Highlight risks. Use examples.\n")
	b.WriteString("Always note this is educational only, not legal advice.")
	if kb != nil {
		b.WriteString("\n\nKnowledge Base Reference:\n")
		b.WriteString(truncate(knowledge.Excerpt(kb.Sections, explainSections, "  "), explainKBRunes))
	}
	return b.String()
}

func explainPrompt(clause string, lang model.Language) string {
	return fmt.Sprintf("Explain this contract clause simply:\n\"%s\"\n\nLanguage: %s", clause, lang.Name())
}

func reviewReference(kb *knowledge.Base) string {
	if kb == nil {
		return ""
	}
	var b strings.Builder
	if len(kb.ContractTemplate.Sections) > 0 {
		b.WriteString(truncate(knowledge.Excerpt(kb.ContractTemplate.Sections, reviewTemplateSections, " "), reviewTemplateRunes))
	}
	if len(kb.KeyArticles) > 0 {
		b.WriteString("\n\nKey Labor Law Articles:\n")
		b.WriteString(truncate(knowledge.Excerpt(kb.KeyArticles, -1, " "), reviewArticleRunes))
	}
	if len(kb.Regulations) > 0 {
		b.WriteString("\n\nExecutive Regulations (sample):\n")
		b.WriteString(truncate(knowledge.Excerpt(kb.Regulations, reviewRegulations, " "), reviewRegulationRunes))
	}
	return b.String()
}

func reviewSystem(lang model.Language, kb *knowledge.Base) string {
	var checklist strings.Builder
	for _, item := range reviewChecklist {
		checklist.WriteString("   - ")
		checklist.WriteString(item)
		checklist.WriteString("\n")
	}

	return fmt.Sprintf(`You are an expert legal contract reviewer specializing in Saudi Arabian Labor Law (نظام العمل السعودي).
Your task is to compare the user's uploaded contract against the standard unified employment contract template (عقد العمل الموحد) from the Ministry of Human Resources and Social Development.

Standard Contract Template Reference:
%s

IMPORTANT RULES:
- Respond ONLY in %s.
- You are NOT providing legal advice. You are providing an educational comparison only.
- Structure your response clearly with these sections:

1. **نظرة عامة / Overview**: Brief summary of the contract type and what it covers.

2. **البنود الموجودة / Present Clauses**: List the standard clauses that ARE present in the uploaded contract. Use ✅ emoji.

3. **البنود المفقودة / Missing Clauses**: List important standard clauses that are MISSING from the uploaded contract. Use ❌ emoji. Compare against these standard sections:
%s
4. **بنود تحتاج مراجعة / Clauses Needing Attention**: Identify any clauses that seem unclear, potentially risky, or deviate significantly from standard Saudi labor law. Use ⚠️ emoji.

5. **توصيات / Recommendations**: Provide 3-5 actionable recommendations for the user.

6. **ملاحظة / Disclaimer**: Always end with a note that this is an educational tool, not legal advice.

Be thorough but concise. Use bullet points for clarity.`, reviewReference(kb), lang.Name(), checklist.String())
}

func reviewPrompt(text string, lang model.Language) string {
	return fmt.Sprintf(`Please review and compare the following contract against the standard Saudi unified employment contract template:

--- CONTRACT TEXT ---
%s
--- END CONTRACT TEXT ---

Provide a detailed comparison in %s.`, truncate(text, reviewInputRunes), lang.Name())
}

// truncate keeps at most n code points of s.
func truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
