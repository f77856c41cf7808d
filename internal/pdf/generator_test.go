package pdf

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensaf/contracts-service/internal/arabic"
	"github.com/ensaf/contracts-service/internal/contract"
	"github.com/ensaf/contracts-service/internal/model"
)

func TestPathResolverOrder(t *testing.T) {
	present := map[string]bool{
		"/usr/share/fonts/truetype/freefont/FreeSerif.ttf":     true,
		"/usr/share/fonts/truetype/freefont/FreeSerifBold.ttf": true,
		"/srv/fonts/FreeSerif.ttf":                             true,
	}
	r := NewPathResolver("/srv/fonts")
	r.exists = func(path string) bool { return present[path] }

	files, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/srv/fonts/FreeSerif.ttf", files.Regular)
	assert.Empty(t, files.Bold, "missing bold face falls back to regular")
}

func TestPathResolverSystemFallback(t *testing.T) {
	r := NewPathResolver("")
	r.exists = func(path string) bool {
		return path == "/usr/share/fonts/gnu-free/FreeSerif.ttf" || path == "/usr/share/fonts/gnu-free/FreeSerifBold.ttf"
	}

	files, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/fonts/gnu-free/FreeSerif.ttf", files.Regular)
	assert.Equal(t, "/usr/share/fonts/gnu-free/FreeSerifBold.ttf", files.Bold)
}

func TestPathResolverNotFound(t *testing.T) {
	r := NewPathResolver("")
	r.exists = func(string) bool { return false }

	_, err := r.Resolve()
	assert.ErrorIs(t, err, ErrFontNotFound)

	_, err = NewGenerator(r)
	assert.ErrorIs(t, err, ErrFontNotFound)
}

func TestRenderErrorCarriesTrace(t *testing.T) {
	cause := errors.New("boom")
	err := &RenderError{Err: cause, Trace: "goroutine 1 [running]"}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), "goroutine 1")
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(NewPathResolver("../../fonts"))
	if errors.Is(err, ErrFontNotFound) {
		t.Skip("no arabic-capable font installed")
	}
	require.NoError(t, err)
	g.now = func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) }
	return g
}

func sampleSubmission() model.Submission {
	return model.Submission{
		"employer_name":        "شركة الأفق للتقنية",
		"employee_name":        "محمد عبدالله",
		"employee_nationality": "سعودي",
		"employee_id_number":   "1012345678",
		"job_title":            "مهندس برمجيات",
		"work_location":        "الرياض",
		"basic_salary":         "10000",
		"housing_allowance":    "2500",
		"transport_allowance":  "1000",
		"other_allowances":     "500",
		"iban":                 "SA03 8000 0000 6080 1016 7519",
		"contract_date":        "2025-01-15",
	}
}

func TestGenerateRendersPDF(t *testing.T) {
	g := newTestGenerator(t)
	doc := contract.Build(sampleSubmission(), time.Now())

	out, err := g.Generate(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 1000)
}

func TestGenerateEmptySubmission(t *testing.T) {
	g := newTestGenerator(t)
	doc := contract.Build(nil, time.Now())

	out, err := g.Generate(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestGenerateDiffersByField(t *testing.T) {
	g := newTestGenerator(t)
	a := sampleSubmission()
	b := sampleSubmission()
	b["employee_name"] = "خالد سعد"

	outA, err := g.Generate(contract.Build(a, time.Now()))
	require.NoError(t, err)
	outB, err := g.Generate(contract.Build(b, time.Now()))
	require.NoError(t, err)
	assert.NotEqual(t, outA, outB)
}

func TestGenerateLongClausesPaginate(t *testing.T) {
	g := newTestGenerator(t)
	doc := contract.Build(sampleSubmission(), time.Now())
	long := make([]model.Clause, 40)
	for i := range long {
		long[i] = model.Clause{
			AR: "يلتزم الطرف الأول بتوفير بيئة عمل آمنة وصحية للعامل وفقاً للأنظمة واللوائح المعمول بها في المملكة",
			EN: "The first party shall provide a safe and healthy work environment in accordance with applicable regulations.",
		}
	}
	doc.Sections = append(doc.Sections, model.ContractSection{
		Num: 17, TitleAR: "أحكام إضافية", TitleEN: "Extra Terms", Kind: model.SectionKindClauses, Clauses: long,
	})

	out, err := g.Generate(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPrintable(t *testing.T) {
	assert.Equal(t, "Acme Corp \uFFFD", printable("Acme Corp 🚀"))
	assert.Equal(t, "شركة \uFFFD", printable("شركة 🚀"))
	assert.Equal(t, "a\uFFFDb", printable("a\xffb"))
	assert.Equal(t, "SA03 8000 ١٢٣ \u00a0ﻻ", printable("SA03 8000 ١٢٣ \u00a0ﻻ"))
}

func TestIsBreakKeepsNonBreakingSpace(t *testing.T) {
	words := strings.FieldsFunc("1"+headerGap+"أطراف العقد", isBreak)
	assert.Equal(t, []string{"1" + headerGap + "أطراف", "العقد"}, words)
}

func TestGenerateNonBMPRunes(t *testing.T) {
	g := newTestGenerator(t)
	for _, name := range []string{"Acme Corp 🚀", "شركة 🚀"} {
		t.Run(name, func(t *testing.T) {
			sub := sampleSubmission()
			sub["employer_name"] = name
			sub["employee_email"] = "🚀@example.com"

			doc := contract.Build(sub, time.Now())
			doc.TitleEN = "Contract 🚀"
			out, err := g.Generate(doc)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		})
	}
}

type wrapped struct {
	col   column
	lines []string
}

func generateWrapped(t *testing.T, sub model.Submission) []wrapped {
	t.Helper()
	g := newTestGenerator(t)
	var got []wrapped
	g.onWrap = func(col column, lines []string) {
		got = append(got, wrapped{col: col, lines: lines})
	}
	_, err := g.Generate(contract.Build(sub, time.Now()))
	require.NoError(t, err)
	return got
}

func findColumn(t *testing.T, got []wrapped, match func(column) bool) wrapped {
	t.Helper()
	for _, w := range got {
		if match(w.col) {
			return w
		}
	}
	require.Fail(t, "column not rendered")
	return wrapped{}
}

func TestGenerateShapesArabicValues(t *testing.T) {
	sub := sampleSubmission()
	sub["work_location"] = "الرياض 12611"
	got := generateWrapped(t, sub)

	employer := findColumn(t, got, func(c column) bool { return c.text == "شركة الأفق للتقنية" })
	assert.True(t, employer.col.rtl)
	require.Len(t, employer.lines, 1)
	assert.Equal(t, arabic.Display("شركة الأفق للتقنية"), employer.lines[0])
	assert.NotEqual(t, "شركة الأفق للتقنية", employer.lines[0])
	assert.True(t, strings.ContainsFunc(employer.lines[0], func(r rune) bool { return r >= 0xFE70 && r <= 0xFEFF }),
		"value is drawn in presentation forms")

	location := findColumn(t, got, func(c column) bool { return c.text == "الرياض 12611" })
	require.Len(t, location.lines, 1)
	assert.Contains(t, location.lines[0], "12611")

	iban := findColumn(t, got, func(c column) bool { return c.text == "SA03 8000 0000 6080 1016 7519" })
	assert.False(t, iban.col.rtl)
	assert.Equal(t, []string{"SA03 8000 0000 6080 1016 7519"}, iban.lines)
}

func TestGenerateHeaderKeepsGap(t *testing.T) {
	got := generateWrapped(t, sampleSubmission())

	header := findColumn(t, got, func(c column) bool { return c.rtl && strings.HasPrefix(c.text, "1"+headerGap) })
	require.Len(t, header.lines, 1)
	assert.True(t, strings.HasSuffix(header.lines[0], headerGap+"1"), "number sits at the right edge after the gap")
}
