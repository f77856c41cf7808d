package contract

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ensaf/contracts-service/internal/model"
)

// DefaultDeductionRate is the GOSI percentage applied when none is submitted.
const DefaultDeductionRate = 9.75

// ParseAmount is best-effort coercion with zero-fallback: blank, unparsable
// and non-finite input all yield fallback. It never fails.
func ParseAmount(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return fallback
	}
	return value
}

// FormatAmount renders value with two decimals and thousands separators.
func FormatAmount(value float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", value)
}

// FormatRate renders a percentage without trailing zeros (9.75, 10, 12.5).
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

func salaryFor(sub model.Submission) model.SalaryBreakdown {
	basic := ParseAmount(sub.Get("basic_salary"), 0)
	housing := ParseAmount(sub.Get("housing_allowance"), 0)
	transport := ParseAmount(sub.Get("transport_allowance"), 0)
	other := ParseAmount(sub.Get("other_allowances"), 0)
	rate := ParseAmount(sub.Get("gosi_deduction"), DefaultDeductionRate)

	total := basic + housing + transport + other
	deduction := total * (rate / 100)
	return model.SalaryBreakdown{
		Basic:           basic,
		Housing:         housing,
		Transport:       transport,
		Other:           other,
		Total:           total,
		DeductionRate:   rate,
		DeductionAmount: deduction,
		Net:             total - deduction,
	}
}

func sar(value float64) string {
	return FormatAmount(value) + " ريال / SAR"
}
