// internal/service/script_service.go
package service

import (
	"strings"

	"github.com/duescall/duescall-backend/internal/config"
	"github.com/duescall/duescall-backend/internal/model"
)

// scriptTemplate is the spoken collection script. Placeholders are replaced
// per record; blank lines and indentation are collapsed before speaking.
const scriptTemplate = `
Namaste {name} ji. {company} se {officer} bol raha hu.
Aapke loan number {loan_no} ke baare me important update hai.
Aapka outstanding amount {amount} hai, jo {due_date} tak clear karna hai.
Kripya payment jaldi karein taaki late fees, legal notice, ya account impact se bach sake.
Agar aapne payment kar diya hai, to hume WhatsApp par receipt share karein.
Kisi bhi madad ke liye hamara contact number hai {officer_number}.
Dhanyavaad.
`

// ScriptService renders the per-customer call script. It is pure: any record
// is valid input and blank fields fall back to neutral defaults.
type ScriptService struct {
	Cfg config.AppConfig
}

// BuildScript produces the single-line spoken script for one customer.
func (s *ScriptService) BuildScript(rec model.CustomerRecord) string {
	data := map[string]string{
		"name":           fallback(rec.Name, "Customer"),
		"loan_no":        fallback(rec.LoanNo, "your loan"),
		"amount":         fallback(rec.Amount, "the due amount"),
		"due_date":       fallback(rec.DueDate, "the due date"),
		"company":        s.Cfg.CompanyName,
		"officer":        s.Cfg.OfficerName,
		"officer_number": s.Cfg.OfficerNumber,
	}
	return collapseLines(RenderTemplate(scriptTemplate, data))
}

func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// collapseLines trims every line and joins the non-blank ones with single
// spaces, so the output never contains a newline.
func collapseLines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}
