package views

import (
	"html/template"
	"strings"
)

var templateFuncs = template.FuncMap{
	"lower": strings.ToLower,
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"statusLabel": func(status string) string {
		return strings.ReplaceAll(status, "_", " ")
	},
	"fieldError": func(errors map[string]string, field string) string {
		return errors[field]
	},
	"isSelected": func(current, value string) bool {
		return current == value
	},
}
