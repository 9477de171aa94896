package api

import "html/template"

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate":          formatTemplateDate,
		"t":                   templateTranslate,
		"tf":                  templateTranslatef,
		"trimesterLabel":      templateTrimesterLabel,
		"severityLabel":       templateSeverityLabel,
		"severityDescription": templateSeverityDescription,
		"symptomTitle":        templateSymptomTitle,
		"weekPath":            templateWeekPath,
		"symptomWeekPath":     templateSymptomWeekPath,
		"isActiveRoute":       isActiveTemplateRoute,
		"dict":                templateDict,
	}
}
