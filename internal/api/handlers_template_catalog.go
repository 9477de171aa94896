package api

var pageTemplates = []string{
	"home",
	"weeks",
	"week",
	"symptoms",
	"symptom_week",
	"nutrition",
	"calculator",
	"not_found",
}
