package services

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
	"time"
)

const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapEntry struct {
	Loc             string    `json:"loc"`
	LastModified    time.Time `json:"lastmod"`
	ChangeFrequency string    `json:"changefreq"`
	Priority        float64   `json:"priority"`
}

type sitemapURLSet struct {
	XMLName   xml.Name     `xml:"urlset"`
	Namespace string       `xml:"xmlns,attr"`
	URLs      []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// BuildSitemap turns the route table into absolute sitemap entries.
func BuildSitemap(table RouteTable, baseURL string, lastModified time.Time) []SitemapEntry {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	routes := table.Routes()

	entries := make([]SitemapEntry, 0, len(routes))
	for _, route := range routes {
		loc := base + route.Path
		if route.Path == HomePath && base != "" {
			loc = base + "/"
		}
		entries = append(entries, SitemapEntry{
			Loc:             loc,
			LastModified:    lastModified,
			ChangeFrequency: route.ChangeFrequency,
			Priority:        route.Priority,
		})
	}
	return entries
}

func RenderSitemapXML(entries []SitemapEntry) ([]byte, error) {
	document := sitemapURLSet{
		Namespace: SitemapNamespace,
		URLs:      make([]sitemapURL, 0, len(entries)),
	}
	for _, entry := range entries {
		url := sitemapURL{
			Loc:        entry.Loc,
			ChangeFreq: entry.ChangeFrequency,
			Priority:   formatPriority(entry.Priority),
		}
		if !entry.LastModified.IsZero() {
			url.LastMod = entry.LastModified.UTC().Format(isoDateLayout)
		}
		document.URLs = append(document.URLs, url)
	}

	var buffer bytes.Buffer
	buffer.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buffer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(document); err != nil {
		return nil, err
	}
	buffer.WriteByte('\n')
	return buffer.Bytes(), nil
}

func formatPriority(priority float64) string {
	formatted := strconv.FormatFloat(priority, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}
