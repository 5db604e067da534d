package handlers

import (
	"fmt"
	"net/http"
	"strings"
)

// gated areas are kept out of search results
var disallowedPaths = []string{"/admin", "/auth", "/dashboard", "/api"}

// publicPaths are the crawlable site sections listed in the sitemap
var publicPaths = []string{
	"/",
	"/services",
	"/suburbs",
	"/pricing",
	"/blog",
	"/quote",
	"/contact",
}

// robotsTxt serves crawl directives excluding the gated areas
func (r *Router) robotsTxt(w http.ResponseWriter, req *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	for _, p := range disallowedPaths {
		fmt.Fprintf(&b, "Disallow: %s\n", p)
	}
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", r.cfg.PublicBaseURL)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(b.String()))
}

// sitemapXML lists the public pages only
func (r *Router) sitemapXML(w http.ResponseWriter, req *http.Request) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, p := range publicPaths {
		fmt.Fprintf(&b, "  <url><loc>%s%s</loc></url>\n", r.cfg.PublicBaseURL, strings.TrimSuffix(p, "/"))
	}
	b.WriteString("</urlset>\n")

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(b.String()))
}
