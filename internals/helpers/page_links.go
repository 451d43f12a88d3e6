// file: internals/helpers/page_links.go
package helper

import "strconv"

// PageLink adalah satu tombol navigasi halaman. Page nil + Disabled=true
// berarti tombol tidak bisa diklik (mis. "prev" di halaman pertama).
type PageLink struct {
	Label    string `json:"label"`
	Page     *int   `json:"page,omitempty"`
	Active   bool   `json:"active"`
	Disabled bool   `json:"disabled"`
}

// jendela nomor halaman di kiri/kanan halaman aktif
const pageLinkWindow = 2

// BuildPageLinks menghasilkan deretan link: first, prev, nomor halaman
// (berjendela), next, last. Link yang tidak tersedia di-disable, bukan
// dihilangkan, supaya layout navigasi FE stabil.
func BuildPageLinks(p Pagination) []PageLink {
	links := make([]PageLink, 0, p.TotalPages+4)

	links = append(links, navLink("first", 1, p.HasPrev))
	links = append(links, navLink("prev", p.Page-1, p.HasPrev))

	from := p.Page - pageLinkWindow
	if from < 1 {
		from = 1
	}
	to := p.Page + pageLinkWindow
	if to > p.TotalPages {
		to = p.TotalPages
	}
	for n := from; n <= to; n++ {
		page := n
		links = append(links, PageLink{
			Label:  strconv.Itoa(n),
			Page:   &page,
			Active: n == p.Page,
		})
	}

	links = append(links, navLink("next", p.Page+1, p.HasNext))
	links = append(links, navLink("last", p.TotalPages, p.HasNext))
	return links
}

func navLink(label string, page int, enabled bool) PageLink {
	if !enabled {
		return PageLink{Label: label, Disabled: true}
	}
	return PageLink{Label: label, Page: &page}
}
