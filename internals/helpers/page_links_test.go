// file: internals/helpers/page_links_test.go
package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"kosong", 0, 1, 20, 1, false, false},
		{"pas satu halaman", 20, 1, 20, 1, false, false},
		{"lebih satu baris", 21, 1, 20, 2, true, false},
		{"halaman tengah", 100, 3, 20, 5, true, true},
		{"halaman terakhir", 100, 5, 20, 5, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.totalPages {
				t.Errorf("TotalPages = %d, mau %d", p.TotalPages, tc.totalPages)
			}
			if p.HasNext != tc.hasNext {
				t.Errorf("HasNext = %v, mau %v", p.HasNext, tc.hasNext)
			}
			if p.HasPrev != tc.hasPrev {
				t.Errorf("HasPrev = %v, mau %v", p.HasPrev, tc.hasPrev)
			}
		})
	}
}

func TestBuildPageLinksFirstPage(t *testing.T) {
	p := BuildPaginationFromPage(100, 1, 20) // 5 halaman
	links := BuildPageLinks(p)

	// first + prev disabled di halaman pertama
	if !links[0].Disabled || links[0].Label != "first" {
		t.Errorf("links[0] = %+v", links[0])
	}
	if !links[1].Disabled || links[1].Label != "prev" {
		t.Errorf("links[1] = %+v", links[1])
	}

	var active *PageLink
	for i := range links {
		if links[i].Active {
			active = &links[i]
		}
	}
	if active == nil || active.Label != "1" {
		t.Fatalf("halaman aktif = %+v, mau 1", active)
	}
}

func TestBuildPageLinksWindowAroundActive(t *testing.T) {
	p := BuildPaginationFromPage(200, 5, 20) // 10 halaman, aktif di 5
	links := BuildPageLinks(p)

	var numbers []string
	for _, l := range links {
		switch l.Label {
		case "first", "prev", "next", "last":
			continue
		}
		numbers = append(numbers, l.Label)
	}
	want := []string{"3", "4", "5", "6", "7"}
	if len(numbers) != len(want) {
		t.Fatalf("nomor halaman = %v, mau %v", numbers, want)
	}
	for i := range want {
		if numbers[i] != want[i] {
			t.Errorf("numbers[%d] = %s, mau %s", i, numbers[i], want[i])
		}
	}

	// next & last aktif (bukan halaman terakhir)
	last := links[len(links)-1]
	if last.Disabled || last.Page == nil || *last.Page != 10 {
		t.Errorf("last = %+v", last)
	}
}
