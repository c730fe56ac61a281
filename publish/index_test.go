package publish

import (
	"testing"
	"time"

	"github.com/vellumpress/vellum/site"
)

func datedPost(slug string, date time.Time) post {
	return post{doc: site.Document{
		Type:        site.TypeBlog,
		Slug:        slug,
		FrontMatter: site.FrontMatter{Title: slug, Date: date},
	}}
}

func TestSortPosts(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	posts := []post{
		datedPost("older", jan),
		datedPost("newer", feb),
		datedPost("undated", time.Time{}),
		datedPost("bravo", jan),
	}
	sortPosts(posts)

	want := []string{"newer", "bravo", "older", "undated"}
	for i, w := range want {
		if posts[i].doc.Slug != w {
			t.Fatalf("Expected order %v but got %q at %d", want, posts[i].doc.Slug, i)
		}
	}
}

func TestSortPostsTieBreak(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := []post{datedPost("zebra", d), datedPost("apple", d)}
	sortPosts(posts)
	if posts[0].doc.Slug != "apple" || posts[1].doc.Slug != "zebra" {
		t.Errorf("Expected slug ascending on equal dates, got %q, %q", posts[0].doc.Slug, posts[1].doc.Slug)
	}
}
