package site

import "github.com/gosimple/slug"

// Slugify converts a title or tag into a URL-safe path segment.
func Slugify(s string) string {
	return slug.Make(s)
}
