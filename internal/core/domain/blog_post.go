package domain

import "errors"

var ErrBlogPostNotFound = errors.New("blog post not found")

// BlogPost is an editorial entry shown on the storefront.
type BlogPost struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Summary string `json:"summary"`
	Author  string `json:"author"`
	Image   string `json:"image"`
}
