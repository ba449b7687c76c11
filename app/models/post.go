package models

import "errors"

// Validate checks the post input against its field rules.
func (in *PostInput) Validate() error {
	return validateStruct(in)
}

// Apply overwrites the mutable fields of p with the input values. The input
// must have passed Validate.
func (in *PostInput) Apply(p *Post) {
	p.Title = in.Title
	p.BloggerID = *in.BloggerID
	p.Content = *in.Content
	p.ShortDescription = *in.ShortDescription
}

// SetBlogger links the post to blogger and copies its name.
func (p *Post) SetBlogger(blogger *Blogger) error {
	if blogger == nil {
		return errors.New("blogger cannot be nil")
	}

	p.BloggerID = blogger.ID
	p.BloggerName = blogger.Name
	return nil
}
