package models

// Validate checks the blogger input against its field rules.
func (in *BloggerInput) Validate() error {
	return validateStruct(in)
}

// Apply overwrites the mutable fields of b with the input values.
func (in *BloggerInput) Apply(b *Blogger) {
	b.Name = in.Name
	b.YoutubeURL = in.YoutubeURL
}

// Validate checks that a stored blogger holds a name and a well-formed URL.
func (b *Blogger) Validate() error {
	if b.Name == "" {
		return NewFieldError("name", MsgEmpty)
	}
	if b.YoutubeURL == "" {
		return NewFieldError("youtubeUrl", MsgEmpty)
	}
	if !ValidURL(b.YoutubeURL) {
		return NewFieldError("youtubeUrl", MsgInvalidURL)
	}
	return nil
}
