package models

// SocialLinks holds the profile links shown across the site. Each content
// kind uses a subset of the fields; unused ones stay empty and are omitted
// from JSON.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Dribbble string `json:"dribbble,omitempty"`
	Email    string `json:"email,omitempty"`
}
