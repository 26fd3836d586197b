package common

import "strings"

// PostType is the kind of a feed post
type PostType string

const (
	PostTypeText  PostType = "text"
	PostTypeImage PostType = "image"
	PostTypePDF   PostType = "pdf"
	PostTypeLink  PostType = "link"
)

// String returns the string representation
func (pt PostType) String() string {
	return string(pt)
}

// IsValid checks if the post type is valid
func (pt PostType) IsValid() bool {
	switch pt {
	case PostTypeText, PostTypeImage, PostTypePDF, PostTypeLink:
		return true
	}
	return false
}

// ParsePostType normalizes input; empty input means text.
func ParsePostType(raw string) (PostType, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return PostTypeText, nil
	}
	pt := PostType(raw)
	if !pt.IsValid() {
		return "", NewValidationError("type", "Invalid enum value. Expected 'text' | 'image' | 'pdf' | 'link'")
	}
	return pt, nil
}

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}
