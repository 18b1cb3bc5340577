package growth

import (
	"encoding/json"
	"fmt"
)

// Platform is the social network a stat or a post belongs to.
// It partitions every derived view.
type Platform string

const (
	Instagram Platform = "instagram"
	YouTube   Platform = "youtube"
)

// Platforms lists the supported platforms in display order.
var Platforms = []Platform{Instagram, YouTube}

// ParsePlatform returns the Platform named s.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown platform %q, want one of %v", s, Platforms)
	}
	return p, nil
}

func (p Platform) Valid() bool { return p == Instagram || p == YouTube }

// FollowerLabel is how the platform names its audience.
func (p Platform) FollowerLabel() string {
	if p == YouTube {
		return "Subscribers"
	}
	return "Followers"
}

// Title is the display name of the platform.
func (p Platform) Title() string {
	switch p {
	case Instagram:
		return "Instagram"
	case YouTube:
		return "YouTube"
	}
	return string(p)
}

// PostType is the kind of content a post is.
type PostType string

const (
	Reel     PostType = "reel"
	Photo    PostType = "photo"
	Carousel PostType = "carousel"
	Video    PostType = "video"
)

var PostTypes = []PostType{Reel, Photo, Carousel, Video}

// ParsePostType returns the PostType named s.
func ParsePostType(s string) (PostType, error) {
	t := PostType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown post type %q, want one of %v", s, PostTypes)
	}
	return t, nil
}

func (t PostType) Valid() bool {
	switch t {
	case Reel, Photo, Carousel, Video:
		return true
	}
	return false
}

// Label is the entry form wording for the type.
func (t PostType) Label() string {
	switch t {
	case Reel:
		return "Reel / Short"
	case Photo:
		return "Photo"
	case Carousel:
		return "Carousel"
	case Video:
		return "Long Video"
	}
	return string(t)
}

// Platforms and post types are stored as plain strings. Unknown values are
// rejected on decode, so a record naming an unknown platform does not parse.

func (p *Platform) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParsePlatform(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (t *PostType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParsePostType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
