package entity

type BlogPost struct {
	ID          int      `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Excerpt     string   `json:"excerpt" db:"excerpt"`
	Content     string   `json:"content,omitempty" db:"content"`
	Author      string   `json:"author" db:"author"`
	AuthorImage string   `json:"authorImage" db:"author_image"`
	PublishDate Date     `json:"publishDate" db:"publish_date"`
	ReadTime    string   `json:"readTime" db:"read_time"`
	Category    string   `json:"category" db:"category"`
	Tags        []string `json:"tags" db:"tags"`
	Image       string   `json:"image" db:"image"`
}

func (b BlogPost) CategoryName() string { return b.Category }

// HasTag reports whether the post carries tag. Membership ignores order.
func (b BlogPost) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
