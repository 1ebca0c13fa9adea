package model

type Post struct {
	UUIDBase
	Title    string    `gorm:"size:255;not null" json:"title"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	AuthorID uint      `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"author"`
	Tags     string    `gorm:"size:255" json:"tags"`
	Upvotes  int       `gorm:"default:0" json:"likes"`
	Views    int       `gorm:"default:0" json:"views"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	UUIDBase
	PostID   string `gorm:"index;type:varchar(36)" json:"postId"`
	AuthorID uint   `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Upvotes  int    `gorm:"default:0" json:"likes"`
}

func (Comment) TableName() string {
	return "comments"
}

// PostUpvote keeps upvotes idempotent per user.
type PostUpvote struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex:idx_user_content;type:bigint unsigned" json:"userId"`
	ContentType string `gorm:"uniqueIndex:idx_user_content;size:20" json:"contentType"` // post, comment
	ContentID   string `gorm:"uniqueIndex:idx_user_content;size:36" json:"contentId"`
}

func (PostUpvote) TableName() string {
	return "post_upvotes"
}
