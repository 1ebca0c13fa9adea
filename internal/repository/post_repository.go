package repository

import (
	"edubridge_backend/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) FindWithPagination(offset, limit int, tag, sort string) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64

	query := r.DB.Model(&model.Post{})

	if tag != "" {
		query = query.Where("tags LIKE ?", "%"+tag+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch sort {
	case "popular":
		query = query.Order("(upvotes * 5 + views) DESC, created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	err := query.Offset(offset).Limit(limit).
		Preload("Author").
		Preload("Comments").
		Preload("Comments.Author").
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id string) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").
		Preload("Comments").
		Preload("Comments.Author").
		First(&post, "id = ?", id).Error
	return &post, err
}

func (r *PostRepository) IncrementViews(id string) error {
	return r.DB.Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *PostRepository) CreateComment(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

// Upvote inserts the per-user marker and bumps the counter in one
// transaction; a duplicate marker aborts without touching the counter.
func (r *PostRepository) Upvote(userID uint, contentType, contentID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&model.PostUpvote{}).
			Where("user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID).
			Count(&count)
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}

		if err := tx.Create(&model.PostUpvote{
			UserID:      userID,
			ContentType: contentType,
			ContentID:   contentID,
		}).Error; err != nil {
			return err
		}

		switch contentType {
		case "comment":
			return tx.Model(&model.Comment{}).Where("id = ?", contentID).
				UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
		default:
			return tx.Model(&model.Post{}).Where("id = ?", contentID).
				UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
		}
	})
}
