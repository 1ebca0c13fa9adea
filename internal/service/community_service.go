package service

import (
	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"

	"gorm.io/gorm"
)

// CommunityService handles forum posts, comments and idempotent upvotes.
type CommunityService struct {
	posts *repository.PostRepository
}

func NewCommunityService(posts *repository.PostRepository) *CommunityService {
	return &CommunityService{posts: posts}
}

type PostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostPage is one page of the feed.
type PostPage struct {
	Posts []model.Post `json:"posts"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Size  int          `json:"size"`
}

// Feed lists posts, optionally filtered by tag. sort is "latest" or
// "popular"; popularity weighs upvotes five to one against views.
func (s *CommunityService) Feed(page, size int, tag, sort string) (*PostPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 50 {
		size = 10
	}

	posts, total, err := s.posts.FindWithPagination((page-1)*size, size, tag, sort)
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: posts, Total: total, Page: page, Size: size}, nil
}

func (s *CommunityService) CreatePost(authorID uint, req *PostRequest) (*model.Post, error) {
	post := &model.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
		Tags:     util.JoinCSV(req.Tags),
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return s.GetPost(post.ID, false)
}

// GetPost loads one post; countView bumps the view counter, used by the
// detail page but not internal loads.
func (s *CommunityService) GetPost(id string, countView bool) (*model.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}
	if countView {
		if err := s.posts.IncrementViews(id); err == nil {
			post.Views++
		}
	}
	return post, nil
}

func (s *CommunityService) AddComment(authorID uint, postID string, req *CommentRequest) (*model.Comment, error) {
	if _, err := s.GetPost(postID, false); err != nil {
		return nil, err
	}
	comment := &model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.posts.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Upvote records one vote per user per post or comment.
func (s *CommunityService) Upvote(userID uint, contentType, contentID string) error {
	if contentType != "comment" {
		contentType = "post"
	}
	if contentType == "post" {
		if _, err := s.GetPost(contentID, false); err != nil {
			return err
		}
	}
	err := s.posts.Upvote(userID, contentType, contentID)
	if err == gorm.ErrDuplicatedKey {
		return util.ErrAlreadyUpvoted
	}
	return err
}
