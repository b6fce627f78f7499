package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/soyeonjeong/maumlog/internal/dto"
	"github.com/soyeonjeong/maumlog/internal/models"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("comfort wall post not found")

const anonymousAuthor = "Anonymous"

// ComfortService handles the community comfort wall.
type ComfortService struct {
	db *gorm.DB
}

func NewComfortService(db *gorm.DB) *ComfortService {
	return &ComfortService{db: db}
}

func (s *ComfortService) CreatePost(userID uuid.UUID, title, content string, isAnonymous bool) (*models.ComfortPost, error) {
	post := &models.ComfortPost{
		UserID:      userID,
		Title:       title,
		Content:     content,
		IsAnonymous: isAnonymous,
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns a page of posts. Popular sorting ranks by like count,
// then recency; anonymous posts hide the author nickname.
func (s *ComfortService) ListPosts(page, limit int, sort string) ([]dto.ComfortPostItem, int64, error) {
	var total int64
	if err := s.db.Model(&models.ComfortPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if sort == dto.SortPopular {
		order = "like_count DESC, created_at DESC"
	}

	var posts []models.ComfortPost
	err := s.db.Preload("User").
		Order(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.ComfortPostItem, 0, len(posts))
	for _, p := range posts {
		author := p.User.Nickname
		if p.IsAnonymous {
			author = anonymousAuthor
		}
		items = append(items, dto.ComfortPostItem{
			PostID:      p.PostID,
			Title:       p.Title,
			Content:     p.Content,
			Author:      author,
			IsAnonymous: p.IsAnonymous,
			LikeCount:   p.LikeCount,
			CreatedAt:   p.CreatedAt,
		})
	}
	return items, total, nil
}

// ToggleLike likes a post, or removes the user's existing like. Returns
// whether the post is liked after the call.
func (s *ComfortService) ToggleLike(userID uuid.UUID, postID uint) (bool, error) {
	liked := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.ComfortPost
		if err := tx.First(&post, "post_id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		var existing models.ComfortLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		if err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(&models.ComfortPost{}).Where("post_id = ?", postID).
				Update("like_count", gorm.Expr("like_count - 1")).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := models.ComfortLike{PostID: postID, UserID: userID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		liked = true
		return tx.Model(&models.ComfortPost{}).Where("post_id = ?", postID).
			Update("like_count", gorm.Expr("like_count + 1")).Error
	})
	return liked, err
}

func (s *ComfortService) AddMessage(userID uuid.UUID, postID uint, content string, isAnonymous bool) (*models.ComfortMessage, error) {
	var post models.ComfortPost
	if err := s.db.First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	message := &models.ComfortMessage{
		PostID:      postID,
		UserID:      userID,
		Content:     content,
		IsAnonymous: isAnonymous,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

func (s *ComfortService) ListMessages(postID uint, page, limit int) ([]models.ComfortMessage, int64, error) {
	var post models.ComfortPost
	if err := s.db.First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrPostNotFound
		}
		return nil, 0, err
	}

	var total int64
	if err := s.db.Model(&models.ComfortMessage{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.ComfortMessage
	err := s.db.Where("post_id = ?", postID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	return messages, total, err
}
