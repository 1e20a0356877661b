package services

import (
	"errors"
	"fmt"

	"blogapi/internal/models"
	"blogapi/internal/repositories"
)

// ArticleService handles business logic related to articles.
type ArticleService struct {
	articleRepo repositories.ArticleRepository
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo repositories.ArticleRepository) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
	}
}

// GetAllArticles retrieves every article.
func (s *ArticleService) GetAllArticles() ([]models.Article, error) {
	return s.articleRepo.GetAll()
}

// GetArticleByID retrieves a single article. A missing id returns
// (nil, nil) so the handler can serialize it as null with a success status.
func (s *ArticleService) GetArticleByID(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return article, nil
}

// ListArticlesByUser retrieves all articles owned by the given user.
func (s *ArticleService) ListArticlesByUser(userID uint) ([]models.Article, error) {
	return s.articleRepo.ListByUser(userID)
}

// CreateArticleInput carries the caller-supplied article fields. Tag and
// PreviewImage are optional; empty values take the model defaults.
type CreateArticleInput struct {
	Title         string
	Content       string
	PreviewText   string
	PreviewImage  string
	MinutesToRead int
	Tag           string
}

// CreateArticle persists a new article owned by the given user. The author
// field is always the owner's current username, never caller-supplied.
func (s *ArticleService) CreateArticle(owner *models.User, in CreateArticleInput) (*models.Article, error) {
	tag := in.Tag
	if tag == "" {
		tag = models.DefaultTag
	}
	if !models.ValidTag(tag) {
		return nil, fmt.Errorf("invalid tag '%s', allowed values: %v", in.Tag, models.AllowedTags)
	}

	previewImage := in.PreviewImage
	if previewImage == "" {
		previewImage = models.DefaultPreviewImage
	}

	article := &models.Article{
		Author:        owner.Username,
		Title:         in.Title,
		Content:       in.Content,
		PreviewText:   in.PreviewText,
		PreviewImage:  previewImage,
		MinutesToRead: in.MinutesToRead,
		Tag:           tag,
		UserID:        owner.ID,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}
