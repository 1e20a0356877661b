package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogapi/internal/models"
)

// GORMArticleRepository is a GORM implementation of ArticleRepository.
type GORMArticleRepository struct {
	db *gorm.DB
}

// NewGORMArticleRepository creates a new instance of GORMArticleRepository.
func NewGORMArticleRepository(db *gorm.DB) *GORMArticleRepository {
	return &GORMArticleRepository{
		db: db,
	}
}

// GetAll retrieves every article.
func (r *GORMArticleRepository) GetAll() ([]models.Article, error) {
	articles := make([]models.Article, 0)
	if err := r.db.Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to get all articles: %w", err)
	}
	return articles, nil
}

// GetByID retrieves a single article by its ID.
func (r *GORMArticleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("article with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get article by ID %d: %w", id, err)
	}
	return &article, nil
}

// ListByUser retrieves every article owned by the given user.
func (r *GORMArticleRepository) ListByUser(userID uint) ([]models.Article, error) {
	articles := make([]models.Article, 0)
	if err := r.db.Where("user_id = ?", userID).Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles for user %d: %w", userID, err)
	}
	return articles, nil
}

// Create inserts a new article. The insert runs in its own transaction so a
// constraint or value error rolls back before the error is returned.
func (r *GORMArticleRepository) Create(article *models.Article) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(article).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}
