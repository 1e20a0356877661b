package repositories

import "blogapi/internal/models"

// ArticleRepository defines the interface for article data access.
type ArticleRepository interface {
	GetAll() ([]models.Article, error)
	GetByID(id uint) (*models.Article, error)
	ListByUser(userID uint) ([]models.Article, error)
	Create(article *models.Article) error
}
