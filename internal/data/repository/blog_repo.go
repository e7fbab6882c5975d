package repository

import (
	"context"
	"fmt"
	"time"

	"travel-agency/internal/data/entity"
	"travel-agency/pkg/database"

	"go.uber.org/zap"
)

type BlogPostRepository interface {
	FindAll(ctx context.Context) ([]entity.BlogPost, error)
}

type blogPostRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogPostRepository(db database.PgxIface, log *zap.Logger) BlogPostRepository {
	return &blogPostRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog_post")),
	}
}

func (r *blogPostRepository) FindAll(ctx context.Context) ([]entity.BlogPost, error) {
	query := `
		SELECT id, title, excerpt, content, author, author_image,
		       publish_date, read_time, category, tags, image
		FROM blog_posts
		WHERE deleted_at IS NULL
		ORDER BY display_order, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find blog posts", zap.Error(err))
		return nil, fmt.Errorf("failed to find blog posts: %w", err)
	}
	defer rows.Close()

	var posts []entity.BlogPost
	for rows.Next() {
		var (
			post        entity.BlogPost
			content     *string
			publishDate time.Time
		)
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Excerpt,
			&content,
			&post.Author,
			&post.AuthorImage,
			&publishDate,
			&post.ReadTime,
			&post.Category,
			&post.Tags,
			&post.Image,
		)
		if err != nil {
			r.log.Error("Failed to scan blog post row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		if content != nil {
			post.Content = *content
		}
		post.PublishDate = entity.NewDate(publishDate.Year(), publishDate.Month(), publishDate.Day())
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Blog posts found", zap.Int("count", len(posts)))
	return posts, nil
}
