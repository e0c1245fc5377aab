package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/pagefeed"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagefeed.FeedService = (*FeedService)(nil)

const feedColumns = "id, user_id, url, selectors, created_at, updated_at"

// FeedService implements pagefeed.FeedService using SQLite.
type FeedService struct {
	db *DB
}

// NewFeedService creates a new FeedService.
func NewFeedService(db *DB) *FeedService {
	return &FeedService{db: db}
}

// CreateFeed creates a new feed.
func (s *FeedService) CreateFeed(ctx context.Context, feed *pagefeed.Feed) error {
	if err := feed.Validate(); err != nil {
		return err
	}

	feed.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	feed.CreatedAt = now
	feed.UpdatedAt = now
	if feed.Selectors == nil {
		feed.Selectors = []string{}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feeds (id, user_id, url, selectors, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, feed.ID, feed.UserID, feed.URL, joinSelectors(feed.Selectors),
		feed.CreatedAt.Format(time.RFC3339), feed.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindFeedByID retrieves a feed by ID.
func (s *FeedService) FindFeedByID(ctx context.Context, id string) (*pagefeed.Feed, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+feedColumns+" FROM feeds WHERE id = ?", id)

	feed, err := scanFeed(row)
	if err == sql.ErrNoRows {
		return nil, pagefeed.Errorf(pagefeed.ENOTFOUND, "feed not found")
	}
	if err != nil {
		return nil, err
	}
	return feed, nil
}

// FindFeeds retrieves feeds matching the filter, newest first.
func (s *FeedService) FindFeeds(ctx context.Context, filter pagefeed.FeedFilter) ([]*pagefeed.Feed, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + feedColumns + " FROM feeds WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.UserID != nil {
		query.WriteString(" AND user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feeds := []*pagefeed.Feed{}
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}

	return feeds, rows.Err()
}

// UpdateFeed updates an existing feed.
func (s *FeedService) UpdateFeed(ctx context.Context, id string, upd pagefeed.FeedUpdate) (*pagefeed.Feed, error) {
	feed, err := s.FindFeedByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.URL != nil {
		feed.URL = *upd.URL
	}
	if upd.Selectors != nil {
		feed.Selectors = append([]string{}, (*upd.Selectors)...)
	}

	if err := feed.Validate(); err != nil {
		return nil, err
	}

	feed.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE feeds
		SET url = ?, selectors = ?, updated_at = ?
		WHERE id = ?
	`, feed.URL, joinSelectors(feed.Selectors), feed.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return feed, nil
}

// DeleteFeed permanently removes a feed.
func (s *FeedService) DeleteFeed(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagefeed.Errorf(pagefeed.ENOTFOUND, "feed not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFeed(row scanner) (*pagefeed.Feed, error) {
	var feed pagefeed.Feed
	var selectors, createdAt, updatedAt string

	if err := row.Scan(&feed.ID, &feed.UserID, &feed.URL, &selectors, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	feed.Selectors = splitSelectors(selectors)

	var err error
	if feed.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if feed.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &feed, nil
}
