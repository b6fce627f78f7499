package stats

import "fmt"

// Bucket is the granularity trend statistics are grouped by.
type Bucket string

const (
	BucketDay   Bucket = "day"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
)

// ParseBucket maps a group_by query value to a Bucket. Empty input selects
// day granularity.
func ParseBucket(s string) (Bucket, error) {
	switch s {
	case "", string(BucketDay):
		return BucketDay, nil
	case string(BucketWeek):
		return BucketWeek, nil
	case string(BucketMonth):
		return BucketMonth, nil
	}
	return "", fmt.Errorf("group_by must be day, week or month, got %q", s)
}

// DateExpr returns the SQL expression that renders log_date as this bucket's
// opaque key: exact date, ISO year-week, or year-month. The dialect is the
// GORM dialector name; sqlite is supported alongside postgres so the query
// runs against the in-memory test databases.
func (b Bucket) DateExpr(dialect string) string {
	if dialect == "sqlite" {
		switch b {
		case BucketWeek:
			return "strftime('%G-%V', el.log_date)"
		case BucketMonth:
			return "strftime('%Y-%m', el.log_date)"
		default:
			return "strftime('%Y-%m-%d', el.log_date)"
		}
	}
	switch b {
	case BucketWeek:
		return "to_char(el.log_date, 'IYYY-IW')"
	case BucketMonth:
		return "to_char(el.log_date, 'YYYY-MM')"
	default:
		return "to_char(el.log_date, 'YYYY-MM-DD')"
	}
}
