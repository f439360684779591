package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Adapters never automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&pickupDateRecord{},
		&noticeRecord{},
		&sessionRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID           int64          `gorm:"primaryKey;column:id"`
	SortOrder    *int           `gorm:"column:sort_order;index"`
	Name         string         `gorm:"column:name;not null"`
	Price        *int64         `gorm:"column:price"`
	Stock        *int64         `gorm:"column:stock"`
	IsActive     *bool          `gorm:"column:is_active;default:true"`
	ThumbnailURL *string        `gorm:"column:thumbnail_url"`
	Tags         pq.StringArray `gorm:"column:tags;type:text[]"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

type pickupDateRecord struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	PickupDate time.Time `gorm:"column:pickup_date;type:date;uniqueIndex"`
	IsOpen     bool      `gorm:"column:is_open;index"`
	Label      string    `gorm:"column:label"`
}

func (pickupDateRecord) TableName() string { return "pickup_dates" }

type noticeRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	Title       string    `gorm:"column:title"`
	Body        string    `gorm:"column:body;type:text"`
	IsActive    bool      `gorm:"column:is_active;index"`
	PublishedAt time.Time `gorm:"column:published_at;index"`
}

func (noticeRecord) TableName() string { return "notices" }

// Session schema mirrors the auth session store.
type sessionRecord struct {
	Token        string    `gorm:"primaryKey;column:token;size:128"`
	LoggedIn     bool      `gorm:"column:logged_in;not null;default:false"`
	UserID       *string   `gorm:"column:user_id;size:128;index"`
	Email        *string   `gorm:"column:email;size:320"`
	Nickname     *string   `gorm:"column:nickname;size:255"`
	Provider     *string   `gorm:"column:provider;size:64"`
	OAuthState   string    `gorm:"column:oauth_state;size:128"`
	CodeVerifier string    `gorm:"column:code_verifier;size:128"`
	ExpiresAt    time.Time `gorm:"column:expires_at;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "user_sessions" }
