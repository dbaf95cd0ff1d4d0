package marketplace

import "time"

// Location is a city/postcode pair products and users can be tied to.
type Location struct {
	ID       int    `json:"id"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

// User is a marketplace account.
type User struct {
	ID         int       `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	LocationID *int      `json:"location_id,omitempty"`
	Location   *Location `json:"location,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Token is the response of a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

// Seller is the seller summary embedded in products.
type Seller struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProductImage is an uploaded product photo.
type ProductImage struct {
	ID        int    `json:"id"`
	URL       string `json:"url"`
	SortOrder int    `json:"sort_order"`
}

// Category, Color, Material, and Tag are the product detail lookups.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Color struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Material struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PriceChange is one entry of a product's price history.
type PriceChange struct {
	ChangedAt time.Time `json:"changed_at"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
}

// Product is a marketplace listing.
type Product struct {
	ID             int            `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	PriceAmount    float64        `json:"price_amount"`
	PriceCurrency  string         `json:"price_currency,omitempty"`
	CategoryID     int            `json:"category_id"`
	Condition      string         `json:"condition"`
	Quantity       int            `json:"quantity"`
	LikesCount     int            `json:"likes_count"`
	Status         string         `json:"status"`
	SellerID       int            `json:"seller_id"`
	LocationID     *int           `json:"location_id,omitempty"`
	IsSold         bool           `json:"is_sold"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Seller         *Seller        `json:"seller,omitempty"`
	Location       *Location      `json:"location,omitempty"`
	Images         []ProductImage `json:"images,omitempty"`
	ViewsCount     int            `json:"views_count"`
	FavoritesCount int            `json:"favorites_count"`
	Colors         []Color        `json:"colors,omitempty"`
	Materials      []Material     `json:"materials,omitempty"`
	Tags           []Tag          `json:"tags,omitempty"`
	PriceChanges   []PriceChange  `json:"price_changes,omitempty"`
}

// ProductList is a paginated page of products.
type ProductList struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Size       int       `json:"size"`
	TotalPages int       `json:"total_pages"`
}

// ProductDetails holds the lookup values available when listing a product.
type ProductDetails struct {
	Colors    []Color    `json:"colors"`
	Materials []Material `json:"materials"`
	Tags      []Tag      `json:"tags"`
	Locations []Location `json:"locations"`
}

// UploadResult is the response of a product image upload.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// FavoriteStatus reports whether a product is in the user's favorites.
type FavoriteStatus struct {
	IsFavorite bool `json:"is_favorite"`
	ProductID  int  `json:"product_id"`
}

// Participant is a member of a conversation.
type Participant struct {
	UserID int `json:"user_id"`
}

// Message is a single chat message.
type Message struct {
	ID             int        `json:"id"`
	ConversationID int        `json:"conversation_id"`
	SenderID       int        `json:"sender_id"`
	Body           string     `json:"body,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

// Conversation is a message thread about a product.
type Conversation struct {
	ID                 int           `json:"id"`
	ProductID          int           `json:"product_id"`
	Participants       []Participant `json:"participants"`
	LastMessagePreview string        `json:"last_message_preview,omitempty"`
	LastMessageAt      *time.Time    `json:"last_message_at,omitempty"`
}

// ConversationWithMessages is a conversation together with its messages.
type ConversationWithMessages struct {
	Conversation
	Messages []Message `json:"messages"`
}

// ViewHistoryItem is one entry of a user's product view history.
type ViewHistoryItem struct {
	ProductID     int       `json:"product_id"`
	Title         string    `json:"title"`
	PriceAmount   float64   `json:"price_amount,omitempty"`
	PriceCurrency string    `json:"price_currency,omitempty"`
	ViewedAt      time.Time `json:"viewed_at"`
	SessionID     string    `json:"session_id,omitempty"`
	UserAgent     string    `json:"user_agent,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
}

// ViewHistory is a user's recent product views.
type ViewHistory struct {
	Items []ViewHistoryItem `json:"items"`
	Total int               `json:"total"`
}

// RecentSignup, RecentProduct, and RecentFavorite feed the admin activity
// dashboard.
type RecentSignup struct {
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RecentProduct struct {
	ProductID      int       `json:"product_id"`
	Title          string    `json:"title"`
	SellerID       int       `json:"seller_id"`
	SellerUsername string    `json:"seller_username"`
	CreatedAt      time.Time `json:"created_at"`
}

type RecentFavorite struct {
	UserID      int       `json:"user_id"`
	Username    string    `json:"username"`
	ProductID   int       `json:"product_id"`
	Title       string    `json:"title"`
	FavoritedAt time.Time `json:"favorited_at"`
}

// ActivityFeed is the combined recent activity for the admin dashboard.
type ActivityFeed struct {
	RecentSignups   []RecentSignup   `json:"recent_signups"`
	RecentProducts  []RecentProduct  `json:"recent_products"`
	RecentFavorites []RecentFavorite `json:"recent_favorites"`
}

// PopularProduct is a listing ranked by views and favorites.
type PopularProduct struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	PriceAmount     float64 `json:"price_amount,omitempty"`
	PriceCurrency   string  `json:"price_currency,omitempty"`
	Status          string  `json:"status"`
	FavoriteCount   int     `json:"favorite_count"`
	ViewCount       int     `json:"view_count"`
	PopularityScore int     `json:"popularity_score"`
	ImageURL        string  `json:"image_url,omitempty"`
}

// PopularProducts is the popular products response.
type PopularProducts struct {
	Products []PopularProduct `json:"products"`
}

// RecommendedProduct is a listing similar to one being viewed.
type RecommendedProduct struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	PriceAmount     float64 `json:"price_amount,omitempty"`
	PriceCurrency   string  `json:"price_currency,omitempty"`
	Condition       string  `json:"condition"`
	ImageURL        string  `json:"image_url,omitempty"`
	ViewsCount      int     `json:"views_count"`
	LikesCount      int     `json:"likes_count"`
	SimilarityScore float64 `json:"similarity_score"`
}

// Recommendations is the product recommendations response.
type Recommendations struct {
	Products []RecommendedProduct `json:"recommendations"`
}

// PlatformStats is the admin statistics summary.
type PlatformStats struct {
	TotalUsers     int     `json:"total_users"`
	TotalProducts  int     `json:"total_products"`
	SoldProducts   int     `json:"sold_products"`
	ActiveProducts int     `json:"active_products"`
	ConversionRate float64 `json:"conversion_rate"`
	Revenue        float64 `json:"revenue_from_sold_products"`
}

// StatusMessage is the generic {"message": ...} acknowledgment some
// endpoints return.
type StatusMessage struct {
	Message   string `json:"message"`
	ProductID int    `json:"product_id,omitempty"`
}
