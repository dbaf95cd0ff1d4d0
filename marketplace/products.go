package marketplace

import (
	"context"
	"fmt"
	"strconv"

	"github.com/loppen/marketplace-go/format"
	"github.com/loppen/marketplace-go/httpclient"
)

// ProductCreate is the payload for listing a new product. Constraints
// mirror the server's schema.
type ProductCreate struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"required,min=1,max=1000"`
	PriceAmount float64  `json:"price_amount" validate:"required,gt=0"`
	CategoryID  int      `json:"category_id" validate:"required,gt=0"`
	Condition   string   `json:"condition,omitempty" validate:"omitempty,oneof=new like_new good fair needs_repair"`
	Quantity    int      `json:"quantity,omitempty" validate:"omitempty,min=1"`
	LocationID  *int     `json:"location_id,omitempty" validate:"omitempty,gt=0"`
	WidthCM     *float64 `json:"width_cm,omitempty" validate:"omitempty,gt=0"`
	HeightCM    *float64 `json:"height_cm,omitempty" validate:"omitempty,gt=0"`
	DepthCM     *float64 `json:"depth_cm,omitempty" validate:"omitempty,gt=0"`
	WeightKG    *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0"`
	ColorIDs    []int    `json:"color_ids,omitempty"`
	MaterialIDs []int    `json:"material_ids,omitempty"`
	TagIDs      []int    `json:"tag_ids,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

// ProductUpdate is the payload for changing a product. Nil fields are
// left unchanged.
type ProductUpdate struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	PriceAmount *float64 `json:"price_amount,omitempty" validate:"omitempty,gt=0"`
	CategoryID  *int     `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=active sold paused draft"`
	Condition   *string  `json:"condition,omitempty" validate:"omitempty,oneof=new like_new good fair needs_repair"`
	LocationID  *int     `json:"location_id,omitempty" validate:"omitempty,gt=0"`
	WidthCM     *float64 `json:"width_cm,omitempty" validate:"omitempty,gt=0"`
	HeightCM    *float64 `json:"height_cm,omitempty" validate:"omitempty,gt=0"`
	DepthCM     *float64 `json:"depth_cm,omitempty" validate:"omitempty,gt=0"`
	WeightKG    *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,min=1"`
	ColorIDs    []int    `json:"color_ids,omitempty"`
	MaterialIDs []int    `json:"material_ids,omitempty"`
	TagIDs      []int    `json:"tag_ids,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

// ProductListOptions filter, sort, and paginate the product collection.
type ProductListOptions struct {
	Page       int
	Size       int
	Category   string
	MinPrice   *float64
	MaxPrice   *float64
	LocationID *int
	Condition  string
	// Sort is one of: newest, oldest, price_low, price_high, title.
	Sort     string
	Search   string
	ShowSold bool
}

func (o ProductListOptions) query() map[string]string {
	q := map[string]string{}
	if o.Page > 0 {
		q["page"] = strconv.Itoa(o.Page)
	}
	if o.Size > 0 {
		q["size"] = strconv.Itoa(o.Size)
	}
	if o.Category != "" {
		q["category"] = o.Category
	}
	if o.MinPrice != nil {
		q["min_price"] = strconv.FormatFloat(*o.MinPrice, 'f', -1, 64)
	}
	if o.MaxPrice != nil {
		q["max_price"] = strconv.FormatFloat(*o.MaxPrice, 'f', -1, 64)
	}
	if o.LocationID != nil {
		q["location_id"] = strconv.Itoa(*o.LocationID)
	}
	if o.Condition != "" {
		q["condition"] = o.Condition
	}
	if o.Sort != "" {
		q["sort"] = o.Sort
	}
	if o.Search != "" {
		q["search"] = o.Search
	}
	if o.ShowSold {
		q["show_sold"] = "true"
	}
	return q
}

// PageOptions paginate a collection.
type PageOptions struct {
	Page int
	Size int
}

func (o PageOptions) query() map[string]string {
	q := map[string]string{}
	if o.Page > 0 {
		q["page"] = strconv.Itoa(o.Page)
	}
	if o.Size > 0 {
		q["size"] = strconv.Itoa(o.Size)
	}
	return q
}

const maxImageSize = 5 * 1024 * 1024

// allowedImageTypes mirrors the server's upload whitelist.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ProductsService handles product listings and their lookups.
type ProductsService struct {
	client *httpclient.Client
}

// List returns a filtered, paginated page of products.
func (s *ProductsService) List(ctx context.Context, opts ProductListOptions) (*ProductList, error) {
	list, err := httpclient.Get[ProductList](ctx, s.client, "/products/", queryOpts(opts.query())...)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// MyProducts returns the products posted by the current user.
func (s *ProductsService) MyProducts(ctx context.Context, page PageOptions) (*ProductList, error) {
	list, err := httpclient.Get[ProductList](ctx, s.client, "/products/my-products", queryOpts(page.query())...)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Get returns a single product by id.
func (s *ProductsService) Get(ctx context.Context, id int) (*Product, error) {
	p, err := httpclient.Get[Product](ctx, s.client, "/products/"+strconv.Itoa(id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ByCategory returns products in the given category.
func (s *ProductsService) ByCategory(ctx context.Context, category string, page PageOptions) (*ProductList, error) {
	list, err := httpclient.Get[ProductList](ctx, s.client, "/products/category/"+category, queryOpts(page.query())...)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Create lists a new product.
func (s *ProductsService) Create(ctx context.Context, req ProductCreate) (*Product, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	p, err := httpclient.Post[Product](ctx, s.client, "/products/", req)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update changes an existing product.
func (s *ProductsService) Update(ctx context.Context, id int, req ProductUpdate) (*Product, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	p, err := httpclient.Put[Product](ctx, s.client, "/products/"+strconv.Itoa(id), req)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a product. The server answers 204 on success.
func (s *ProductsService) Delete(ctx context.Context, id int) error {
	_, err := httpclient.Delete[struct{}](ctx, s.client, "/products/"+strconv.Itoa(id))
	return err
}

// Details returns the lookup values available when listing a product.
func (s *ProductsService) Details(ctx context.Context) (*ProductDetails, error) {
	d, err := httpclient.Get[ProductDetails](ctx, s.client, "/products/productdetails")
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Categories returns all product categories.
func (s *ProductsService) Categories(ctx context.Context) ([]Category, error) {
	return httpclient.Get[[]Category](ctx, s.client, "/products/categories")
}

// Currencies returns the currencies the marketplace supports.
func (s *ProductsService) Currencies(ctx context.Context) ([]format.Currency, error) {
	return httpclient.Get[[]format.Currency](ctx, s.client, "/products/currencies")
}

// Locations returns all product locations.
func (s *ProductsService) Locations(ctx context.Context) ([]Location, error) {
	return httpclient.Get[[]Location](ctx, s.client, "/products/locations")
}

// UploadImage uploads a product photo and returns its URL. Type and size
// are checked client-side against the server's limits before anything is
// sent.
func (s *ProductsService) UploadImage(ctx context.Context, filename, contentType string, data []byte) (*UploadResult, error) {
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("marketplace: unsupported image type %q", contentType)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("marketplace: image exceeds the 5MB limit")
	}

	body := &httpclient.MultipartBody{
		Files: []httpclient.FilePart{{
			Name:        "file",
			FileName:    filename,
			ContentType: contentType,
			Data:        data,
		}},
	}
	res, err := httpclient.Post[UploadResult](ctx, s.client, "/products/upload-image", body)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// queryOpts converts a query map into request options.
func queryOpts(q map[string]string) []httpclient.RequestOption {
	opts := make([]httpclient.RequestOption, 0, len(q))
	for k, v := range q {
		opts = append(opts, httpclient.WithQueryParam(k, v))
	}
	return opts
}
