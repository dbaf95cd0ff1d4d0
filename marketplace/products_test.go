package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/loppen/marketplace-go/util"
)

func TestProductsList(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("size") != "20" {
			t.Errorf("unexpected pagination: %s", r.URL.RawQuery)
		}
		if q.Get("category") != "Chairs" || q.Get("min_price") != "100" {
			t.Errorf("unexpected filters: %s", r.URL.RawQuery)
		}
		if q.Get("show_sold") != "true" {
			t.Errorf("expected show_sold=true, got %s", r.URL.RawQuery)
		}
		writeJSON(t, w, http.StatusOK, ProductList{
			Products:   []Product{{ID: 7, Title: "Oak chair"}},
			Total:      41,
			Page:       2,
			Size:       20,
			TotalPages: 3,
		})
	})

	list, err := api.Products.List(context.Background(), ProductListOptions{
		Page:     2,
		Size:     20,
		Category: "Chairs",
		MinPrice: util.Ptr(100.0),
		ShowSold: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 41 || len(list.Products) != 1 {
		t.Errorf("unexpected list: %+v", list)
	}
	if list.Products[0].Title != "Oak chair" {
		t.Errorf("unexpected product: %+v", list.Products[0])
	}
}

func TestProductsListOmitsUnsetFilters(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query parameters, got %s", r.URL.RawQuery)
		}
		writeJSON(t, w, http.StatusOK, ProductList{})
	})

	if _, err := api.Products.List(context.Background(), ProductListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductsGet(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/42" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, Product{ID: 42, Title: "Teak sideboard", PriceAmount: 1250})
	})

	p, err := api.Products.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 42 || p.PriceAmount != 1250 {
		t.Errorf("unexpected product: %+v", p)
	}
}

func TestProductsCreate(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/products/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req ProductCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Title != "Oak chair" || req.CategoryID != 3 {
			t.Errorf("unexpected payload: %+v", req)
		}
		writeJSON(t, w, http.StatusCreated, Product{ID: 7, Title: req.Title})
	})

	p, err := api.Products.Create(context.Background(), ProductCreate{
		Title:       "Oak chair",
		Description: "Solid oak, 1960s",
		PriceAmount: 450,
		CategoryID:  3,
		Condition:   "good",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 7 {
		t.Errorf("unexpected product: %+v", p)
	}
}

func TestProductsCreateInvalidPayload(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected no HTTP request for an invalid payload")
	})

	_, err := api.Products.Create(context.Background(), ProductCreate{
		Description: "missing title",
		PriceAmount: 450,
		CategoryID:  3,
		Condition:   "mint", // not a valid condition either
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestProductsUpdate(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/products/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		// Nil fields must not appear in the payload.
		if _, ok := body["title"]; ok {
			t.Error("expected unset title to be omitted")
		}
		if body["status"] != "sold" {
			t.Errorf("expected status sold, got %v", body["status"])
		}
		writeJSON(t, w, http.StatusOK, Product{ID: 7, Status: "sold"})
	})

	p, err := api.Products.Update(context.Background(), 7, ProductUpdate{
		Status: util.Ptr("sold"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != "sold" {
		t.Errorf("unexpected product: %+v", p)
	}
}

func TestProductsDelete(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/products/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := api.Products.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductsByCategory(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/category/Tables" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, ProductList{Total: 3})
	})

	list, err := api.Products.ByCategory(context.Background(), "Tables", PageOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 3 {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestProductsCurrencies(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/currencies" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, []map[string]string{
			{"code": "DKK", "name": "Danish Krone", "symbol": "kr"},
			{"code": "EUR", "name": "Euro", "symbol": "€"},
		})
	})

	currencies, err := api.Products.Currencies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(currencies) != 2 || currencies[0].Code != "DKK" {
		t.Errorf("unexpected currencies: %+v", currencies)
	}
}

func TestProductsDetails(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/productdetails" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, ProductDetails{
			Colors: []Color{{ID: 1, Name: "Walnut"}},
			Tags:   []Tag{{ID: 2, Name: "mid-century"}},
		})
	})

	d, err := api.Products.Details(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Colors) != 1 || d.Colors[0].Name != "Walnut" {
		t.Errorf("unexpected details: %+v", d)
	}
}

func TestUploadImage(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/upload-image" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "chair.jpg" {
			t.Errorf("unexpected filename: %s", header.Filename)
		}
		writeJSON(t, w, http.StatusOK, UploadResult{URL: "/uploads/chair.jpg", Filename: "chair.jpg"})
	})

	res, err := api.Products.UploadImage(context.Background(), "chair.jpg", "image/jpeg", []byte("fake-jpeg-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.URL != "/uploads/chair.jpg" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestUploadImageRejectsBadType(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected no HTTP request for a rejected upload")
	})

	_, err := api.Products.UploadImage(context.Background(), "notes.pdf", "application/pdf", []byte("%PDF"))
	if err == nil {
		t.Fatal("expected an error for an unsupported type")
	}
	if !strings.Contains(err.Error(), "unsupported image type") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestUploadImageRejectsOversize(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected no HTTP request for a rejected upload")
	})

	data := bytes.Repeat([]byte{0xFF}, maxImageSize+1)
	_, err := api.Products.UploadImage(context.Background(), "huge.png", "image/png", data)
	if err == nil {
		t.Fatal("expected an error for an oversized file")
	}
	if !strings.Contains(err.Error(), "5MB") {
		t.Errorf("unexpected error message: %v", err)
	}
}
