package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/ident"
)

type CatalogService struct {
	backend Backend
	logger  *slog.Logger
}

func NewCatalogService(backend Backend, logger *slog.Logger) *CatalogService {
	return &CatalogService{backend: backend, logger: logger}
}

func (s *CatalogService) ImageURL(path string) string {
	return s.backend.ImageURL(path)
}

// decodeList accepts a bare array or a paginated {"results": [...]} object.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	out := []T{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err == nil {
		return out, nil
	}
	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode list"), apiclient.ErrUnexpectedPayload)
	}
	if page.Results == nil {
		return []T{}, nil
	}
	return page.Results, nil
}

func getList[T any](ctx context.Context, b Backend, path string) ([]T, error) {
	var raw json.RawMessage
	if err := b.Get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}

func (s *CatalogService) withImage(p catalog.Product) catalog.Product {
	p.ProductImage = s.backend.ImageURL(p.ProductImage)
	return p
}

func (s *CatalogService) withPicture(a catalog.Artist) catalog.Artist {
	a.ProfilePicture = s.backend.ImageURL(a.ProfilePicture)
	return a
}

func (s *CatalogService) Products(ctx context.Context, f catalog.ProductFilter) ([]catalog.Product, error) {
	products, err := getList[catalog.Product](ctx, s.backend, pathListProducts)
	if err != nil {
		return nil, errs.Wrap(err, "list products")
	}
	for i := range products {
		products[i] = s.withImage(products[i])
	}
	return catalog.FilterProducts(products, f), nil
}

func (s *CatalogService) Product(ctx context.Context, id ident.ID) (catalog.Product, error) {
	var p catalog.Product
	if err := s.backend.Get(ctx, productDetailPath(id), &p); err != nil {
		return catalog.Product{}, errs.Wrap(err, "product details")
	}
	if p.ID.IsZero() {
		p.ID = id
	}
	return s.withImage(p), nil
}

// ProductCategories feeds the add-product form; a failure degrades to no options.
func (s *CatalogService) ProductCategories(ctx context.Context) ([]catalog.Category, error) {
	cats, err := getList[catalog.Category](ctx, s.backend, pathProductCategories)
	if err != nil {
		s.logger.Warn("failed to load product categories", "error", err.Error())
		return []catalog.Category{}, nil
	}
	return cats, nil
}

type createProductRequest struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         catalog.Amount `json:"price"`
	Category      string         `json:"category"`
	StockQuantity int            `json:"stock_quantity"`
	ImageURL      string         `json:"image_url,omitempty"`
	FreeDelivery  bool           `json:"free_delivery"`
	DiscountPrice catalog.Amount `json:"discount_price,omitempty"`
}

// CreateProduct posts JSON, or multipart with an "image" part when image is set.
func (s *CatalogService) CreateProduct(ctx context.Context, d catalog.ProductDraft, image *Upload) (catalog.Product, error) {
	if err := d.Validate(); err != nil {
		return catalog.Product{}, err
	}

	var created catalog.Product
	if image != nil && image.Content != nil {
		form := apiclient.NewForm().
			Set("name", d.Name).
			Set("description", d.Description).
			Set("price", formatAmount(d.Price)).
			Set("category", d.Category).
			Set("stock_quantity", strconv.Itoa(d.StockQuantity)).
			Set("free_delivery", strconv.FormatBool(d.FreeDelivery))
		if dp := d.DiscountPrice(); dp.IsPositive() {
			form.Set("discount_price", strconv.FormatFloat(dp.Float64(), 'f', 2, 64))
		}
		form.File("image", image.Filename, image.Content)
		if err := s.backend.PostForm(ctx, pathAddProduct, form, &created); err != nil {
			return catalog.Product{}, errs.Wrap(err, "add product")
		}
	} else {
		req := createProductRequest{
			Name:          d.Name,
			Description:   d.Description,
			Price:         d.Price,
			Category:      d.Category,
			StockQuantity: d.StockQuantity,
			ImageURL:      d.ImageURL,
			FreeDelivery:  d.FreeDelivery,
			DiscountPrice: d.DiscountPrice(),
		}
		if err := s.backend.Post(ctx, pathAddProduct, req, &created); err != nil {
			return catalog.Product{}, errs.Wrap(err, "add product")
		}
	}
	s.logger.Info("product added", "name", d.Name, "id", created.ID.String())
	return s.withImage(created), nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id ident.ID) error {
	if err := s.backend.Delete(ctx, productDeletePath(id), nil); err != nil {
		return errs.Wrap(err, "delete product")
	}
	s.logger.Info("product deleted", "id", id.String())
	return nil
}

func (s *CatalogService) Artists(ctx context.Context, f catalog.ArtistFilter) ([]catalog.Artist, error) {
	artists, err := getList[catalog.Artist](ctx, s.backend, pathListArtists)
	if err != nil {
		return nil, errs.Wrap(err, "list artists")
	}
	for i := range artists {
		artists[i] = s.withPicture(artists[i])
	}
	return catalog.FilterArtists(artists, f), nil
}

func (s *CatalogService) Artist(ctx context.Context, id ident.ID) (catalog.Artist, error) {
	var a catalog.Artist
	if err := s.backend.Get(ctx, artistDetailPath(id), &a); err != nil {
		return catalog.Artist{}, errs.Wrap(err, "artist details")
	}
	if a.ID.IsZero() {
		a.ID = id
	}
	return s.withPicture(a), nil
}

// RegisterArtist always sends multipart; list fields travel as JSON strings.
func (s *CatalogService) RegisterArtist(ctx context.Context, d catalog.ArtistDraft, picture *Upload) (catalog.Artist, error) {
	if err := d.Validate(); err != nil {
		return catalog.Artist{}, err
	}

	form := apiclient.NewForm().
		Set("name", d.Name).
		SetIf("brand_name", d.BrandName).
		SetIf("phone", d.Phone).
		SetIf("whatsapp_contact", d.WhatsappContact).
		Set("location", d.Location).
		SetIf("instagram", d.Instagram).
		SetIf("tiktok", d.TikTok).
		SetIf("bio", d.Bio)

	specialties := d.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	slots := d.Slots
	if slots == nil {
		slots = []catalog.AvailabilitySlot{}
	}
	if err := form.SetJSON("categories", specialties); err != nil {
		return catalog.Artist{}, err
	}
	if err := form.SetJSON("availability_slots", slots); err != nil {
		return catalog.Artist{}, err
	}
	if picture != nil && picture.Content != nil {
		form.File("profile_picture", picture.Filename, picture.Content)
	}

	var created catalog.Artist
	if err := s.backend.PostForm(ctx, pathRegisterArtist, form, &created); err != nil {
		return catalog.Artist{}, errs.Wrap(err, "register artist")
	}
	s.logger.Info("artist registered", "name", d.Name, "id", created.ID.String())
	return s.withPicture(created), nil
}

func (s *CatalogService) DeleteArtist(ctx context.Context, id ident.ID) error {
	if err := s.backend.Delete(ctx, artistDeletePath(id), nil); err != nil {
		return errs.Wrap(err, "delete artist")
	}
	s.logger.Info("artist deleted", "id", id.String())
	return nil
}

// Categories lists the admin view of a taxonomy; a failing list is empty.
func (s *CatalogService) Categories(ctx context.Context, kind catalog.CategoryKind) ([]catalog.Category, error) {
	path := pathAdminProductCategories
	if kind == catalog.KindArtists {
		path = pathAdminArtistCategories
	}
	cats, err := getList[catalog.Category](ctx, s.backend, path)
	if err != nil {
		s.logger.Warn("failed to load categories", "kind", kind, "error", err.Error())
		return []catalog.Category{}, nil
	}
	return cats, nil
}

// AddCategory reports backend field errors as one "field: a, b | field2: c" line.
func (s *CatalogService) AddCategory(ctx context.Context, kind catalog.CategoryKind, name string) (catalog.Category, error) {
	if !kind.IsValid() {
		return catalog.Category{}, errs.Validation("Category type must be products or artists")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return catalog.Category{}, errs.Validation("Category name is required")
	}

	path := pathAddProductCategory
	if kind == catalog.KindArtists {
		path = pathAddArtistCategory
	}

	var created catalog.Category
	if err := s.backend.Post(ctx, path, catalog.Category{Name: name}, &created); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			if summary := apiErr.FieldSummary(); summary != "" {
				flat := *apiErr
				flat.Message = summary
				return catalog.Category{}, &flat
			}
		}
		return catalog.Category{}, errs.Wrap(err, "add category")
	}
	if created.Name == "" {
		created.Name = name
	}
	s.logger.Info("category added", "kind", kind, "name", name)
	return created, nil
}

func formatAmount(a catalog.Amount) string {
	return strconv.FormatFloat(a.Float64(), 'f', -1, 64)
}
