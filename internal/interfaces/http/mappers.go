package http

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toCategoryEntity(in dto.CategoryRequest) *entity.Category {
	return &entity.Category{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		ParentID:    value(in.ParentID),
	}
}

func toCategoryRef(c *entity.Category) *dto.CategoryRefResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryRefResponse{ID: c.ID, Name: c.Name, ParentID: optional(c.ParentID)}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	children := make([]dto.CategoryRefResponse, 0, len(c.Children))
	for _, child := range c.Children {
		children = append(children, *toCategoryRef(child))
	}
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    optional(c.ParentID),
		Parent:      toCategoryRef(c.Parent),
		Children:    children,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

func toProductEntity(in dto.ProductRequest) *entity.Product {
	return &entity.Product{
		ID:          in.ID,
		CategoryID:  value(in.CategoryID),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Currency:    in.Currency,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  optional(p.CategoryID),
		Category:    toCategoryRef(p.Category),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
