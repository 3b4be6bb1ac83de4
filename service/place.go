package service

import (
	"Tripper/dao"
	"Tripper/models"
	"Tripper/pkg/log"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IPlaceService = (*PlaceService)(nil)

type IPlaceService interface {
	Create(ctx context.Context, req *types.CreatePlaceRequest) (*types.PlaceResponse, error)
	// Get 地点 + 照片 + 按类型挂载的扩展信息
	Get(ctx context.Context, placeID uint64) (*types.PlaceResponse, error)
	// GetByType 类型化端点用，类型不符视作不存在
	GetByType(ctx context.Context, placeID uint64, placeType string) (*types.PlaceResponse, error)
	List(ctx context.Context, query *types.PlaceListQuery) ([]*types.PlaceResponse, response.Pagination, error)
	Update(ctx context.Context, placeID uint64, req *types.UpdatePlaceRequest) error
	Delete(ctx context.Context, placeID uint64) error

	AddPhoto(ctx context.Context, placeID uint64, req *types.PlacePhotoRequest) (*types.PlacePhotoResponse, error)
	UploadPhoto(ctx context.Context, placeID uint64, isPrimary bool, header *multipart.FileHeader) (*types.PlacePhotoResponse, error)
	DeletePhoto(ctx context.Context, placeID, photoID uint64) error

	SetRestaurantDetail(ctx context.Context, placeID uint64, req *types.RestaurantDetailRequest) error
	SetAttractionDetail(ctx context.Context, placeID uint64, req *types.AttractionDetailRequest) error
}

type PlaceService struct {
	PlaceDAO      *dao.PlaceDAO
	PhotoDAO      *dao.PlacePhotoDAO
	RestaurantDAO *dao.RestaurantDetailDAO
	HotelDAO      *dao.HotelDetailDAO
	AttractionDAO *dao.AttractionDetailDAO
	Oss           IOssService
}

func (s *PlaceService) Create(ctx context.Context, req *types.CreatePlaceRequest) (*types.PlaceResponse, error) {
	now := time.Now()
	place := &models.Place{
		Name:         req.Name,
		LocalName:    req.LocalName,
		Description:  req.Description,
		Type:         req.Type,
		Address:      req.Address,
		City:         req.City,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Rating:       req.Rating,
		PriceRange:   req.PriceRange,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		WebURL:       req.WebURL,
		Image:        req.Image,
		NumberReview: req.NumberReview,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.PlaceDAO.Create(ctx, place); err != nil {
		return nil, err
	}

	// 酒店的扩展表没有额外字段，建地点时直接补上
	if place.Type == models.PlaceTypeHotel {
		detail := &models.HotelDetail{PlaceID: place.PlaceID, CreatedAt: now, UpdatedAt: now}
		if err := s.HotelDAO.Create(ctx, detail); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, place.PlaceID)
}

func (s *PlaceService) Get(ctx context.Context, placeID uint64) (*types.PlaceResponse, error) {
	place, err := s.PlaceDAO.FindById(ctx, placeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(404, "地点不存在")
		}
		return nil, err
	}

	resp := toPlaceResponse(place)

	photos, err := s.PhotoDAO.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	for _, p := range photos {
		resp.Photos = append(resp.Photos, types.PlacePhotoResponse{
			PhotoID:   p.PhotoID,
			PhotoURL:  p.PhotoURL,
			IsPrimary: p.IsPrimary,
		})
	}

	switch place.Type {
	case models.PlaceTypeRestaurant:
		if detail, err := s.RestaurantDAO.FindByPlace(ctx, placeID); err == nil {
			resp.MealTypes = detail.MealTypes
		}
	case models.PlaceTypeAttraction:
		if detail, err := s.AttractionDAO.FindByPlace(ctx, placeID); err == nil {
			resp.Subcategory = detail.Subcategory
			resp.Subtype = detail.Subtype
		}
	}

	return resp, nil
}

func (s *PlaceService) GetByType(ctx context.Context, placeID uint64, placeType string) (*types.PlaceResponse, error) {
	resp, err := s.Get(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if resp.Type != placeType {
		return nil, response.NewError(404, "地点不存在")
	}
	return resp, nil
}

func (s *PlaceService) List(ctx context.Context, query *types.PlaceListQuery) ([]*types.PlaceResponse, response.Pagination, error) {
	page, limit := normalizePage(query.Page, query.Limit)

	places, total, err := s.PlaceDAO.List(ctx, query.City, query.Type, limit, (page-1)*limit)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	resp := make([]*types.PlaceResponse, 0, len(places))
	for _, p := range places {
		resp = append(resp, toPlaceResponse(p))
	}
	return resp, response.NewPagination(page, limit, total), nil
}

func (s *PlaceService) Update(ctx context.Context, placeID uint64, req *types.UpdatePlaceRequest) error {
	if _, err := s.PlaceDAO.FindById(ctx, placeID); err != nil {
		return response.NewError(404, "地点不存在")
	}

	data := map[string]any{"updated_at": time.Now()}
	if req.Name != nil {
		data["name"] = *req.Name
	}
	if req.LocalName != nil {
		data["local_name"] = *req.LocalName
	}
	if req.Description != nil {
		data["description"] = *req.Description
	}
	if req.Address != nil {
		data["address"] = *req.Address
	}
	if req.City != nil {
		data["city"] = *req.City
	}
	if req.Latitude != nil {
		data["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		data["longitude"] = *req.Longitude
	}
	if req.Rating != nil {
		data["rating"] = *req.Rating
	}
	if req.PriceRange != nil {
		data["price_range"] = *req.PriceRange
	}
	if req.Phone != nil {
		data["phone"] = *req.Phone
	}
	if req.Email != nil {
		data["email"] = *req.Email
	}
	if req.Website != nil {
		data["website"] = *req.Website
	}
	if req.WebURL != nil {
		data["web_url"] = *req.WebURL
	}
	if req.Image != nil {
		data["image"] = *req.Image
	}
	if req.NumberReview != nil {
		data["number_review"] = *req.NumberReview
	}

	_, err := s.PlaceDAO.UpdateById(ctx, placeID, data)
	return err
}

func (s *PlaceService) Delete(ctx context.Context, placeID uint64) error {
	if _, err := s.PlaceDAO.FindById(ctx, placeID); err != nil {
		return response.NewError(404, "地点不存在")
	}
	return s.PlaceDAO.DeleteById(ctx, placeID)
}

func (s *PlaceService) AddPhoto(ctx context.Context, placeID uint64, req *types.PlacePhotoRequest) (*types.PlacePhotoResponse, error) {
	if _, err := s.PlaceDAO.FindById(ctx, placeID); err != nil {
		return nil, response.NewError(404, "地点不存在")
	}
	return s.createPhoto(ctx, placeID, req.PhotoURL, req.IsPrimary)
}

func (s *PlaceService) UploadPhoto(ctx context.Context, placeID uint64, isPrimary bool, header *multipart.FileHeader) (*types.PlacePhotoResponse, error) {
	if _, err := s.PlaceDAO.FindById(ctx, placeID); err != nil {
		return nil, response.NewError(404, "地点不存在")
	}

	url, err := s.Oss.UploadImage(ctx, "place", header)
	if err != nil {
		return nil, err
	}
	return s.createPhoto(ctx, placeID, url, isPrimary)
}

func (s *PlaceService) createPhoto(ctx context.Context, placeID uint64, photoURL string, isPrimary bool) (*types.PlacePhotoResponse, error) {
	// 主图只保留一张
	if isPrimary {
		err := s.PhotoDAO.Db.WithContext(ctx).
			Model(&models.PlacePhoto{}).
			Where("place_id = ?", placeID).
			Update("is_primary", false).Error
		if err != nil {
			return nil, err
		}
	}

	photo := &models.PlacePhoto{
		PlaceID:   placeID,
		PhotoURL:  photoURL,
		IsPrimary: isPrimary,
		CreatedAt: time.Now(),
	}
	if err := s.PhotoDAO.Create(ctx, photo); err != nil {
		return nil, err
	}

	return &types.PlacePhotoResponse{
		PhotoID:   photo.PhotoID,
		PhotoURL:  photo.PhotoURL,
		IsPrimary: photo.IsPrimary,
	}, nil
}

func (s *PlaceService) DeletePhoto(ctx context.Context, placeID, photoID uint64) error {
	photo, err := s.PhotoDAO.FindById(ctx, photoID)
	if err != nil || photo.PlaceID != placeID {
		return response.NewError(404, "照片不存在")
	}
	if err := s.PhotoDAO.DeleteById(ctx, photoID); err != nil {
		return err
	}

	// 对象清理失败不阻塞删除，留给后续人工或任务兜底
	if err := s.Oss.DeleteByURL(ctx, photo.PhotoURL); err != nil {
		log.L.Warn("delete place photo object failed",
			zap.Uint64("photo_id", photoID), zap.Error(err))
	}
	return nil
}

func (s *PlaceService) SetRestaurantDetail(ctx context.Context, placeID uint64, req *types.RestaurantDetailRequest) error {
	place, err := s.PlaceDAO.FindById(ctx, placeID)
	if err != nil {
		return response.NewError(404, "地点不存在")
	}
	if place.Type != models.PlaceTypeRestaurant {
		return response.NewError(400, "该地点不是餐厅")
	}

	mealTypes, err := toJSONArray(req.MealTypes)
	if err != nil {
		return err
	}

	now := time.Now()
	detail, err := s.RestaurantDAO.FindByPlace(ctx, placeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.RestaurantDAO.Create(ctx, &models.RestaurantDetail{
			PlaceID:   placeID,
			MealTypes: mealTypes,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return s.RestaurantDAO.Db.WithContext(ctx).
		Model(&models.RestaurantDetail{}).
		Where("restaurant_detail_id = ?", detail.RestaurantDetailID).
		Updates(map[string]any{"meal_types": mealTypes, "updated_at": now}).Error
}

func (s *PlaceService) SetAttractionDetail(ctx context.Context, placeID uint64, req *types.AttractionDetailRequest) error {
	place, err := s.PlaceDAO.FindById(ctx, placeID)
	if err != nil {
		return response.NewError(404, "地点不存在")
	}
	if place.Type != models.PlaceTypeAttraction {
		return response.NewError(400, "该地点不是景点")
	}

	subcategory, err := toJSONArray(req.Subcategory)
	if err != nil {
		return err
	}
	subtype, err := toJSONArray(req.Subtype)
	if err != nil {
		return err
	}

	now := time.Now()
	detail, err := s.AttractionDAO.FindByPlace(ctx, placeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.AttractionDAO.Create(ctx, &models.AttractionDetail{
			PlaceID:     placeID,
			Subcategory: subcategory,
			Subtype:     subtype,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return s.AttractionDAO.Db.WithContext(ctx).
		Model(&models.AttractionDetail{}).
		Where("attraction_detail_id = ?", detail.AttractionDetailID).
		Updates(map[string]any{"subcategory": subcategory, "subtype": subtype, "updated_at": now}).Error
}

func toPlaceResponse(p *models.Place) *types.PlaceResponse {
	return &types.PlaceResponse{
		PlaceID:      p.PlaceID,
		Name:         p.Name,
		LocalName:    p.LocalName,
		Description:  p.Description,
		Type:         p.Type,
		Address:      p.Address,
		City:         p.City,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Rating:       p.Rating,
		PriceRange:   p.PriceRange,
		Phone:        p.Phone,
		Email:        p.Email,
		Website:      p.Website,
		WebURL:       p.WebURL,
		Image:        p.Image,
		NumberReview: p.NumberReview,
		Photos:       []types.PlacePhotoResponse{},
	}
}

func toJSONArray(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
