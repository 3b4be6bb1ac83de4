package handler

import (
	"Tripper/config"
	"Tripper/pkg/context"
	"Tripper/pkg/response"
	"Tripper/service"
	"Tripper/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Place struct {
	Config       *config.Config
	PlaceService service.IPlaceService
}

func (h *Place) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/v1/places", authorize(h.Config))
	g.POST("", context.Wrap(h.Create))
	g.GET("", context.Wrap(h.List))
	g.GET("/:place_id", context.Wrap(h.Get))
	g.PATCH("/:place_id", context.Wrap(h.Update))
	g.DELETE("/:place_id", context.Wrap(h.Delete))

	g.POST("/:place_id/photos", context.Wrap(h.AddPhoto))
	g.POST("/:place_id/photos/upload", context.Wrap(h.UploadPhoto))
	g.DELETE("/:place_id/photos/:photo_id", context.Wrap(h.DeletePhoto))
}

func (h *Place) Create(c *gin.Context) error {
	var req types.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.PlaceService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Place) Get(c *gin.Context) error {
	placeID, err := parseUintParam(c, "place_id")
	if err != nil {
		return err
	}

	resp, err := h.PlaceService.Get(c.Request.Context(), placeID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Place) List(c *gin.Context) error {
	var query types.PlaceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	items, pagination, err := h.PlaceService.List(c.Request.Context(), &query)
	if err != nil {
		return err
	}
	response.Success(c, response.PageList{Items: items, Pagination: pagination})
	return nil
}

func (h *Place) Update(c *gin.Context) error {
	placeID, err := parseUintParam(c, "place_id")
	if err != nil {
		return err
	}

	var req types.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.PlaceService.Update(c.Request.Context(), placeID, &req); err != nil {
		return err
	}
	response.Success(c, "已更新")
	return nil
}

func (h *Place) Delete(c *gin.Context) error {
	placeID, err := parseUintParam(c, "place_id")
	if err != nil {
		return err
	}

	if err := h.PlaceService.Delete(c.Request.Context(), placeID); err != nil {
		return err
	}
	response.Success(c, "已删除")
	return nil
}

func (h *Place) AddPhoto(c *gin.Context) error {
	placeID, err := parseUintParam(c, "place_id")
	if err != nil {
		return err
	}

	var req types.PlacePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.PlaceService.AddPhoto(c.Request.Context(), placeID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Place) UploadPhoto(c *gin.Context) error {
	placeID, err := parseUintParam(c, "place_id")
	if err != nil {
		return err
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(400, "请选择图片")
	}
	isPrimary := c.PostForm("is_primary") == "true"

	resp, err := h.PlaceService.UploadPhoto(c.Request.Context(), placeID, isPrimary, header)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Place) DeletePhoto(c *gin.Context) error {
	placeID, err := parseUintParam(c, "place_id")
	if err != nil {
		return err
	}
	photoID, err := parseUintParam(c, "photo_id")
	if err != nil {
		return err
	}

	if err := h.PlaceService.DeletePhoto(c.Request.Context(), placeID, photoID); err != nil {
		return err
	}
	response.Success(c, "已删除")
	return nil
}
