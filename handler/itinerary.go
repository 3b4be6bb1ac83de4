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

type Itinerary struct {
	Config           *config.Config
	ItineraryService service.IItineraryService
}

func (h *Itinerary) RegisterRouter(r gin.IRouter) {
	g := r.Group("/api/v1/itineraries", authorize(h.Config))
	g.POST("", context.Wrap(h.Create))
	g.GET("", context.Wrap(h.List))
	g.GET("/:itinerary_id", context.Wrap(h.Get))
	g.PATCH("/:itinerary_id", context.Wrap(h.Update))
	g.DELETE("/:itinerary_id", context.Wrap(h.Delete))

	g.GET("/:itinerary_id/days", context.Wrap(h.ListDays))
	g.POST("/:itinerary_id/days", context.Wrap(h.InsertDay))
	g.PATCH("/:itinerary_id/days/:day_id", context.Wrap(h.UpdateDay))
	g.DELETE("/:itinerary_id/days/:day_id", context.Wrap(h.DeleteDay))

	g.POST("/:itinerary_id/days/:day_id/activities", context.Wrap(h.AddActivity))
	g.PATCH("/:itinerary_id/activities/:activity_id", context.Wrap(h.UpdateActivity))
	g.DELETE("/:itinerary_id/activities/:activity_id", context.Wrap(h.DeleteActivity))
}

func (h *Itinerary) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.ItineraryService.Create(c.Request.Context(), userID.String(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Itinerary) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}

	resp, err := h.ItineraryService.Get(c.Request.Context(), userID.String(), itineraryID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Itinerary) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var query types.ItineraryListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	items, pagination, err := h.ItineraryService.ListMine(c.Request.Context(), userID.String(), &query)
	if err != nil {
		return err
	}
	response.Success(c, response.PageList{Items: items, Pagination: pagination})
	return nil
}

func (h *Itinerary) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}

	var req types.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.ItineraryService.Update(c.Request.Context(), userID.String(), itineraryID, &req); err != nil {
		return err
	}
	response.Success(c, "已更新")
	return nil
}

func (h *Itinerary) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}

	if err := h.ItineraryService.Delete(c.Request.Context(), userID.String(), itineraryID); err != nil {
		return err
	}
	response.Success(c, "已删除")
	return nil
}

func (h *Itinerary) ListDays(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}

	resp, err := h.ItineraryService.ListDays(c.Request.Context(), userID.String(), itineraryID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Itinerary) InsertDay(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}

	var req types.InsertDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.ItineraryService.InsertDay(c.Request.Context(), userID.String(), itineraryID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Itinerary) UpdateDay(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}
	dayID, err := parseUintParam(c, "day_id")
	if err != nil {
		return err
	}

	var req types.UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.ItineraryService.UpdateDay(c.Request.Context(), userID.String(), itineraryID, dayID, &req); err != nil {
		return err
	}
	response.Success(c, "已更新")
	return nil
}

func (h *Itinerary) DeleteDay(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}
	dayID, err := parseUintParam(c, "day_id")
	if err != nil {
		return err
	}

	if err := h.ItineraryService.DeleteDay(c.Request.Context(), userID.String(), itineraryID, dayID); err != nil {
		return err
	}
	response.Success(c, "已删除")
	return nil
}

func (h *Itinerary) AddActivity(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}
	dayID, err := parseUintParam(c, "day_id")
	if err != nil {
		return err
	}

	var req types.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.ItineraryService.AddActivity(c.Request.Context(), userID.String(), itineraryID, dayID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Itinerary) UpdateActivity(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}
	activityID, err := parseUintParam(c, "activity_id")
	if err != nil {
		return err
	}

	var req types.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.ItineraryService.UpdateActivity(c.Request.Context(), userID.String(), itineraryID, activityID, &req); err != nil {
		return err
	}
	response.Success(c, "已更新")
	return nil
}

func (h *Itinerary) DeleteActivity(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	itineraryID, err := parseUintParam(c, "itinerary_id")
	if err != nil {
		return err
	}
	activityID, err := parseUintParam(c, "activity_id")
	if err != nil {
		return err
	}

	if err := h.ItineraryService.DeleteActivity(c.Request.Context(), userID.String(), itineraryID, activityID); err != nil {
		return err
	}
	response.Success(c, "已删除")
	return nil
}
