package reservation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roomreserve/internal/pkg/response"
)

type Handler struct {
	service *Service
	users   UserProfiles
}

func NewHandler(service *Service, users UserProfiles) *Handler {
	return &Handler{service: service, users: users}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/index", h.Index)

	rg.GET("/rooms", h.ListRooms)
	rg.POST("/rooms", h.CreateRoom)
	rg.DELETE("/rooms/:name", h.DeleteRoom)
	rg.GET("/rooms/:name/bookings", h.RoomBookings)

	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.MyBookings)
	rg.GET("/filter-date", h.FilterByDate)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id", h.UpdateBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
}

// Index returns the landing-page data: the caller's profile (created on first
// access), all rooms, and the flat list of dates that have day partitions.
func (h *Handler) Index(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.users.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	dates, err := h.service.DatesWithBookings(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  user,
		"rooms": rooms,
		"dates": dates,
	})
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ok, message := h.service.CreateRoom(c.Request.Context(), c.GetString("user_id"), req.Name)
	if !ok {
		response.Error(c, http.StatusInternalServerError, "CREATE_ROOM_FAILED", message)
		return
	}
	response.Message(c, http.StatusCreated, message)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	err := h.service.DeleteRoom(c.Request.Context(), c.Param("name"), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Room deleted successfully")
}

// RoomBookings returns the caller's bookings in one room.
func (h *Handler) RoomBookings(c *gin.Context) {
	bookings, err := h.service.BookingsForRoomAndUser(c.Request.Context(), c.Param("name"), c.GetString("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	booking, ok, message := h.service.CreateBooking(c.Request.Context(), req, c.GetString("user_id"))
	if !ok {
		response.Error(c, http.StatusInternalServerError, "CREATE_BOOKING_FAILED", message)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data":    gin.H{"booking": booking},
	})
}

func (h *Handler) MyBookings(c *gin.Context) {
	bookings, err := h.service.BookingsForUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) FilterByDate(c *gin.Context) {
	date := c.Query("date")
	bookings, err := h.service.BookingsOnDate(c.Request.Context(), date)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"date": date, "bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	record, err := h.service.FindBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": record.Booking})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	booking, err := h.service.UpdateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking updated successfully",
		"data":    gin.H{"booking": booking},
	})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.service.DeleteBookingByID(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Booking deleted successfully")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Invalid date format. Date must be in the format YYYY-MM-DD")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Unauthorized: Only the creator can delete the room")
	case errors.Is(err, ErrRoomHasBookings):
		response.Error(c, http.StatusBadRequest, "ROOM_HAS_BOOKINGS", "Cannot delete room with existing bookings")
	default:
		response.Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Store operation failed")
	}
}
